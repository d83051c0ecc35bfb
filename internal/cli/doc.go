// Package cli implements the guide-update command line.
//
// The root command runs the full pipeline: discover this week's
// discussion guide, parse it, write the guide.json record, and stage
// the static site. Flags cover a config file, a source URL override,
// output locations, and an optional local preview server.
package cli
