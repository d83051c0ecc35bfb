// Package site writes the deployable output of one pipeline run: the
// guide.json record consumed by the front-end, an index.html rendered
// from an optional template, and a mirror of the static asset tree.
// A missing template or static directory is skipped, not an error, so
// the JSON artifact always publishes.
package site
