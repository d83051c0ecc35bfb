// Package discover locates this week's discussion guide URL on the
// church site. The date text tied to a guide link is scattered
// inconsistently across the pages, so discovery runs a fixed fallback
// chain: the messages listing scanned directly, then the per-message
// detail page for today, then the current series resources list. The
// first stage to produce a link wins; a stage that errors or finds
// nothing simply yields to the next.
package discover
