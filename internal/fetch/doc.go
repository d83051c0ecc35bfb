// Package fetch provides the single HTTP client used by discovery and
// the pipeline: bounded timeout, browser-like User-Agent, no retries.
// Stage-level fallback in the discoverer is the only resilience
// mechanism; a failed request is simply an error to its caller.
package fetch
