// Package pipeline runs one end-to-end update: discover this week's
// guide link, fetch it once, dispatch to the HTML or PDF parser by
// sniffing the document, and escalate a question-less HTML page to its
// embedded PDF link (a single escalation, never a loop).
package pipeline
