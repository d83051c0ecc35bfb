// Package parse reconstructs structured discussion questions and named
// sections from a guide document, in either of its two published
// shapes: a rendered HTML page or raw PDF-extracted text.
//
// Both shapes reduce to the same segmentation: find the
// "Reflect + Discuss" block, merge wrapped bullet lines back into
// whole items, keep the items that read like discussion prompts, then
// capture the recognized named sections independently. The PDF path
// first runs a normalization pass (dehyphenation, soft-wrap rejoin,
// bullet canonicalization) to recover the line structure the HTML path
// gets for free.
package parse
