// Package guide defines the core types for a weekly discussion guide.
//
// A Guide is the normalized result of parsing one source document: the
// ordered list of discussion questions plus any recognized named
// sections. A Link is a candidate document location produced during
// discovery, carrying the date text found near it for scoring.
package guide
