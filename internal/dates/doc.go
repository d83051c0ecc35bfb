// Package dates extracts calendar dates from free-form page text and
// selects the best candidate relative to a reference day.
//
// Source pages label guides with month-name forms ("Sept. 28",
// "September 28") and numeric forms ("9/28", "9-28"), almost never
// with a year, so extraction takes a year hint and selection assumes
// guides are posted on or shortly before their effective date.
package dates
