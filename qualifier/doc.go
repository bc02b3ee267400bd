// Package qualifier finds magnitude phrases in page text.
//
// Financial documents routinely state a unit scale once and let it govern
// the figures that follow: "(in thousands)", "expressed in millions of
// dollars". The [Detector] scans page text for those phrases and reports
// each as a [Qualifier] with its scale factor and character span, leaving
// the decision of which numbers the phrase governs to the scope package.
//
// The phrase-to-scale mapping is data, not code. [DefaultTable] covers
// thousand through trillion with the usual short forms; callers can extend
// or replace it programmatically or load one from a YAML file with
// [LoadTable].
package qualifier
