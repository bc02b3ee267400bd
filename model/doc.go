// Package model provides the result types for number extraction.
//
// This package defines the user-facing data structures produced by the
// extraction pipeline, along with the two pure reductions that build them:
// [AggregatePage] folds one page's scoped values into a [PageResult], and
// [AggregateDocument] folds all page results into the final
// [DocumentResult].
//
// Both reductions are side-effect-free over immutable inputs, so pages may
// be processed concurrently and folded in any order; maximum is associative
// and commutative, with ties broken by first occurrence in page order.
package model
