// Package location contains the Location aggregate: a storage facility with a
// fixed grid of units, a customer roster, vacancy queries and monthly
// billing with a multi-unit discount.
//
// Location is not safe for concurrent use. Callers that share one across
// goroutines serialize access through the unit of work in
// internal/adapters/out/memory.
package location
