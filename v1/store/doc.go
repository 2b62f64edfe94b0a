// Package store defines the DB-agnostic storage surface: records,
// search requests carrying an optional predicate filter, and the
// Service interface every adapter implements. Application code depends
// on Service and picks an adapter (qdrant, postgres) through the FX
// modules.
//
// The legacy flat filter clauses (EqualTo, AnyTagEqualTo) are kept for
// older callers; they compile to predicate trees, so both filtering
// APIs share one translation engine.
package store
