// Package kernel provides shared value objects used across all domain
// aggregates: UUID identifiers and decimal Money amounts.
//
// Both types are immutable, constructed only through factory functions, and
// fail validation as zero values. This keeps identifiers and monetary
// amounts in a known-good state everywhere in the domain layer.
package kernel
