// Package kernel provides the core domain primitives shared by the
// transfer-order domain model.
//
// Its main building block is UUID, a value object for unique identifiers with
// validation and comparison capabilities. Primitives in this package enforce
// their own invariants, are immutable, and are safe for concurrent use.
package kernel
