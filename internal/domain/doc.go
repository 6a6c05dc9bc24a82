// Package domain defines the core domain types and interfaces.
//
// This package contains concept-oriented files (response.go, leader.go,
// analytics.go, errors.go) with shared types and the repository contracts.
// No implementation code - just data shapes and validation rules. Keeping
// the interfaces here prevents circular imports between the storage,
// reporting, and HTTP layers.
package domain
