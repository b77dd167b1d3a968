// Package domain defines the core entities for Quadra.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Equation: The coefficients a, b, c of ax^2 + bx + c = 0
//   - Token: One classified field of a raw input line
//   - RootSet: The computed roots, either real or a complex pair
//   - ParseError: A tagged parse failure
//   - Settings: User-tunable display, session and solver behaviour
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
