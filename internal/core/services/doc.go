// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The equation pipeline is Tokenize -> Parser -> Solver -> Renderer.
// Session drives that pipeline from a LineSource until one equation
// is solved.
package services
