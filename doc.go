// Package caylath is your in-memory toolkit for building, validating and
// exploring finite groups given as explicit multiplication (Cayley) tables.
//
// 🚀 What is caylath?
//
//	A small, dependency-light library that brings together:
//		• Axiom validation: closure, associativity, identity, inverses
//		• Identity & inverse search with typed "not found" outcomes
//		• Derived structure: inverse maps, element orders, abelian tests
//		• Builders: trivial, cyclic, Klein four, dihedral, direct products
//		• Dense views: index-backed tables with O(1) products and rendering
//
// ✨ Why choose caylath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest negatives – "not a group" is a result, never a panic
//   - Pure Go – no cgo, no hidden deps, no I/O
//   - Deterministic – sorted carrier iteration, reproducible outcomes
//
// Under the hood, everything is organized under three subpackages:
//
//	group/   — Table type, axiom validators, identity/inverse search
//	builder/ — deterministic constructors for canonical group tables
//	cayley/  — dense index-backed table view + text rendering
//
// Quick ASCII example:
//
//	 ∗ │ e a b
//	───┼──────
//	 e │ e a b
//	 a │ a b e
//	 b │ b e a
//
//	is the cyclic group of order 3 — the smallest non-trivial table the
//	validator certifies end to end.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/caylath
package caylath
