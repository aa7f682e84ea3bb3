// Package ommxsub001 is the module root for ommx-sub001, an algebraic core
// for mathematical-programming problems: typed decision variables and
// polynomial functions, validated instances and constraints, an evaluator
// that maps variable assignments to objective/constraint values and
// feasibility verdicts, and a Protocol-Buffers-compatible wire format for
// moving instances, solutions, and sample sets between processes.
//
// The module is organized as a set of narrow, composable packages, each
// owning one layer of the model:
//
//	atol/        process-wide numeric tolerance
//	coefficient/ non-zero finite scalars used as polynomial coefficients
//	ids/         the identifier types threaded through every other package
//	bound/       (lower, upper) ranges and the Kind they must respect
//	monomial/    linear, quadratic, and arbitrary-degree monomial shapes
//	polynomial/  a monomial -> coefficient map, generic over monomial shape
//	function/    the Constant/Linear/Quadratic/Polynomial tagged union
//	decision/    a bound-respecting, possibly-substituted decision variable
//	constraint/  a function constrained to ==0 or <=0, plus removal/hints
//	assign/      acyclic decision-variable dependency chains
//	substitute/  replacing a variable by a function throughout a value
//	evaluate/    mapping a State (or a set of States) to concrete values
//	instance/    the validated problem: variables + constraints + objective
//	solution/    evaluated results and named extraction back out of them
//	v1/          wire message shapes
//	parse/       decoding and validating wire bytes into the model above
//
// This package itself holds no exported API; it exists so the module root
// has a doc comment and so `go doc github.com/Jij-Inc/ommx-sub001` has
// somewhere to start.
package ommxsub001
