// Package graphcalc compiles single-variable mathematical expressions into
// functions of x.
//
// The syntax is the usual infix notation with + - * / ^, parentheses, and
// unary minus. "-x^2" is "-(x^2)", and ^ groups to the left like the other
// binary operators, so "2^3^2" is "(2^3)^2". The constants are e and π, which
// can also be spelled p. The functions are sin, cos, tan, arcsin, arccos,
// arctan, ln, sqrt, cbrt, and abs; each takes one argument, usually in
// parentheses. There is no implicit multiplication: "2x" is an error.
//
// A compiled Expr evaluates in float64 with Eval or At, or to any precision
// with EvalBig. Expr satisfies roots.Func, so it can be handed directly to the
// root finders in package roots.
package graphcalc
