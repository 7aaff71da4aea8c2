// Package expr implements the restricted arithmetic language accepted by the
// grapher: numbers, the variable x, the constants pi and e, the operators
// + - * / % ^ (or **), parentheses, and an allowlist of one-argument math
// functions. Expressions are compiled once by a recursive-descent parser and
// then evaluated for many x values. No other names are reachable.
package expr
