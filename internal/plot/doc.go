package plot

// Package plot turns a user formula into screen segments. Sample evaluates
// the formula across the viewport and drops non-finite values; Service wraps
// it with the two host entry points, Plot and Clear, and keeps an in-memory
// history of the session's requests.
