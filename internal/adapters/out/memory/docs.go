// Package memory implements the application ports over a single in-process
// location. A unit of work is an exclusive lock on that location, which keeps
// check-then-act operations such as renting and billing atomic when the
// billing job and callers run on different goroutines.
package memory
