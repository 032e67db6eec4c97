// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality(), ExpectSuccess() and ExpectFailure() functions report an
// error and allow the test to continue. The Demand*() equivalents stop the
// test immediately.
//
// Success and failure are judged on the type of the value. A bool is a
// success if it is true and an error is a success if it is nil.
package test
