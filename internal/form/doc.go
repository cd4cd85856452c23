// Package form holds the registration record, the closed set of fields it is
// made of, and the rules each field must satisfy.
//
// Everything here is pure: validation never touches the terminal, and the
// wizard package layers screen navigation on top.
package form
