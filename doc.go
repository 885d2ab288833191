// Package json is an embeddable, incremental JSON parser. It consumes a
// byte stream in arbitrary-sized chunks and drives a caller-supplied
// Backend for each syntactic token, without buffering the whole document.
//
// The parser is a single-use, synchronous value: construct one with New,
// feed it bytes with Push, and finalize it with Eof. It performs no I/O
// and spawns no goroutines; callers may run as many Parser instances as
// they like on separate goroutines, each fully isolated.
//
// A strict-JSON (RFC 8259) grammar is enforced unless one or more
// Extensions are enabled at construction time.
package json
