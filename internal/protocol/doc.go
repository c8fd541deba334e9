// Package protocol implements the wire format spoken to the compile worker.
//
// The protocol is line-oriented and positional. A request is a single line of
// tokens joined by the ASCII unit separator (0x1F), chosen because module and
// directory paths may contain spaces or other printable delimiters but never
// this control character. A response is any number of free-text pass-through
// lines followed by exactly one sentinel line whose trimmed text is "ok" or
// "err". There is no version negotiation and no structured error body.
//
// Line classification is a tagged result (Line) so the parsing logic stays
// testable in isolation from process I/O.
package protocol
