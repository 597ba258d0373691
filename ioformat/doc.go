// Package ioformat reads and writes the plain-text formats used to hand
// path/cut sets, probability maps, topology pairs, and SDP forests to and
// from the rbd package. Layout and error handling follow a
// bufio.Scanner-based line reader, the style this project's CLI commands
// expect of any file format they touch; it keeps rbd itself free of any
// knowledge of persistence.
package ioformat
