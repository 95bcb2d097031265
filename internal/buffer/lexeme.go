// Package buffer implements the growable byte buffer the lexer uses to
// accumulate the current lexeme.
package buffer

import "strconv"

// Lexeme is a growable sequence of bytes. The zero value is an empty,
// ready-to-use buffer; Go's slice growth stands in for the hand-doubled
// capacity counter of the original implementation.
type Lexeme struct {
	buf []byte
}

// New returns an empty Lexeme with a small initial capacity.
func New() *Lexeme {
	return &Lexeme{buf: make([]byte, 0, 4)}
}

// AppendChar appends a single byte.
func (l *Lexeme) AppendChar(c byte) {
	l.buf = append(l.buf, c)
}

// AppendCString appends every byte of s.
func (l *Lexeme) AppendCString(s string) {
	l.buf = append(l.buf, s...)
}

// AppendInt appends the decimal representation of n, formatted through a
// fixed scratch buffer large enough for any 32-bit signed decimal.
func (l *Lexeme) AppendInt(n int) {
	var scratch [12]byte
	digits := strconv.AppendInt(scratch[:0], int64(n), 10)
	l.buf = append(l.buf, digits...)
}

// Overwrite replaces the buffer's contents with data. It shrinks the
// reported length without reducing the underlying capacity.
func (l *Lexeme) Overwrite(data []byte) {
	l.buf = l.buf[:0]
	l.buf = append(l.buf, data...)
}

// Reset empties the buffer, keeping its backing array for reuse.
func (l *Lexeme) Reset() {
	l.buf = l.buf[:0]
}

// Len reports the number of bytes currently held.
func (l *Lexeme) Len() int {
	return len(l.buf)
}

// String returns the buffer's contents as a string.
func (l *Lexeme) String() string {
	return string(l.buf)
}

// Bytes returns the buffer's contents without copying.
func (l *Lexeme) Bytes() []byte {
	return l.buf
}
