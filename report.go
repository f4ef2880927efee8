package main

import (
	"io"
	"strconv"
)

const DEL = 0x7f

// ReportBuilder accumulates one report line.
type ReportBuilder struct {
	line []byte
}

func (rb *ReportBuilder) WriteBytes(b ...byte) {
	rb.line = append(rb.line, b...)
}

func (rb *ReportBuilder) WriteValue(b byte) {
	rb.line = strconv.AppendUint(rb.line, uint64(b), 10)
}

// Flush writes the line to w and starts a new one.
func (rb *ReportBuilder) Flush(w io.Writer) error {
	_, err := w.Write(rb.line)
	rb.line = rb.line[:0]
	return err
}

// IsControl reports whether b is a control byte in the C locale.
func IsControl(b byte) bool {
	return b < 0x20 || b == DEL
}

// WriteReport writes the report line for b. Output processing is off in raw
// mode, so each line ends with an explicit "\r\n".
func WriteReport(w io.Writer, b byte) error {
	var rb ReportBuilder
	rb.WriteValue(b)
	if !IsControl(b) {
		rb.WriteBytes(' ', '(', '\'', b, '\'', ')')
	}
	rb.WriteBytes('\r', '\n')
	return rb.Flush(w)
}
