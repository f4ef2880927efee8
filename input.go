package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// QUIT_BYTE ends the input loop. It is a plain 'q', not Ctrl-Q.
const QUIT_BYTE = 'q'

// InputReadError reports a failed read from the terminal, other than a
// timeout with no data.
type InputReadError struct {
	Err error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("read: %s", e.Err)
}

func (e *InputReadError) Unwrap() error {
	return e.Err
}

// TimedByteReader reads one byte, waiting at most the terminal's read
// timeout. ok is false when the timeout elapsed with no data.
type TimedByteReader interface {
	ReadByteTimeout() (b byte, ok bool, err error)
}

// ReadByteTimeout relies on VMIN=0 and VTIME>0: read returns zero bytes when
// no input arrives in time.
func (d *FileDevice) ReadByteTimeout() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(d.fd, buf[:])
	if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

type InputLoopOptions struct {
	Reader TimedByteReader
	Writer io.Writer
	// Quit, if set, is checked once per read. A signal ends the loop
	// cleanly.
	Quit <-chan os.Signal
}

type InputLoop struct {
	Options InputLoopOptions
	w       *bufio.Writer
}

func NewInputLoop(options InputLoopOptions) *InputLoop {
	return &InputLoop{options, nil}
}

// Run reports every byte read until QUIT_BYTE arrives.
func (il *InputLoop) Run() error {
	if il.Options.Reader == nil {
		return fmt.Errorf("no Reader")
	}
	if il.Options.Writer == nil {
		return fmt.Errorf("no Writer")
	}
	il.w = bufio.NewWriter(il.Options.Writer)
	Logger.Print("Starting InputLoop")
	for {
		select {
		case sig := <-il.Options.Quit:
			Logger.Print("Received ", sig, ", stopping InputLoop")
			return nil
		default:
		}
		b, ok, err := il.Options.Reader.ReadByteTimeout()
		if err != nil {
			return &InputReadError{err}
		}
		if !ok {
			continue
		}
		if err := WriteReport(il.w, b); err != nil {
			return err
		}
		if err := il.w.Flush(); err != nil {
			return err
		}
		if b == QUIT_BYTE {
			Logger.Print("Received quit byte")
			return nil
		}
	}
}
