package main

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Device is the platform layer underneath TerminalMode.
type Device interface {
	IsTerminal() bool
	GetTermios() (*unix.Termios, error)
	// SetTermios applies termios after pending output has drained, discarding
	// any unread input.
	SetTermios(termios *unix.Termios) error
}

// FileDevice is a Device backed by an open terminal file descriptor.
type FileDevice struct {
	fd int
}

// NewFileDevice wraps f. Calling Fd puts f in blocking mode, which the timed
// reads in ReadByteTimeout rely on.
func NewFileDevice(f *os.File) *FileDevice {
	return &FileDevice{int(f.Fd())}
}

func (d *FileDevice) IsTerminal() bool {
	return term.IsTerminal(d.fd)
}

func (d *FileDevice) GetTermios() (*unix.Termios, error) {
	return unix.IoctlGetTermios(d.fd, ioctlGetTermios)
}

func (d *FileDevice) SetTermios(termios *unix.Termios) error {
	return unix.IoctlSetTermios(d.fd, ioctlSetTermiosFlush, termios)
}
