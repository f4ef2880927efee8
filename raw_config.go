package main

import (
	"time"

	"golang.org/x/sys/unix"
)

// CharSize is the CSIZE field of the control flags.
type CharSize int

const (
	CharSizeUnchanged CharSize = iota
	CharSize5
	CharSize6
	CharSize7
	CharSize8
)

// VTIME counts tenths of a second in a single byte.
const (
	VTIME_UNIT = 100 * time.Millisecond
	VTIME_MAX  = 255
)

// RawConfig describes the changes made to a terminal's attributes when it
// enters raw mode. Each field maps to one termios bit or field; a false field
// leaves the corresponding bit as it was.
type RawConfig struct {
	// IXON: Ctrl-S and Ctrl-Q are delivered as bytes 19 and 17 instead of
	// pausing and resuming transmission.
	DisableFlowControl bool
	// ICRNL: carriage return (13) is not translated to newline (10).
	DisableCRToNL bool
	// INPCK: no input parity checking.
	DisableParityCheck bool
	// ISTRIP: the 8th bit of each input byte is kept.
	DisableStripHighBit bool
	// BRKINT: a break condition does not send SIGINT.
	DisableBreakInterrupt bool

	// OPOST: output is written as-is, so "\n" is not expanded to "\r\n".
	DisableOutputProcessing bool

	// CSIZE: bits per byte.
	CharSize CharSize

	// ECHO: typed characters are not printed.
	DisableEcho bool
	// ICANON: input is delivered byte by byte instead of line by line.
	DisableCanonical bool
	// IEXTEN: Ctrl-V no longer quotes the next character.
	DisableLiteralNext bool
	// ISIG: Ctrl-C and Ctrl-Z are delivered as bytes 3 and 26 instead of
	// raising SIGINT and SIGTSTP.
	DisableSignals bool

	// VMIN: minimum number of bytes before a read returns.
	MinBytes uint8
	// VTIME: how long a read waits for input before returning zero bytes.
	// Rounded up to tenths of a second.
	ReadTimeout time.Duration
}

// DefaultRawConfig returns the raw mode used by the input loop: every
// translation off, 8-bit bytes, and reads that return after at most 100ms.
func DefaultRawConfig() RawConfig {
	return RawConfig{
		DisableFlowControl:      true,
		DisableCRToNL:           true,
		DisableParityCheck:      true,
		DisableStripHighBit:     true,
		DisableBreakInterrupt:   true,
		DisableOutputProcessing: true,
		CharSize:                CharSize8,
		DisableEcho:             true,
		DisableCanonical:        true,
		DisableLiteralNext:      true,
		DisableSignals:          true,
		MinBytes:                0,
		ReadTimeout:             VTIME_UNIT,
	}
}

// Apply translates the configuration into termios bits.
func (c RawConfig) Apply(termios *unix.Termios) {
	if c.DisableFlowControl {
		termios.Iflag &^= unix.IXON
	}
	if c.DisableCRToNL {
		termios.Iflag &^= unix.ICRNL
	}
	if c.DisableParityCheck {
		termios.Iflag &^= unix.INPCK
	}
	if c.DisableStripHighBit {
		termios.Iflag &^= unix.ISTRIP
	}
	if c.DisableBreakInterrupt {
		termios.Iflag &^= unix.BRKINT
	}

	if c.DisableOutputProcessing {
		termios.Oflag &^= unix.OPOST
	}

	if c.CharSize != CharSizeUnchanged {
		termios.Cflag &^= unix.CSIZE
		switch c.CharSize {
		case CharSize5:
			termios.Cflag |= unix.CS5
		case CharSize6:
			termios.Cflag |= unix.CS6
		case CharSize7:
			termios.Cflag |= unix.CS7
		default:
			termios.Cflag |= unix.CS8
		}
	}

	if c.DisableEcho {
		termios.Lflag &^= unix.ECHO
	}
	if c.DisableCanonical {
		termios.Lflag &^= unix.ICANON
	}
	if c.DisableLiteralNext {
		termios.Lflag &^= unix.IEXTEN
	}
	if c.DisableSignals {
		termios.Lflag &^= unix.ISIG
	}

	termios.Cc[unix.VMIN] = c.MinBytes
	termios.Cc[unix.VTIME] = deciseconds(c.ReadTimeout)
}

func deciseconds(d time.Duration) uint8 {
	if d <= 0 {
		return 0
	}
	n := (d + VTIME_UNIT - 1) / VTIME_UNIT
	if n > VTIME_MAX {
		return VTIME_MAX
	}
	return uint8(n)
}
