package main

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

var ErrRawModeEntered = errors.New("raw mode already entered")

// TerminalConfigError reports a failure to query or install terminal
// attributes.
type TerminalConfigError struct {
	Op  string
	Err error
}

func (e *TerminalConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *TerminalConfigError) Unwrap() error {
	return e.Err
}

type ModeState int

const (
	ModeUninitialized ModeState = iota
	ModeRaw
	ModeRestored
)

func (s ModeState) String() string {
	switch s {
	case ModeUninitialized:
		return "uninitialized"
	case ModeRaw:
		return "raw"
	case ModeRestored:
		return "restored"
	}
	return fmt.Sprintf("ModeState(%d)", int(s))
}

// TerminalMode owns a terminal's original attributes for a single
// enter/restore cycle.
type TerminalMode struct {
	device   Device
	mutex    sync.Mutex
	state    ModeState
	original *unix.Termios
}

func NewTerminalMode(device Device) *TerminalMode {
	return &TerminalMode{device: device}
}

func (tm *TerminalMode) State() ModeState {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	return tm.state
}

// Original returns a copy of the attributes captured by Enter, and false if
// nothing was captured.
func (tm *TerminalMode) Original() (unix.Termios, bool) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	if tm.original == nil {
		return unix.Termios{}, false
	}
	return *tm.original, true
}

// Enter captures the terminal's attributes and installs the raw
// configuration derived from them. Once the attributes are captured, Restore
// will reinstall them even if the install below fails.
func (tm *TerminalMode) Enter(config RawConfig) error {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	if tm.state != ModeUninitialized || tm.original != nil {
		return &TerminalConfigError{"enter", ErrRawModeEntered}
	}
	if !tm.device.IsTerminal() {
		return &TerminalConfigError{"tcgetattr", unix.ENOTTY}
	}
	termios, err := tm.device.GetTermios()
	if err != nil {
		return &TerminalConfigError{"tcgetattr", err}
	}
	original := &unix.Termios{}
	*original = *termios
	tm.original = original
	Logger.Print("Captured original terminal attributes")

	raw := *original
	config.Apply(&raw)
	if err := tm.device.SetTermios(&raw); err != nil {
		return &TerminalConfigError{"tcsetattr", err}
	}
	tm.state = ModeRaw
	Logger.Print("Entered raw mode")
	return nil
}

// Restore reinstalls the attributes captured by Enter. Only the first call
// does anything; it is a no-op if Enter never captured the attributes.
func (tm *TerminalMode) Restore() error {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	if tm.state == ModeRestored || tm.original == nil {
		return nil
	}
	tm.state = ModeRestored
	// The device may keep the pointer; hand it a copy.
	original := *tm.original
	if err := tm.device.SetTermios(&original); err != nil {
		Logger.Print("Failed to restore terminal attributes: ", err)
		return &TerminalConfigError{"tcsetattr", err}
	}
	Logger.Print("Restored original terminal attributes")
	return nil
}

// WithRawMode runs f with the terminal in raw mode. The original attributes
// are restored when f returns, when f panics, and when Enter fails after
// capturing them.
func WithRawMode(tm *TerminalMode, config RawConfig, f func() error) (err error) {
	defer func() {
		r := recover()
		if restoreErr := tm.Restore(); restoreErr != nil {
			if err == nil {
				err = restoreErr
			} else {
				err = errors.Join(err, restoreErr)
			}
		}
		if r != nil {
			panic(r)
		}
	}()
	if err = tm.Enter(config); err != nil {
		return err
	}
	return f()
}
