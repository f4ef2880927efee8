//go:build linux

package main

import "golang.org/x/sys/unix"

// TCSETSF drains pending output and discards pending input before applying,
// like tcsetattr(TCSAFLUSH).
const (
	ioctlGetTermios      = unix.TCGETS
	ioctlSetTermiosFlush = unix.TCSETSF
)
