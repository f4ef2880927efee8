package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func cookedTermios() unix.Termios {
	termios := unix.Termios{
		Iflag: unix.IXON | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.BRKINT |
			unix.IGNPAR,
		Oflag: unix.OPOST | unix.ONLCR,
		Cflag: unix.CS7 | unix.CREAD,
		Lflag: unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG | unix.ECHOE,
	}
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	termios.Cc[unix.VINTR] = 3
	return termios
}

func TestDefaultRawConfigApply(t *testing.T) {
	termios := cookedTermios()
	DefaultRawConfig().Apply(&termios)

	assert.Zero(t, termios.Iflag&unix.IXON, "IXON")
	assert.Zero(t, termios.Iflag&unix.ICRNL, "ICRNL")
	assert.Zero(t, termios.Iflag&unix.INPCK, "INPCK")
	assert.Zero(t, termios.Iflag&unix.ISTRIP, "ISTRIP")
	assert.Zero(t, termios.Iflag&unix.BRKINT, "BRKINT")
	assert.Zero(t, termios.Oflag&unix.OPOST, "OPOST")
	assert.EqualValues(t, unix.CS8, termios.Cflag&unix.CSIZE)
	assert.Zero(t, termios.Lflag&unix.ECHO, "ECHO")
	assert.Zero(t, termios.Lflag&unix.ICANON, "ICANON")
	assert.Zero(t, termios.Lflag&unix.IEXTEN, "IEXTEN")
	assert.Zero(t, termios.Lflag&unix.ISIG, "ISIG")
	assert.EqualValues(t, 0, termios.Cc[unix.VMIN])
	assert.EqualValues(t, 1, termios.Cc[unix.VTIME])

	// Bits outside the raw set are left alone.
	assert.NotZero(t, termios.Iflag&unix.IGNPAR, "IGNPAR")
	assert.NotZero(t, termios.Oflag&unix.ONLCR, "ONLCR")
	assert.NotZero(t, termios.Cflag&unix.CREAD, "CREAD")
	assert.NotZero(t, termios.Lflag&unix.ECHOE, "ECHOE")
	assert.EqualValues(t, 3, termios.Cc[unix.VINTR])
}

func TestZeroRawConfigKeepsFlags(t *testing.T) {
	termios := cookedTermios()
	want := termios
	RawConfig{MinBytes: 1}.Apply(&termios)

	assert.Equal(t, want.Iflag, termios.Iflag)
	assert.Equal(t, want.Oflag, termios.Oflag)
	assert.Equal(t, want.Cflag, termios.Cflag)
	assert.Equal(t, want.Lflag, termios.Lflag)
}

func TestRawConfigCharSize(t *testing.T) {
	tests := []struct {
		size CharSize
		want uint64
	}{
		{CharSize5, unix.CS5},
		{CharSize6, unix.CS6},
		{CharSize7, unix.CS7},
		{CharSize8, unix.CS8},
	}
	for _, tt := range tests {
		termios := cookedTermios()
		RawConfig{CharSize: tt.size}.Apply(&termios)
		assert.EqualValues(t, tt.want, uint64(termios.Cflag&unix.CSIZE), "CharSize %d", tt.size)
		assert.NotZero(t, termios.Cflag&unix.CREAD)
	}
}

func TestDeciseconds(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want uint8
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Millisecond, 1},
		{100 * time.Millisecond, 1},
		{101 * time.Millisecond, 2},
		{time.Second, 10},
		{25500 * time.Millisecond, 255},
		{time.Hour, 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deciseconds(tt.d), "deciseconds(%s)", tt.d)
	}
}
