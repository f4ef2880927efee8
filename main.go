package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

var Logger = log.New(io.Discard, "", 0)

func Run() error {
	config := LoadConfig()

	// Logging is optional; an unopenable log file leaves it discarded.
	if config.LogFile != "" {
		file, err := os.OpenFile(
			config.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			defer file.Close()
			Logger = log.New(file, "", log.Ldate|log.Ltime|log.Lshortfile)
		}
	}

	device := NewFileDevice(os.Stdin)
	mode := NewTerminalMode(device)
	return WithRawMode(mode, DefaultRawConfig(), func() error {
		// ISIG is off, so these only arrive from outside the terminal.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGINT)
		defer signal.Stop(quit)

		inputLoop := NewInputLoop(InputLoopOptions{
			Reader: device,
			Writer: os.Stdout,
			Quit:   quit,
		})
		return inputLoop.Run()
	})
}

func main() {
	err := Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
