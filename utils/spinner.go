package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Spinner is a terminal progress indicator shown while a platform's
// icons are being generated.
type Spinner struct {
	mu         sync.RWMutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	StopMsg    string
	hideCursor bool
	stopChan   chan struct{}
}

// NewSpinner instantiates a new progress indicator.
func NewSpinner(msg string, d time.Duration, hideCursor bool) *Spinner {
	return &Spinner{
		delay:      d,
		writer:     os.Stderr,
		message:    msg,
		hideCursor: hideCursor,
		stopChan:   make(chan struct{}, 1),
	}
}

// Start starts the progress indicator.
func (s *Spinner) Start() {
	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\x1b[?25l")
	}

	go func() {
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					return
				default:
					s.mu.Lock()
					output := fmt.Sprintf("\r%s%s%s %c%s", s.message, DefaultColor, StatusColor, r, DefaultColor)
					s.erase()
					fmt.Fprint(s.writer, output)
					s.lastOutput = output
					s.mu.Unlock()
					time.Sleep(s.delay)
				}
			}
		}
	}()
}

// Stop stops the progress indicator and prints the stop message.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopChan <- struct{}{}
	s.erase()
	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\x1b[?25h")
	}
	if s.StopMsg != "" {
		fmt.Fprintf(s.writer, "\r%s\n", s.StopMsg)
	}
}

// RestoreCursor makes the terminal cursor visible again; used on
// interrupt so the shell is left in a sane state.
func (s *Spinner) RestoreCursor() {
	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\x1b[?25h")
	}
}

// erase overwrites the last written frame with spaces.
func (s *Spinner) erase() {
	n := utf8.RuneCountInString(s.lastOutput)
	fmt.Fprintf(s.writer, "\r%s\r", strings.Repeat(" ", n))
}
