package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
)

// Indicator shows that a blocking call is in flight
type Indicator interface {
	Start(message string)
	Stop()
}

// SpinnerIndicator renders a spinner with the elapsed time next to the message
type SpinnerIndicator struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
}

// NewSpinnerIndicator creates a spinner writing to w
func NewSpinnerIndicator(w io.Writer) *SpinnerIndicator {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.HideCursor = false

	return &SpinnerIndicator{spinner: s}
}

// NewIndicator returns a spinner on stderr when it is a terminal and the run is interactive
func NewIndicator(cfg *config.RuntimeConfig) Indicator {
	if cfg.NonInteractive || !isatty.IsTerminal(os.Stderr.Fd()) {
		return NewNopIndicator()
	}
	return NewSpinnerIndicator(os.Stderr)
}

func (i *SpinnerIndicator) Start(message string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	started := time.Now()
	label := color.New(color.FgYellow).Sprint(message)
	i.spinner.PreUpdate = func(s *spinner.Spinner) {
		s.Suffix = fmt.Sprintf(" %s (%s)", label, time.Since(started).Round(time.Second))
	}
	i.spinner.Suffix = " " + label

	if !i.spinner.Active() {
		i.spinner.Start()
	}
}

func (i *SpinnerIndicator) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.spinner.Active() {
		i.spinner.Stop()
	}
}

// Active reports whether the spinner is running
func (i *SpinnerIndicator) Active() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.spinner.Active()
}
