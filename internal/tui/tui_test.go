package tui

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// outputChecker provides helpers for testing teatest output.
type outputChecker struct {
	intervl, timeout time.Duration
}

func defaultChecker() outputChecker {
	return outputChecker{
		intervl: 50 * time.Millisecond,
		timeout: 3 * time.Second,
	}
}

func (o outputChecker) checkString(t *testing.T, tm *teatest.TestModel, substr string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(buf []byte) bool {
		return bytes.Contains(buf, []byte(substr))
	},
		teatest.WithCheckInterval(o.intervl),
		teatest.WithDuration(o.timeout))
}
