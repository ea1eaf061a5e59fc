package system

import (
	"os"

	"github.com/atomicstack/levocale/internal/logging/events"
	"github.com/atomicstack/levocale/internal/menu"
)

// Unknown is reported when no source yields a current value.
const Unknown = "unknown"

const notifyTitle = "Levocale"

// System implements menu.Provider by shelling out to the host tools.
type System struct {
	runner Runner
	getenv func(string) string
}

var _ menu.Provider = (*System)(nil)

// New returns a System backed by os/exec and the process environment.
func New() *System {
	return NewWithRunner(ExecRunner{}, os.Getenv)
}

// NewWithRunner allows tests to substitute the command runner and environment.
func NewWithRunner(runner Runner, getenv func(string) string) *System {
	if runner == nil {
		runner = ExecRunner{}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	return &System{runner: runner, getenv: getenv}
}

// Notify sends a desktop notification. Failures are logged and dropped.
func (s *System) Notify(message string) {
	if err := s.runner.Start("notify-send", notifyTitle, message, "-t", "2000"); err != nil {
		events.System.NotifyFailed(message, err)
	}
}
