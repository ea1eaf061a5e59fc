package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/levocale/internal/logging/events"
	"github.com/atomicstack/levocale/internal/menu"
)

// ErrNoApplier is returned when the bus has nothing to run actions against.
var ErrNoApplier = errors.New("no action applier configured")

// Request encapsulates an action invocation.
type Request struct {
	ID     string
	Label  string
	Action menu.Action
	// Name is the human readable name of the option being applied.
	Name string
}

// NewRequest builds a request for the given entry.
func NewRequest(entry menu.Entry) Request {
	return Request{
		ID:     entry.Action.ID(),
		Label:  entry.Label,
		Action: entry.Action,
		Name:   entry.Name,
	}
}

// Bus coordinates the execution of menu actions.
type Bus struct {
	applier menu.Applier
}

// New initialises a command bus that applies actions through applier.
func New(applier menu.Applier) *Bus {
	return &Bus{applier: applier}
}

// Execute runs the requested action to completion and returns its outcome.
// Info always carries the user facing message, for failures too. Requests
// without an apply action are skipped and yield a zero result.
func (b *Bus) Execute(req Request) menu.ActionResult {
	events.Command.Queue(req.ID, req.Label)
	var result menu.ActionResult
	switch req.Action.Kind {
	case menu.ActionApplyLayout:
		result = b.applyLayout(req)
	case menu.ActionApplyLocale:
		result = b.applyLocale(req)
	default:
		events.Command.Skip(req.ID, req.Label)
		return menu.ActionResult{}
	}
	events.Command.Result(req.ID, req.Label, result.Err)
	return result
}

func (b *Bus) applyLayout(req Request) menu.ActionResult {
	code := req.Action.Code
	if b == nil || b.applier == nil {
		return layoutFailure(ErrNoApplier)
	}
	if err := b.applier.ApplyLayout(code); err != nil {
		return layoutFailure(err)
	}
	return menu.ActionResult{Info: fmt.Sprintf("Keyboard layout set to: %s", code)}
}

func (b *Bus) applyLocale(req Request) menu.ActionResult {
	if b == nil || b.applier == nil {
		return localeFailure(ErrNoApplier)
	}
	if err := b.applier.ApplyLocale(req.Action.Code); err != nil {
		return localeFailure(err)
	}
	name := req.Name
	if name == "" {
		name = req.Action.Code
	}
	return menu.ActionResult{Info: fmt.Sprintf("Language set to: %s", name)}
}

func layoutFailure(err error) menu.ActionResult {
	return menu.ActionResult{
		Info: fmt.Sprintf("Failed to set keyboard layout: %v", err),
		Err:  fmt.Errorf("apply keyboard layout: %w", err),
	}
}

func localeFailure(err error) menu.ActionResult {
	return menu.ActionResult{
		Info: "Failed to set language (check sudo access)",
		Err:  fmt.Errorf("apply locale: %w", err),
	}
}
