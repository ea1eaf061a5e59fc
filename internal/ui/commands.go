package ui

import (
	"github.com/atomicstack/levocale/internal/logging/events"
	"github.com/atomicstack/levocale/internal/menu"
	"github.com/atomicstack/levocale/internal/ui/command"
)

// runAction applies a leaf entry synchronously. Whatever the outcome the
// user is notified, the status is re-read and the menu rebuilt; failures
// never leave the model in a partial state.
func (m *Model) runAction(entry menu.Entry) {
	result := m.bus.Execute(command.NewRequest(entry))
	if result.Err != nil {
		events.Action.Error(result.Err)
	} else {
		events.Action.Success(result.Info)
	}
	m.notify(result.Info)
	m.refreshStatus()
	m.rebuild("action")
	m.syncViewport()
}

func (m *Model) notify(message string) {
	if message == "" || m.provider == nil {
		return
	}
	m.provider.Notify(message)
}
