package events

import "github.com/atomicstack/levocale/internal/logging"

type SystemTracer struct{}

var System = SystemTracer{}

func (SystemTracer) CommandFailed(command string, err error) {
	if err == nil {
		return
	}
	logging.Trace("system.command.error", map[string]interface{}{"command": command, "error": err.Error()})
}

func (SystemTracer) NotifyFailed(message string, err error) {
	if err == nil {
		return
	}
	logging.Trace("system.notify.error", map[string]interface{}{"message": message, "error": err.Error()})
}
