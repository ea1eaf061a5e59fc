package events

import "github.com/atomicstack/levocale/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type StatusTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Status  = StatusTracer{}
)

func (UITracer) MenuEnter(index int, kind, label string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"index": index,
		"kind":  kind,
		"label": label,
	})
}

func (UITracer) MenuCursor(cursor, offset int) {
	logging.Trace("menu.cursor", map[string]interface{}{"cursor": cursor, "offset": offset})
}

func (UITracer) MenuToggle(group string, expanded bool, cursor int) {
	logging.Trace("menu.toggle", map[string]interface{}{"group": group, "expanded": expanded, "cursor": cursor})
}

func (UITracer) MenuRebuild(reason string, entries int) {
	logging.Trace("menu.rebuild", map[string]interface{}{"reason": reason, "entries": entries})
}

func (UITracer) Resize(width, height, visible int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height, "visible": visible})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label, "ok": err == nil}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (StatusTracer) Refresh(locale, layout string) {
	logging.Trace("status.refresh", map[string]interface{}{"locale": locale, "layout": layout})
}
