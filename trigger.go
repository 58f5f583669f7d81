package hxcmd

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// dispatchTriggers turns a trigger attribute value into client events. The
// same parsing serves trigger, trigger-after-swap and trigger-after-settle.
//
// The value is first tried as a JSON object mapping event name to detail,
// mirroring the HX-Trigger header format:
//
//	{"item:saved": {"id": 7}, "toast": {"target": "#toasts", "level": "info"}}
//
// A detail object's target key, when present, picks the dispatch element and
// is stripped from the detail before dispatch; an unresolvable target logs a
// warning and falls back to the page root. When the value is not valid JSON
// it degrades to a comma-separated list of bare event names, each dispatched
// on the page root with no detail. The degradation is documented behavior,
// not an error.
func (e *Engine) dispatchTriggers(value string) {
	var events map[string]any
	if err := json.Unmarshal([]byte(value), &events); err != nil {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				e.host.Dispatch(e.host.Root(), NewEvent(name, nil))
			}
		}
		return
	}

	for name, detail := range events {
		target := e.host.Root()
		if obj, ok := detail.(map[string]any); ok {
			if sel, ok := obj["target"].(string); ok {
				if elt, found := e.host.Find(sel); found {
					target = elt
				} else {
					e.log.Warn("trigger target not found, dispatching on root",
						zap.String("event", name), zap.String("selector", sel))
				}
				delete(obj, "target")
			}
		}
		e.host.Dispatch(target, NewEvent(name, detail))
	}
}
