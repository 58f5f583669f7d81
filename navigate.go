package hxcmd

import (
	"encoding/json"
	"fmt"
	"strings"
)

// navigate handles a location attribute value: a literal path, or a JSON
// object whose path key names the path and whose remaining keys are passed
// to the Navigator as extra options.
//
// A history entry is saved before the navigation fetch is issued; the path
// is pushed once the asynchronous fetch-and-swap completes. The fetch is not
// awaited - its completion order relative to later commands is unspecified.
//
// A value that starts with "{" but fails to parse is rejected with
// ErrBadLocation rather than retried as a literal path: a brace-led value
// unambiguously announces the JSON form, and fetching a path that starts
// with "{" would only bury the mistake.
func (e *Engine) navigate(value string, ctxElt Elt) error {
	path := value
	var opts map[string]any

	if strings.HasPrefix(strings.TrimSpace(value), "{") {
		if err := json.Unmarshal([]byte(value), &opts); err != nil {
			return fmt.Errorf("%w: %v", ErrBadLocation, err)
		}
		p, _ := opts["path"].(string)
		path = p
		delete(opts, "path")
	}

	e.history.SaveCurrent()
	e.nav.Navigate(path, ctxElt, opts, func() {
		e.history.Push(path)
	})
	return nil
}
