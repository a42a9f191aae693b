//go:build js && wasm

package querystate

import (
	"errors"
	"syscall/js"
)

// Browser is the page's window.location, rewritten with
// history.replaceState.
type Browser struct{}

func (Browser) Href() string {
	return js.Global().Get("location").Get("href").String()
}

func (Browser) Replace(href string) error {
	history := js.Global().Get("history")
	if history.IsUndefined() {
		return errors.New("window.history is not available")
	}
	history.Call("replaceState", js.ValueOf(map[string]any{}), "", href)
	return nil
}

// Current returns the browser location.
func Current(string) Location {
	return Browser{}
}
