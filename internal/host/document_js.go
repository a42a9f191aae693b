//go:build js && wasm

package host

import "syscall/js"

// Browser looks ids up with document.getElementById.
type Browser struct{}

func (Browser) Has(id string) bool {
	el := js.Global().Get("document").Call("getElementById", id)
	return !el.IsNull() && !el.IsUndefined()
}

// Current returns the document of the running page.
func Current() Document { return Browser{} }
