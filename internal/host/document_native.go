//go:build !(js && wasm)

package host

// Current returns the native window document.
func Current() Document { return Window{} }
