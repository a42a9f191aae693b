//go:build !(js && wasm)

package querystate

// Current returns an in-memory location starting at href. Native builds have
// no address bar, so the flag only lives as long as the process.
func Current(href string) Location {
	return NewMemory(href)
}
