//go:build js && wasm

package game

import (
	"errors"
	"syscall/js"
)

func chooseSnapshotPath(string) (string, bool, error) {
	return "", false, errors.New("snapshots are not available in the browser")
}

// ReportFatal shows a startup error with window.alert.
func ReportFatal(err error) {
	js.Global().Call("alert", err.Error())
}
