//go:build !(js && wasm)

package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

const dialogTitle = "Sketch Playground"

// chooseSnapshotPath asks where to save a PNG. ok is false when the user
// cancels.
func chooseSnapshotPath(suggested string) (path string, ok bool, err error) {
	path, err = zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename(suggested),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return path, true, nil
}

// ReportFatal shows a startup error in a native dialog.
func ReportFatal(err error) {
	_ = zenity.Error(err.Error(), zenity.Title(dialogTitle), zenity.ErrorIcon)
}
