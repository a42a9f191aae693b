// Package host checks that the page provides the elements the playground
// renders into.
package host

import (
	"errors"
	"fmt"
)

// Mount point ids.
const (
	TitleRoot    = "title-root"
	ControlsRoot = "react-root"
	SurfaceRoot  = "p5-root"
)

// MountPoints lists every required id in lookup order.
var MountPoints = []string{TitleRoot, ControlsRoot, SurfaceRoot}

var ErrMissingMount = errors.New("missing mount point")

// Document answers whether an element id exists.
type Document interface {
	Has(id string) bool
}

// Require fails on the first id the document does not have.
func Require(doc Document, ids ...string) error {
	for _, id := range ids {
		if !doc.Has(id) {
			return fmt.Errorf("%w: cannot find element #%s", ErrMissingMount, id)
		}
	}
	return nil
}

// Window is the native document: the ebiten window hosts the title, the
// controls and the surface itself, so every mount point exists.
type Window struct{}

func (Window) Has(string) bool { return true }

// IDs is a fixed set of element ids.
type IDs map[string]bool

func (s IDs) Has(id string) bool { return s[id] }
