package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData attaches a resolv broadphase object to an entry
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SyncRect moves the object onto r, rebuilding its shape when the size changed.
func (o *ObjectData) SyncRect(r Rect) {
	if o.W != r.W || o.H != r.H {
		o.W = r.W
		o.H = r.H
		o.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	}
	o.X = r.X
	o.Y = r.Y
	o.Update()
}

// Rect returns the object's bounds
func (o *ObjectData) Rect() Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Space = donburi.NewComponentType[resolv.Space]()
