// Package viewer holds the selection state of a subject viewer and the page
// state that decides which viewer is shown.
package viewer

import (
	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/catalog"
	"github.com/Faultbox/learn3d/internal/scene"
)

// InfoPanel is the descriptive text shown next to the viewport.
type InfoPanel struct {
	Title        string
	Period       string
	Description  string
	Facts        []string
	FactsHeading string
	Tips         []string
}

// Viewer owns the selected model of one registry, its node tree and the
// animation driver bound to that tree.
type Viewer struct {
	reg       *catalog.Registry
	selected  int
	root      *scene.Node
	driver    *anim.Driver
	listeners []func(index int, info InfoPanel)
}

// New returns a viewer showing the first model of reg.
func New(reg *catalog.Registry) *Viewer {
	v := &Viewer{
		reg:    reg,
		driver: anim.NewDriver(),
	}
	v.mount(0)
	return v
}

func (v *Viewer) mount(i int) {
	v.selected = i
	v.root = v.reg.Scene(i)
	v.driver.Mount(v.root)
}

// Select makes model i active. Selecting the active model does nothing and
// returns false. An out-of-range index panics.
func (v *Viewer) Select(i int) bool {
	if i == v.selected {
		return false
	}
	v.reg.At(i) // bounds check before touching state
	v.mount(i)

	info := v.Info()
	for _, fn := range v.listeners {
		fn(i, info)
	}
	return true
}

// Next selects the following model, wrapping at the end.
func (v *Viewer) Next() bool {
	return v.Select((v.selected + 1) % v.reg.Len())
}

// Prev selects the preceding model, wrapping at the start.
func (v *Viewer) Prev() bool {
	return v.Select((v.selected - 1 + v.reg.Len()) % v.reg.Len())
}

// OnChange registers fn to run after every effective selection change.
func (v *Viewer) OnChange(fn func(index int, info InfoPanel)) {
	v.listeners = append(v.listeners, fn)
}

// Selected returns the active index.
func (v *Viewer) Selected() int {
	return v.selected
}

// Registry returns the registry being browsed.
func (v *Viewer) Registry() *catalog.Registry {
	return v.reg
}

// Root returns the node tree of the active model, stage wrapper included.
func (v *Viewer) Root() *scene.Node {
	return v.root
}

// Info returns the panel content for the active model.
func (v *Viewer) Info() InfoPanel {
	d := v.reg.At(v.selected)
	return InfoPanel{
		Title:        d.Name,
		Period:       d.Period,
		Description:  d.Description,
		Facts:        d.Facts,
		FactsHeading: v.reg.FactsHeading,
		Tips:         v.reg.Tips,
	}
}

// Tick advances the active model's animations by one frame.
func (v *Viewer) Tick(c anim.Clock) {
	v.driver.Tick(c)
}

// Animating reports whether the driver is bound to the active tree.
func (v *Viewer) Animating() bool {
	return v.driver.Mounted() && v.driver.Root() == v.root
}

// Close stops driving the active tree.
func (v *Viewer) Close() {
	v.driver.Unmount()
}
