package viewer

import (
	"github.com/Faultbox/learn3d/internal/catalog"
)

// Page is the top-level state: the landing hero and, once requested, the
// demo section with one subject viewer.
type Page struct {
	DemoVisible bool
	Subject     string

	hero   *Viewer
	viewer *Viewer
}

// NewPage returns a page with the demo hidden.
func NewPage() *Page {
	return &Page{hero: New(catalog.Hero())}
}

// ShowDemo reveals the demo with the geometry viewer.
func (p *Page) ShowDemo() {
	p.DemoVisible = true
	p.switchTo(catalog.SubjectGeometry)
}

// SelectSubject reveals the demo with the viewer for key. Unknown keys are
// ignored and reported as false.
func (p *Page) SelectSubject(key string) bool {
	if key == catalog.SubjectHero {
		return false
	}
	if _, ok := catalog.BySubject(key); !ok {
		return false
	}
	p.DemoVisible = true
	p.switchTo(key)
	return true
}

// HideDemo returns to the landing screen. The active viewer is kept so the
// demo reopens where it was left.
func (p *Page) HideDemo() {
	p.DemoVisible = false
}

func (p *Page) switchTo(key string) {
	if p.viewer != nil && p.Subject == key {
		return
	}
	if p.viewer != nil {
		p.viewer.Close()
	}
	reg, _ := catalog.BySubject(key)
	p.Subject = key
	p.viewer = New(reg)
}

// Viewer returns the active subject viewer, or nil while the demo is hidden.
func (p *Page) Viewer() *Viewer {
	if !p.DemoVisible {
		return nil
	}
	return p.viewer
}

// Hero returns the landing background viewer.
func (p *Page) Hero() *Viewer {
	return p.hero
}
