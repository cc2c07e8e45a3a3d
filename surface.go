package rounded

import "github.com/gogpu/gg-rounded/material"

// Surface is the host element a rounded Image decorates. The image reads
// it but never owns it.
type Surface interface {
	// Extent returns the current width and height.
	Extent() Extent
	// Color returns the element's base color.
	Color() RGBA
	// MainTexture returns the element's primary texture, or nil.
	MainTexture() material.Texture
}

// ExtentNotifier is implemented by surfaces that report size changes.
// The returned function cancels the subscription.
type ExtentNotifier interface {
	NotifyExtent(fn func(Extent)) (cancel func())
}

// BasicSurface is a minimal in-memory Surface with change notification,
// useful for tools and tests.
type BasicSurface struct {
	size      Extent
	color     RGBA
	texture   material.Texture
	listeners map[int]func(Extent)
	nextID    int
}

// NewBasicSurface returns a white surface of the given size.
func NewBasicSurface(width, height float64) *BasicSurface {
	return &BasicSurface{size: Extent{Width: width, Height: height}, color: White}
}

// Extent implements Surface.
func (s *BasicSurface) Extent() Extent { return s.size }

// Color implements Surface.
func (s *BasicSurface) Color() RGBA { return s.color }

// MainTexture implements Surface.
func (s *BasicSurface) MainTexture() material.Texture { return s.texture }

// SetColor changes the base color. Images pick it up on their next sync.
func (s *BasicSurface) SetColor(c RGBA) { s.color = c }

// SetMainTexture changes the primary texture.
func (s *BasicSurface) SetMainTexture(t material.Texture) { s.texture = t }

// Resize changes the extent and notifies subscribers synchronously, in
// subscription order.
func (s *BasicSurface) Resize(width, height float64) {
	s.size = Extent{Width: width, Height: height}
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			fn(s.size)
		}
	}
}

// NotifyExtent implements ExtentNotifier.
func (s *BasicSurface) NotifyExtent(fn func(Extent)) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]func(Extent))
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Listeners returns the number of active subscriptions.
func (s *BasicSurface) Listeners() int { return len(s.listeners) }
