package chip8

import "fmt"

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Frame is a complete monochrome image of the display, indexed [y][x].
type Frame [Height][Width]bool

// Framebuffer is the monochrome display memory. Every mutation marks it dirty
// until the presentation side acknowledges it using TakeDirty.
type Framebuffer struct {
	pixels Frame
	dirty  bool
}

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	f.pixels = Frame{}
	f.dirty = true
}

// Get returns the state of the pixel at x, y.
func (f *Framebuffer) Get(x, y int) bool {
	checkCoordinates(x, y)
	return f.pixels[y][x]
}

// Set sets the state of the pixel at x, y.
func (f *Framebuffer) Set(x, y int, val bool) {
	checkCoordinates(x, y)
	f.pixels[y][x] = val
	f.dirty = true
}

// TakeDirty returns whether the framebuffer changed since the last call and
// resets the flag.
func (f *Framebuffer) TakeDirty() bool {
	dirty := f.dirty
	f.dirty = false
	return dirty
}

// Snapshot returns a copy of the current display contents.
func (f *Framebuffer) Snapshot() Frame {
	return f.pixels
}

// checkCoordinates panics for coordinates outside of the display, callers
// are required to wrap or clip them.
func checkCoordinates(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		panic(fmt.Sprintf("pixel %d,%d outside of %dx%d display", x, y, Width, Height))
	}
}
