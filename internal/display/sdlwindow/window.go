// Package sdlwindow provides a display backend using an SDL window for the
// frame output and the keyboard for the keypad.
package sdlwindow

import (
	"fmt"
	"runtime"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/driver"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "chip8vm"

// SDL requires all video calls to be made from the main thread.
func init() {
	runtime.LockOSThread()
}

// Window renders every pixel as a filled square of scale × scale size.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	pressed  chip8.KeyLatch
}

// New initializes SDL and opens the window.
func New(scale int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	w := &Window{
		scale: int32(scale),
	}

	var err error
	w.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		chip8.Width*w.scale, chip8.Height*w.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return w, nil
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() error {
	var err error
	if destroyErr := w.renderer.Destroy(); destroyErr != nil {
		err = fmt.Errorf("destroying renderer: %w", destroyErr)
	}
	if destroyErr := w.window.Destroy(); destroyErr != nil && err == nil {
		err = fmt.Errorf("destroying window: %w", destroyErr)
	}
	sdl.Quit()
	return err
}

// Present draws the frame with lit pixels in white on black.
func (w *Window) Present(frame chip8.Frame) error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}

	rect := sdl.Rect{W: w.scale, H: w.scale}
	for y := range frame {
		for x, lit := range frame[y] {
			if !lit {
				continue
			}
			rect.X = int32(x) * w.scale
			rect.Y = int32(y) * w.scale
			if err := w.renderer.FillRect(&rect); err != nil {
				return fmt.Errorf("drawing pixel: %w", err)
			}
		}
	}

	w.renderer.Present()
	return nil
}

// PollKeys drains the SDL event queue and copies the current key state into
// the latch. Closing the window or pressing escape requests to quit.
func (w *Window) PollKeys(latch *chip8.KeyLatch) error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return driver.ErrQuit

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return driver.ErrQuit
			}
			key, ok := display.KeyForRune(rune(ev.Keysym.Sym))
			if !ok {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				w.pressed[key] = true
			case sdl.KEYUP:
				w.pressed[key] = false
			}
		}
	}

	*latch = w.pressed
	return nil
}
