package viewer

import (
	"errors"
	"image"

	"InteractiveMandelbrot/hud"
	"InteractiveMandelbrot/mandelbrot"
	"InteractiveMandelbrot/session"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/text/message"
)

// Run opens a window showing the frames of controller and forwards wheel, mouse and touch input to it.
// It blocks until the window closes.
func Run(controller session.Controller, title string, scale int, showHUD bool) error {
	g, err := newGame(controller, showHUD)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(title)
	frame := g.fetcher.Frame()
	ebiten.SetWindowSize(int(frame.Width)*scale, int(frame.Height)*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	controller session.Controller
	dirty      bool
	dragging   bool
	fetcher    *session.FrameFetcher
	frameImage *ebiten.Image
	img        *image.RGBA
	lastX      int
	lastY      int
	logger     bslogger.Logger
	printer    *message.Printer
	showHUD    bool
	touchIDs   []ebiten.TouchID
	tracker    *session.TouchTracker
}

func newGame(controller session.Controller, showHUD bool) (*game, error) {
	fetcher, err := session.NewFrameFetcher(controller)
	if err != nil {
		return nil, err
	}
	return &game{
		controller: controller,
		dirty:      true,
		fetcher:    fetcher,
		logger:     bslogger.NewLogger("Viewer", bslogger.Normal, nil),
		printer:    hud.NewPrinter(),
		showHUD:    showHUD,
		tracker:    session.NewTouchTracker(controller),
	}, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.handle(g.controller.Reset())
	}

	// Wheel. Browsers report scrolling down as a positive delta while ebiten reports it as negative.
	if _, scrollY := ebiten.Wheel(); scrollY != 0 {
		cursorX, cursorY := ebiten.CursorPosition()
		sign := 1
		if scrollY > 0 {
			sign = -1
		}
		g.handle(g.controller.OnZoom(float64(cursorX), float64(cursorY), sign))
	}

	// Drag with the primary button
	cursorX, cursorY := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging && (cursorX != g.lastX || cursorY != g.lastY) {
			g.handle(g.controller.OnPan(float64(cursorX-g.lastX), float64(cursorY-g.lastY)))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = cursorX, cursorY

	g.updateTouches()

	// One fetch per tick however many gestures were accepted
	fetched, err := g.fetcher.Fetch()
	if err != nil {
		g.logger.Errorf("Unable to fetch frame: %s", err)
	}
	if fetched {
		g.dirty = true
	}
	return nil
}

func (g *game) updateTouches() {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		g.tracker.Start()
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) == 0 {
		g.tracker.Start()
		return
	}

	touches := make([]session.Touch, 0, len(g.touchIDs))
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, session.Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	g.handle(g.tracker.Move(touches))
}

// handle marks the frame outdated after an accepted gesture. Degenerate gestures are expected while a
// touch baseline is recorded and are dropped silently.
func (g *game) handle(err error) {
	if err != nil {
		if !errors.Is(err, mandelbrot.ErrDegenerateGesture) {
			g.logger.Warningf("Gesture failed: %s", err)
		}
		return
	}
	g.fetcher.Invalidate()
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.fetcher.Frame()
	width, height := int(frame.Width), int(frame.Height)
	if g.img == nil || g.img.Bounds().Dx() != width || g.img.Bounds().Dy() != height {
		g.img = image.NewRGBA(image.Rect(0, 0, width, height))
		if g.frameImage != nil {
			g.frameImage.Deallocate()
		}
		g.frameImage = ebiten.NewImage(width, height)
		g.dirty = true
	}

	if g.dirty {
		copy(g.img.Pix, frame.Pix)
		if g.showHUD {
			hud.Draw(g.img, hud.Lines(frame, g.printer))
		}
		g.frameImage.WritePixels(g.img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.frameImage, nil)
}

// Layout keeps the logical screen at the raster size so cursor positions are raster pixels.
func (g *game) Layout(outsideWidth int, outsideHeight int) (int, int) {
	frame := g.fetcher.Frame()
	return int(frame.Width), int(frame.Height)
}
