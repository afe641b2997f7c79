package appstate

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/dragbox/internal/clipboard"
	"github.com/example/dragbox/internal/input"
	"github.com/example/dragbox/internal/render"
)

const messageDuration = 2 * time.Second

// window is the part of screen.Window the event loop needs.
type window interface {
	render.Uploader
	Send(event interface{})
}

// session is the single-goroutine state behind one open window.
type session struct {
	app    *AppState
	win    window
	canvas *render.Canvas
	input  *input.Handler

	message      string
	messageUntil time.Time

	now       func() time.Time
	after     func(time.Duration, func())
	savePNG   func(path string, img image.Image) error
	copyImage func(img image.Image) error
}

func newSession(a *AppState, w window, canvas *render.Canvas) *session {
	return &session{
		app:    a,
		win:    w,
		canvas: canvas,
		input: input.New(a.Store,
			input.WithColor(a.boxColor()),
			input.WithViewport(a.Size.X, a.Size.Y)),
		now:       time.Now,
		after:     func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		savePNG:   writePNG,
		copyImage: clipboard.WriteImage,
	}
}

// handle dispatches one platform event. It returns false when the loop
// should stop.
func (s *session) handle(e interface{}) bool {
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			s.canvas.Release()
			return false
		}
	case size.Event:
		s.input.SetViewport(e.WidthPx, e.HeightPx)
		if err := s.canvas.Resize(image.Pt(e.WidthPx, e.HeightPx)); err != nil {
			log.Printf("resize canvas: %v", err)
			return true
		}
		s.win.Send(paint.Event{})
	case paint.Event:
		s.paint()
	case mouse.Event:
		if s.input.Handle(e) {
			s.win.Send(paint.Event{})
		}
	case key.Event:
		if e.Direction != key.DirPress {
			return true
		}
		return s.key(e)
	}
	return true
}

func (s *session) paint() {
	s.canvas.Paint(s.win, func(dst *image.RGBA) {
		render.Render(dst, s.app.Store.Boxes(), s.app.Theme)
		if s.message != "" && s.now().Before(s.messageUntil) {
			render.DrawMessage(dst, s.message, s.app.Theme)
		}
	})
}

func (s *session) key(e key.Event) bool {
	if e.Code == key.CodeEscape {
		return false
	}
	switch e.Rune {
	case 'q', 'Q':
		return false
	case 's', 'S':
		s.save()
	case 'c', 'C':
		s.copy()
	}
	return true
}

// frame renders the boxes without any overlay at the current canvas size.
func (s *session) frame() *image.RGBA {
	sz := s.canvas.Size()
	if sz == (image.Point{}) {
		return nil
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	render.Render(img, s.app.Store.Boxes(), s.app.Theme)
	return img
}

func (s *session) save() {
	img := s.frame()
	if img == nil {
		return
	}
	if err := s.savePNG(s.app.Output, img); err != nil {
		log.Printf("save: %v", err)
		s.flash("Save failed")
		return
	}
	s.flash(fmt.Sprintf("Saved %s", s.app.Output))
	s.app.Notifier.Save(s.app.Output)
}

func (s *session) copy() {
	img := s.frame()
	if img == nil {
		return
	}
	if err := s.copyImage(img); err != nil {
		log.Printf("copy: %v", err)
		s.flash("Copy failed")
		return
	}
	s.flash("Copied to clipboard")
	s.app.Notifier.Copy("canvas")
}

// flash shows msg for messageDuration and schedules the repaint that hides it.
func (s *session) flash(msg string) {
	s.message = msg
	s.messageUntil = s.now().Add(messageDuration)
	s.win.Send(paint.Event{})
	s.after(messageDuration, func() { s.win.Send(paint.Event{}) })
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
