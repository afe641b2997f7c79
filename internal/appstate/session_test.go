package appstate

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/dragbox/internal/boxes"
	"github.com/example/dragbox/internal/input"
	"github.com/example/dragbox/internal/render"
)

type fakeBuffer struct {
	rgba     *image.RGBA
	released bool
}

func (b *fakeBuffer) Release()                { b.released = true }
func (b *fakeBuffer) Size() image.Point       { return b.rgba.Bounds().Size() }
func (b *fakeBuffer) Bounds() image.Rectangle { return b.rgba.Bounds() }
func (b *fakeBuffer) RGBA() *image.RGBA       { return b.rgba }

type fakeScreen struct {
	buffers []*fakeBuffer
	fail    bool
}

func (s *fakeScreen) NewBuffer(sz image.Point) (screen.Buffer, error) {
	if s.fail {
		return nil, errors.New("no memory")
	}
	b := &fakeBuffer{rgba: image.NewRGBA(image.Rectangle{Max: sz})}
	s.buffers = append(s.buffers, b)
	return b, nil
}

type fakeWindow struct {
	sent      []interface{}
	uploads   int
	publishes int
}

func (w *fakeWindow) Upload(dp image.Point, src screen.Buffer, sr image.Rectangle) { w.uploads++ }
func (w *fakeWindow) Publish() screen.PublishResult {
	w.publishes++
	return screen.PublishResult{}
}
func (w *fakeWindow) Send(e interface{}) { w.sent = append(w.sent, e) }

func (w *fakeWindow) paintRequests() int {
	n := 0
	for _, e := range w.sent {
		if _, ok := e.(paint.Event); ok {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T, opts ...Option) (*session, *fakeScreen, *fakeWindow) {
	t.Helper()
	a := New(opts...)
	scr := &fakeScreen{}
	win := &fakeWindow{}
	canvas := render.NewCanvas(scr)
	if err := canvas.Resize(a.Size); err != nil {
		t.Fatal(err)
	}
	s := newSession(a, win, canvas)
	s.after = func(time.Duration, func()) {}
	return s, scr, win
}

func leftPress(x, y float32) mouse.Event {
	return mouse.Event{X: x, Y: y, Button: mouse.ButtonLeft, Direction: mouse.DirPress}
}

func TestClickCreatesBoxAndRequestsPaint(t *testing.T) {
	s, _, win := newTestSession(t)
	if !s.handle(leftPress(700, 500)) {
		t.Fatal("handle returned false")
	}
	if s.app.Store.Len() != 1 {
		t.Fatalf("store len = %d", s.app.Store.Len())
	}
	want := boxes.Box{X: 700, Y: 500, Size: 60, Color: boxes.DefaultColor}
	if got := s.app.Store.At(0); got != want {
		t.Fatalf("box = %+v, want %+v", got, want)
	}
	if s.input.State() != input.Idle {
		t.Fatalf("state = %v", s.input.State())
	}
	if win.paintRequests() != 1 {
		t.Fatalf("paint requests = %d", win.paintRequests())
	}
}

func TestPaintDrawsStoreIntoBuffer(t *testing.T) {
	s, scr, win := newTestSession(t)
	s.handle(leftPress(100, 100))
	s.handle(paint.Event{})
	if win.uploads != 1 || win.publishes != 1 {
		t.Fatalf("uploads=%d publishes=%d", win.uploads, win.publishes)
	}
	buf := scr.buffers[len(scr.buffers)-1].rgba
	if got := buf.RGBAAt(130, 130); got != boxes.DefaultColor {
		t.Fatalf("box pixel = %+v", got)
	}
	if got := buf.RGBAAt(10, 10); got != s.app.Theme.Background {
		t.Fatalf("background pixel = %+v", got)
	}
}

func TestSizeEventRecreatesBufferAndViewport(t *testing.T) {
	s, scr, win := newTestSession(t)
	s.handle(size.Event{WidthPx: 300, HeightPx: 200})
	if len(scr.buffers) != 2 || !scr.buffers[0].released {
		t.Fatalf("buffers = %d, first released = %v", len(scr.buffers), scr.buffers[0].released)
	}
	if got := s.canvas.Size(); got != image.Pt(300, 200) {
		t.Fatalf("canvas size = %v", got)
	}
	if win.paintRequests() != 1 {
		t.Fatalf("paint requests = %d", win.paintRequests())
	}
	s.handle(leftPress(10, 10))
	if got := s.app.Store.At(0).Size; got != 20 {
		t.Fatalf("box size after resize = %d, want 20", got)
	}
}

func TestResizeFailureSkipsPaint(t *testing.T) {
	s, scr, win := newTestSession(t)
	scr.fail = true
	if !s.handle(size.Event{WidthPx: 10, HeightPx: 10}) {
		t.Fatal("resize failure stopped the loop")
	}
	s.handle(paint.Event{})
	if win.uploads != 0 {
		t.Fatalf("uploads = %d, want 0", win.uploads)
	}
}

func TestLifecycleDeadReleasesCanvas(t *testing.T) {
	s, scr, _ := newTestSession(t)
	if s.handle(lifecycle.Event{To: lifecycle.StageDead}) {
		t.Fatal("expected loop to stop")
	}
	if !scr.buffers[0].released {
		t.Fatal("buffer not released on destroy")
	}
	if !s.handle(lifecycle.Event{To: lifecycle.StageFocused}) {
		t.Fatal("non-dead lifecycle stopped the loop")
	}
}

func TestDragThroughSession(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.handle(leftPress(700, 500))
	s.handle(mouse.Event{X: 700, Y: 500, Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	s.handle(leftPress(710, 510))
	s.handle(mouse.Event{X: 750, Y: 540})
	s.handle(mouse.Event{X: 750, Y: 540, Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	if got := s.app.Store.At(0); got.X != 750 || got.Y != 540 {
		t.Fatalf("box = %+v", got)
	}
	if s.input.State() != input.Idle || s.input.Selected() != -1 {
		t.Fatalf("state = %v/%d", s.input.State(), s.input.Selected())
	}
}

func TestQuitKeys(t *testing.T) {
	s, _, _ := newTestSession(t)
	if !s.handle(key.Event{Rune: 'q', Direction: key.DirRelease}) {
		t.Fatal("key release quit")
	}
	if s.handle(key.Event{Rune: 'q', Direction: key.DirPress}) {
		t.Fatal("q did not quit")
	}
	if s.handle(key.Event{Code: key.CodeEscape, Rune: -1, Direction: key.DirPress}) {
		t.Fatal("escape did not quit")
	}
}

func TestSaveWritesFrameWithoutOverlay(t *testing.T) {
	s, _, win := newTestSession(t, WithOutput("out/boxes.png"))
	s.handle(leftPress(0, 0))
	var gotPath string
	var gotImg image.Image
	s.savePNG = func(path string, img image.Image) error {
		gotPath, gotImg = path, img
		return nil
	}
	s.handle(key.Event{Rune: 's', Direction: key.DirPress})
	if gotPath != "out/boxes.png" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotImg == nil || gotImg.Bounds() != image.Rect(0, 0, 800, 600) {
		t.Fatalf("image = %v", gotImg)
	}
	if s.message != "Saved out/boxes.png" {
		t.Fatalf("message = %q", s.message)
	}
	if win.paintRequests() < 2 {
		t.Fatalf("paint requests = %d", win.paintRequests())
	}
}

func TestCopyFailureShowsMessage(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.copyImage = func(image.Image) error { return errors.New("no display") }
	s.handle(key.Event{Rune: 'c', Direction: key.DirPress})
	if s.message != "Copy failed" {
		t.Fatalf("message = %q", s.message)
	}
}

func TestMessageExpires(t *testing.T) {
	s, scr, _ := newTestSession(t)
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }
	s.copyImage = func(image.Image) error { return nil }
	s.handle(key.Event{Rune: 'c', Direction: key.DirPress})

	s.handle(paint.Event{})
	buf := scr.buffers[0].rgba
	if !hasColor(buf, image.Rect(300, 280, 500, 320), s.app.Theme.MessageText) {
		t.Fatal("message not drawn while active")
	}

	now = now.Add(3 * time.Second)
	s.handle(paint.Event{})
	if hasColor(buf, image.Rect(300, 280, 500, 320), s.app.Theme.MessageText) {
		t.Fatal("message still drawn after expiry")
	}
}

func hasColor(img *image.RGBA, r image.Rectangle, c color.RGBA) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}

func TestWithBoxColorOverridesTheme(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	s, _, _ := newTestSession(t, WithBoxColor(red))
	s.handle(leftPress(5, 5))
	if got := s.app.Store.At(0).Color; got != red {
		t.Fatalf("color = %+v, want %+v", got, red)
	}
}

func TestWritePNG(t *testing.T) {
	path := t.TempDir() + "/nested/out.png"
	if err := writePNG(path, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
}
