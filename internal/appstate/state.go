// Package appstate runs the dragbox window: it owns the shiny window, the
// off-screen canvas and the event loop that feeds the input handler.
package appstate

import (
	"image"
	"image/color"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"

	"github.com/example/dragbox/internal/boxes"
	"github.com/example/dragbox/internal/input"
	"github.com/example/dragbox/internal/notify"
	"github.com/example/dragbox/internal/render"
	"github.com/example/dragbox/internal/theme"
)

// ProgramTitle is the static window title.
const ProgramTitle = "Draggable Box App"

// AppState holds application configuration for the UI.
type AppState struct {
	Title    string
	Size     image.Point
	Theme    *theme.Theme
	BoxColor *color.RGBA
	Output   string
	Notifier *notify.Notifier

	// Store is exposed so callers can seed or inspect boxes around Run.
	Store *boxes.Store
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithSize sets the initial client size.
func WithSize(w, h int) Option { return func(a *AppState) { a.Size = image.Pt(w, h) } }

// WithTheme sets the colors used to paint the canvas.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithBoxColor overrides the theme's fill for new boxes.
func WithBoxColor(c color.RGBA) Option { return func(a *AppState) { a.BoxColor = &c } }

// WithOutput sets the file written by the save shortcut.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithNotifier sets the notifier used after save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Title:  ProgramTitle,
		Size:   image.Pt(input.DefaultWidth, input.DefaultHeight),
		Output: "dragbox.png",
		Store:  boxes.NewStore(),
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if a.Size.X <= 0 || a.Size.Y <= 0 {
		a.Size = image.Pt(input.DefaultWidth, input.DefaultHeight)
	}
	return a
}

// boxColor is the fill used for boxes created by a click.
func (a *AppState) boxColor() color.RGBA {
	if a.BoxColor != nil {
		return *a.BoxColor
	}
	return a.Theme.BoxFill
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main opens the window and pumps events until the window dies or the user
// quits. The canvas buffer is released on every exit path.
func (a *AppState) Main(s screen.Screen) {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  a.Size.X,
		Height: a.Size.Y,
		Title:  a.Title,
	})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	canvas := render.NewCanvas(s)
	defer canvas.Release()
	if err := canvas.Resize(a.Size); err != nil {
		log.Fatalf("new buffer: %v", err)
	}

	sess := newSession(a, w, canvas)
	for {
		if !sess.handle(w.NextEvent()) {
			return
		}
	}
}
