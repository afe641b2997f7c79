package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/dragbox/internal/appstate"
	"github.com/example/dragbox/internal/config"
	"github.com/example/dragbox/internal/notify"
	"github.com/example/dragbox/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs         *flag.FlagSet
	program    string
	config     *config.Config
	notifier   *notify.Notifier
	width      int
	height     int
	themeName  string
	output     string
	saveAlerts bool
	copyAlerts bool
	// runApp starts the window; tests replace it.
	runApp func(*appstate.AppState)
}

func (r *root) Program() string        { return r.program }
func (r *root) FlagSet() *flag.FlagSet { return r.fs }

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWithConfig(cfg)
}

func newRootWithConfig(cfg *config.Config) *root {
	r := &root{
		fs:       flag.NewFlagSet("dragbox", flag.ContinueOnError),
		program:  "dragbox",
		config:   cfg,
		notifier: notify.New(notify.LoadPreferences()),
		runApp:   func(a *appstate.AppState) { a.Run() },
	}
	r.fs.IntVar(&r.width, "width", cfg.Width, "initial window width in pixels")
	r.fs.IntVar(&r.height, "height", cfg.Height, "initial window height in pixels")
	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme name or file")
	r.fs.StringVar(&r.output, "output", "dragbox.png", "file written by the save shortcut")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving the canvas")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying the canvas")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)

	name := "run"
	var rest []string
	if r.fs.NArg() > 0 {
		name = r.fs.Arg(0)
		rest = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch name {
	case "run":
		cmd = &runCmd{root: r}
	case "themes":
		cmd = &themesCmd{root: r}
	case "config":
		cmd, err = parseConfigCmd(rest, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolveTheme picks the theme from the flag, DRAGBOX_THEME, then the config.
func (r *root) resolveTheme() (*theme.Theme, error) {
	name := r.themeName
	if name == "" {
		name = os.Getenv("DRAGBOX_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	if t, ok := r.config.Themes[name]; ok {
		return t, nil
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		return theme.Default(), fmt.Errorf("load theme %q: %w", name, err)
	}
	return t, nil
}

// outputPath places a relative output under the configured save directory.
func (r *root) outputPath() string {
	if r.config.SaveDir == "" || filepath.IsAbs(r.output) {
		return r.output
	}
	return filepath.Join(r.config.SaveDir, r.output)
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.Is(err, flag.ErrHelp):
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
