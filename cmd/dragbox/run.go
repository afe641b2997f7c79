package main

import (
	"fmt"
	"os"

	"github.com/example/dragbox/internal/appstate"
)

type runCmd struct {
	*root
}

func (c *runCmd) Run() error {
	if c.width <= 0 || c.height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.width, c.height)
	}
	t, err := c.resolveTheme()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v. using default.\n", err)
	}
	opts := []appstate.Option{
		appstate.WithSize(c.width, c.height),
		appstate.WithTheme(t),
		appstate.WithOutput(c.outputPath()),
		appstate.WithNotifier(c.notifier),
	}
	if c.config.BoxColor != nil {
		opts = append(opts, appstate.WithBoxColor(*c.config.BoxColor))
	}
	c.runApp(appstate.New(opts...))
	return nil
}
