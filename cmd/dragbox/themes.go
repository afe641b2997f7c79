package main

import (
	"fmt"
	"sort"

	"github.com/example/dragbox/internal/theme"
)

type themesCmd struct {
	*root
}

// Run lists the embedded themes followed by those defined in the config file.
func (c *themesCmd) Run() error {
	for _, name := range theme.EmbeddedNames() {
		fmt.Println(name)
	}
	names := make([]string, 0, len(c.config.Themes))
	for name := range c.config.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s (config)\n", name)
	}
	return nil
}
