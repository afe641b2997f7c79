package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/dragbox/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var themeLines map[string]*strings.Builder
	var current *strings.Builder

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			current = nil
			if name, ok := strings.CutPrefix(section, "theme."); ok {
				if themeLines == nil {
					themeLines = make(map[string]*strings.Builder)
				}
				current = &strings.Builder{}
				themeLines[name] = current
			}
			continue
		}

		if current != nil {
			// Theme sections use the theme file syntax; normalise "=" to ":".
			if k, v, ok := splitKV(line); ok {
				fmt.Fprintf(current, "%s: %s\n", k, v)
			}
			continue
		}

		key, value, ok := splitKV(line)
		if !ok {
			continue
		}
		switch section {
		case "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		case "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for name, body := range themeLines {
		t, err := theme.Parse(strings.NewReader(body.String()))
		if err != nil {
			return nil, fmt.Errorf("error in section [theme.%s]: %w", name, err)
		}
		if t.Name == theme.Default().Name {
			t.Name = name
		}
		cfg.Themes[name] = t
	}
	return cfg, nil
}

// splitKV accepts "key = value" and "key: value".
func splitKV(line string) (string, string, bool) {
	sep := strings.IndexAny(line, "=:")
	if sep < 0 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:sep])
	value := strings.TrimSpace(line[sep+1:])
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	case "width":
		n, err := parseDimension(key, value)
		if err != nil {
			return err
		}
		cfg.Width = n
	case "height":
		n, err := parseDimension(key, value)
		if err != nil {
			return err
		}
		cfg.Height = n
	case "box_color":
		col, err := theme.ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		cfg.BoxColor = &col
	}
	return nil
}

func parseDimension(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}
