package render

import (
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth  int            // maximum line width in terminal cells; 0 means unlimited
	ShowValues bool           // print values next to keys
	Color      bool           // colorize output with Palette
	Context    *uax11.Context // context for display width of labels; nil means uax11.LatinContext
	Palette    *Palette       // nil means DefaultPalette()
}

// Palette holds the colors used for console output. Nodes are colored by
// their balance factor.
type Palette struct {
	LeftHeavy  *color.Color // balance factor -1
	Balanced   *color.Color // balance factor 0
	RightHeavy *color.Color // balance factor +1
	Branch     *color.Color // connecting lines
}

// DefaultPalette returns the palette used if none is configured.
func DefaultPalette() *Palette {
	return &Palette{
		LeftHeavy:  color.New(color.FgMagenta),
		Balanced:   color.New(color.FgGreen),
		RightHeavy: color.New(color.FgBlue),
		Branch:     color.New(color.Faint),
	}
}

func (p *Palette) forBalance(bf int) *color.Color {
	switch {
	case bf < 0:
		return p.LeftHeavy
	case bf > 0:
		return p.RightHeavy
	}
	return p.Balanced
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly. Colors are
// enabled for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else if w > 10 {
			config.LineWidth = w - 1
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("render: setting line width to %d cells, color=%v", config.LineWidth, config.Color)
	return config
}

// normalized fills in defaults for unset fields. It does not modify config.
func (config *Config) normalized() *Config {
	if config == nil {
		config = ConfigFromTerminal()
	}
	c := *config
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Palette == nil {
		c.Palette = DefaultPalette()
	}
	if c.LineWidth < 0 {
		c.LineWidth = 0
	}
	return &c
}
