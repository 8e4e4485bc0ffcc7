// Package options defines OutputConfig, the read-only snapshot of every
// setting that drives one render pass.
package options

import (
	"time"

	"github.com/flarebyte/greet/internal/config"
	"github.com/flarebyte/greet/internal/effect"
)

// DefaultName is substituted when no name is given.
const DefaultName = "World"

// OutputConfig is built once per invocation and never mutated afterwards.
type OutputConfig struct {
	// Languages is the filter; HasLanguages false means every language.
	Languages    []string
	HasLanguages bool
	Name         string

	ShowFiglet  bool
	UseColor    bool
	RandomMode  bool
	Cowsay      bool
	PartyMode   bool
	ShowFortune bool
	GridLayout  bool
	Typewriter  bool
	Rainbow     bool
	ShowBox     bool

	TypewriterDelay time.Duration
	// Width of the output in columns; 0 detects it from the terminal.
	Width     int
	Font      string
	Transform string
	Seed      int64
}

// Default returns the settings used when nothing is configured.
func Default() OutputConfig {
	return OutputConfig{
		Name:            DefaultName,
		ShowFiglet:      true,
		UseColor:        true,
		TypewriterDelay: effect.DefaultTypewriterDelay,
	}
}

// WithFile overlays the settings present in f.
func (c OutputConfig) WithFile(f config.File) OutputConfig {
	if f.HasName {
		c.Name = f.Name
	}
	if f.HasLanguages {
		c.Languages = append([]string{}, f.Languages...)
		c.HasLanguages = true
	}
	if f.HasFont {
		c.Font = f.Font
	}
	apply := func(t config.Toggle, dst *bool) {
		if t.Set {
			*dst = t.Value
		}
	}
	apply(f.Figlet, &c.ShowFiglet)
	apply(f.Color, &c.UseColor)
	apply(f.Random, &c.RandomMode)
	apply(f.Cowsay, &c.Cowsay)
	apply(f.Party, &c.PartyMode)
	apply(f.Fortune, &c.ShowFortune)
	apply(f.Grid, &c.GridLayout)
	apply(f.Typewriter, &c.Typewriter)
	apply(f.Rainbow, &c.Rainbow)
	apply(f.Box, &c.ShowBox)
	if f.HasTypewriterDelay {
		c.TypewriterDelay = time.Duration(f.TypewriterDelayMs) * time.Millisecond
	}
	if f.HasSeed {
		c.Seed = f.Seed
	}
	if f.HasWidth {
		c.Width = f.Width
	}
	if f.HasTransform {
		c.Transform = f.Transform
	}
	return c
}

// Animated reports whether the typewriter/rainbow path takes precedence
// over cowsay and plain rendering.
func (c OutputConfig) Animated() bool {
	return c.Typewriter || c.Rainbow
}

// CowsayActive reports whether output is captured into a cowsay bubble.
// Grid output is always capturable; sequential output only when no
// animation effect takes precedence.
func (c OutputConfig) CowsayActive() bool {
	if !c.Cowsay {
		return false
	}
	return c.GridLayout || !c.Animated()
}
