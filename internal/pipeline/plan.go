// Package pipeline composes the per-greeting effects as an ordered list of
// named stages selected from the output configuration.
package pipeline

import "github.com/flarebyte/greet/internal/options"

// Mode selects which family of stages a greeting goes through.
type Mode int

const (
	// ModeBlock builds a complete styled block: banner, text, box.
	ModeBlock Mode = iota
	// ModeTypewriter prepares the banner and text separately so the text
	// can be animated.
	ModeTypewriter
	// ModeGridCell styles the text only; grid cells carry no banner.
	ModeGridCell
)

// Stage names.
const (
	StageLuaTransform = "lua-transform"
	StageFlag         = "flag"
	StageConfetti     = "confetti"
	StageStyle        = "style"
	StageRainbow      = "rainbow"
	StageBanner       = "banner"
	StageCompose      = "compose"
	StageBox          = "box"
)

// Plan returns the stages for cfg in mode, in execution order. The banner
// runs before decoration so its party color is the first random draw.
func Plan(cfg options.OutputConfig, mode Mode) []string {
	var names []string
	if cfg.Transform != "" {
		names = append(names, StageLuaTransform)
	}
	if mode != ModeGridCell && cfg.ShowFiglet {
		names = append(names, StageBanner)
	}
	if cfg.PartyMode {
		names = append(names, StageFlag, StageConfetti)
	}
	switch mode {
	case ModeGridCell:
		return append(names, StageStyle)
	case ModeTypewriter:
		if cfg.Rainbow {
			names = append(names, StageRainbow)
		}
		return names
	}
	if cfg.Rainbow {
		names = append(names, StageRainbow)
	} else {
		names = append(names, StageStyle)
	}
	names = append(names, StageCompose)
	if cfg.ShowBox {
		names = append(names, StageBox)
	}
	return names
}
