package pipeline

import (
	"context"

	"github.com/flarebyte/greet/internal/effect"
)

// partyColors reports whether colors are drawn at random.
func partyColors(deps Deps) bool {
	return deps.Config.PartyMode && deps.Config.UseColor
}

func styleRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	c := effect.Green
	if partyColors(deps) {
		c = effect.RandomColor(deps.Rand)
	}
	in.Body = effect.TextStyle(deps.Styles).Foreground(c.Lipgloss()).Render(in.Text)
	return in, nil
}

func rainbowRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	in.Body = effect.Rainbow(deps.Styles, in.Text, deps.Config.UseColor)
	return in, nil
}

func bannerRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if deps.Banner == nil {
		return in, nil
	}
	c := effect.Cyan
	if partyColors(deps) {
		c = effect.RandomColor(deps.Rand)
	}
	text := deps.Banner.Render(in.Greeting.Language.BannerName)
	in.Banner = effect.TextStyle(deps.Styles).Bold(true).Foreground(c.Lipgloss()).Render(text)
	return in, nil
}

func init() {
	Register(StageStyle, styleRunner)
	Register(StageRainbow, rainbowRunner)
	Register(StageBanner, bannerRunner)
}
