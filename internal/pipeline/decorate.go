package pipeline

import (
	"context"

	"github.com/flarebyte/greet/internal/effect"
)

func flagRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	in.Text = in.Greeting.Language.FlagEmoji + " " + in.Text
	return in, nil
}

func confettiRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	in.Text = effect.AddConfetti(deps.Rand, in.Text)
	return in, nil
}

func init() {
	Register(StageFlag, flagRunner)
	Register(StageConfetti, confettiRunner)
}
