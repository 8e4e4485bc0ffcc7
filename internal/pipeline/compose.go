package pipeline

import (
	"context"

	"github.com/flarebyte/greet/internal/effect"
)

func composeRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Banner == "" {
		in.Block = in.Body
		return in, nil
	}
	in.Block = in.Banner + "\n" + in.Body
	return in, nil
}

func boxRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	in.Block = effect.Box(deps.Styles, in.Block, deps.Config.UseColor)
	return in, nil
}

func init() {
	Register(StageCompose, composeRunner)
	Register(StageBox, boxRunner)
}
