package pipeline

import (
	"context"
	"errors"

	"github.com/flarebyte/greet/internal/luatransform"
)

func luaTransformRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if deps.Transform == nil {
		return Envelope{}, errors.New("lua-transform: no transform configured")
	}
	out, err := deps.Transform.Apply(ctx, luatransform.Input{
		Text: in.Text,
		Name: deps.Config.Name,
		Code: in.Greeting.Language.Code,
	})
	if err != nil {
		return Envelope{}, err
	}
	in.Text = out
	return in, nil
}

func init() {
	Register(StageLuaTransform, luaTransformRunner)
}
