package pipeline

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/flarebyte/greet/internal/banner"
	"github.com/flarebyte/greet/internal/luatransform"
	"github.com/flarebyte/greet/internal/options"
	"github.com/flarebyte/greet/internal/randsrc"
)

// Deps are the collaborators shared by every stage.
type Deps struct {
	Config    options.OutputConfig
	Rand      randsrc.Source
	Styles    *lipgloss.Renderer
	Banner    banner.Renderer
	Transform *luatransform.Transformer
}

// Runner executes a stage.
type Runner func(ctx context.Context, in Envelope, deps Deps) (Envelope, error)

var registry = map[string]Runner{}

// Register adds a stage runner.
func Register(name string, r Runner) {
	registry[name] = r
}

// Run executes a registered stage by name.
func Run(ctx context.Context, name string, in Envelope, deps Deps) (Envelope, error) {
	r, ok := registry[name]
	if !ok {
		return Envelope{}, ErrUnknown{name: name}
	}
	out, err := r(ctx, in, deps)
	if err != nil {
		return Envelope{}, err
	}
	out.Trail = append(out.Trail, name)
	return out, nil
}

// RunAll executes stages in order.
func RunAll(ctx context.Context, in Envelope, stages []string, deps Deps) (Envelope, error) {
	out := in
	var err error
	for _, name := range stages {
		out, err = Run(ctx, name, out, deps)
		if err != nil {
			return Envelope{}, err
		}
	}
	return out, nil
}

// ErrUnknown is returned when a stage is not found.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown stage: " + e.name }
