package render

import (
	"context"
	"strings"

	"github.com/flarebyte/greet/internal/banner"
	"github.com/flarebyte/greet/internal/ctxlog"
	"github.com/flarebyte/greet/internal/effect"
	"github.com/flarebyte/greet/internal/greeting"
	"github.com/flarebyte/greet/internal/luatransform"
	"github.com/flarebyte/greet/internal/options"
	"github.com/flarebyte/greet/internal/pipeline"
	"github.com/flarebyte/greet/internal/proverb"
	"github.com/flarebyte/greet/internal/randsrc"
)

// Renderer writes greetings to a Console according to an OutputConfig.
type Renderer struct {
	Console   *Console
	Config    options.OutputConfig
	Rand      randsrc.Source
	Banner    banner.Renderer
	Transform *luatransform.Transformer
	// Sleep paces the typewriter; nil means real time.
	Sleep effect.SleepFunc
}

// New builds a Renderer, compiling the configured Lua transform if any.
func New(console *Console, cfg options.OutputConfig, src randsrc.Source, b banner.Renderer) (*Renderer, error) {
	r := &Renderer{Console: console, Config: cfg, Rand: src, Banner: b}
	if cfg.Transform != "" {
		tr, err := luatransform.New(cfg.Transform, 0)
		if err != nil {
			return nil, err
		}
		r.Transform = tr
	}
	return r, nil
}

func (r *Renderer) deps(c *Console) pipeline.Deps {
	return pipeline.Deps{
		Config:    r.Config,
		Rand:      r.Rand,
		Styles:    c.Styles,
		Banner:    r.Banner,
		Transform: r.Transform,
	}
}

func (r *Renderer) run(ctx context.Context, c *Console, g greeting.Greeting, mode pipeline.Mode) (pipeline.Envelope, error) {
	stages := pipeline.Plan(r.Config, mode)
	ctxlog.FromContext(ctx).Debug("render greeting", "language", g.Language.Code, "stages", strings.Join(stages, ","))
	return pipeline.RunAll(ctx, pipeline.NewEnvelope(g), stages, r.deps(c))
}

// RenderOne writes one greeting: typewriter first, then cowsay, then plain.
func (r *Renderer) RenderOne(ctx context.Context, g greeting.Greeting) error {
	if r.Config.Typewriter {
		return r.renderTypewriter(ctx, g)
	}
	if r.Config.CowsayActive() {
		block, err := r.captureSequential(ctx, []greeting.Greeting{g})
		if err != nil {
			return err
		}
		return r.Console.Println(effect.Cowsay(block))
	}
	return r.renderBlock(ctx, r.Console, g)
}

// renderBlock writes the composed block and a blank line.
func (r *Renderer) renderBlock(ctx context.Context, c *Console, g greeting.Greeting) error {
	env, err := r.run(ctx, c, g, pipeline.ModeBlock)
	if err != nil {
		return err
	}
	if err := c.Println(env.Block); err != nil {
		return err
	}
	return c.Println("")
}

// renderTypewriter writes the banner at once, then animates the text. With
// rainbow colors on, the colored text is written in a single write instead
// of being animated.
func (r *Renderer) renderTypewriter(ctx context.Context, g greeting.Greeting) error {
	c := r.Console
	env, err := r.run(ctx, c, g, pipeline.ModeTypewriter)
	if err != nil {
		return err
	}
	if env.Banner != "" {
		if err := c.Println(env.Banner); err != nil {
			return err
		}
	}
	if r.Config.Rainbow && r.Config.UseColor {
		if err := c.Println(env.Body); err != nil {
			return err
		}
	} else if err := effect.Typewriter(ctx, c.Out, env.Text, r.Config.TypewriterDelay, r.Sleep); err != nil {
		return err
	}
	return c.Println("")
}

// captureSequential renders gs into a buffer and returns it without its
// trailing whitespace.
func (r *Renderer) captureSequential(ctx context.Context, gs []greeting.Greeting) (string, error) {
	c, buf := r.Console.Capture()
	for _, g := range gs {
		if err := r.renderBlock(ctx, c, g); err != nil {
			return "", err
		}
	}
	return strings.TrimRight(buf.String(), " \t\r\n"), nil
}

// RenderAll writes every greeting, in grid or sequential layout, then the
// proverb when requested. With cowsay on, the whole batch goes in one
// bubble.
func (r *Renderer) RenderAll(ctx context.Context, gs []greeting.Greeting) error {
	if err := r.renderGreetings(ctx, gs); err != nil {
		return err
	}
	if r.Config.ShowFortune {
		return r.RenderFortune(proverb.SelectRandom(r.Rand))
	}
	return nil
}

func (r *Renderer) renderGreetings(ctx context.Context, gs []greeting.Greeting) error {
	if len(gs) == 0 {
		return nil
	}
	if r.Config.GridLayout {
		return r.RenderGrid(ctx, gs)
	}
	if r.Config.CowsayActive() {
		block, err := r.captureSequential(ctx, gs)
		if err != nil {
			return err
		}
		return r.Console.Println(effect.Cowsay(block))
	}
	for _, g := range gs {
		if err := r.RenderOne(ctx, g); err != nil {
			return err
		}
	}
	return nil
}
