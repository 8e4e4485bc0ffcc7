package root

import (
	"github.com/spf13/cobra"

	"github.com/flarebyte/greet/internal/banner"
	"github.com/flarebyte/greet/internal/ctxlog"
	"github.com/flarebyte/greet/internal/greeting"
	"github.com/flarebyte/greet/internal/lang"
	"github.com/flarebyte/greet/internal/options"
	"github.com/flarebyte/greet/internal/randsrc"
	"github.com/flarebyte/greet/internal/render"
)

func runGreet(cmd *cobra.Command, f *greetFlags) error {
	level, err := ctxlog.ParseLevel(f.logLevel)
	if err != nil {
		return err
	}
	ctx := ctxlog.WithLogger(cmd.Context(), ctxlog.New(cmd.ErrOrStderr(), level))
	logger := ctxlog.FromContext(ctx)

	cfg, err := f.resolve(ctx, cmd)
	if err != nil {
		return err
	}
	if err := banner.CheckFont(cfg.Font); err != nil {
		return err
	}

	// Unknown languages abort before anything is generated.
	pool := lang.All()
	if cfg.HasLanguages {
		if err := lang.CheckFilter(cfg.Languages); err != nil {
			return err
		}
		pool = lang.Resolve(cfg.Languages)
	}
	logger.Debug("languages resolved", "count", len(pool), "filtered", cfg.HasLanguages)

	src := randsrc.New(cfg.Seed)
	gs, err := selectGreetings(cfg, src, pool)
	if err != nil {
		return err
	}

	console := render.NewConsole(cmd.OutOrStdout(), cfg.UseColor, cfg.Width)
	r, err := render.New(console, cfg, src, banner.NewFiglet(cfg.Font))
	if err != nil {
		return err
	}
	return r.RenderAll(ctx, gs)
}

func selectGreetings(cfg options.OutputConfig, src randsrc.Source, pool []lang.Language) ([]greeting.Greeting, error) {
	if !cfg.RandomMode {
		return greeting.GenerateAll(pool, cfg.Name), nil
	}
	l, err := lang.SelectRandom(src, pool, cfg.HasLanguages)
	if err != nil {
		return nil, err
	}
	return []greeting.Greeting{greeting.Generate(l, cfg.Name)}, nil
}
