package root

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/flarebyte/greet/internal/config"
	"github.com/flarebyte/greet/internal/ctxlog"
	"github.com/flarebyte/greet/internal/gitname"
	"github.com/flarebyte/greet/internal/lang"
	"github.com/flarebyte/greet/internal/options"
)

type greetFlags struct {
	configPath  string
	languages   string
	name        string
	nameFromGit bool
	font        string
	transform   string
	logLevel    string
	seed        int64
	width       int

	noFiglet   bool
	noColor    bool
	random     bool
	cowsay     bool
	party      bool
	fortune    bool
	allAtOnce  bool
	typewriter bool
	rainbow    bool
	box        bool
}

func (f *greetFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "Path to a defaults file (.cue)")
	fl.StringVarP(&f.languages, "languages", "l", "", "Comma-separated languages to greet in (default all)")
	fl.StringVarP(&f.name, "name", "n", options.DefaultName, "Name to greet")
	fl.BoolVar(&f.nameFromGit, "name-from-git", false, "Use git user.name when --name is not given")
	fl.BoolVar(&f.noFiglet, "no-figlet", false, "Disable ASCII art banners")
	fl.BoolVar(&f.noColor, "no-color", false, "Disable colors")
	fl.BoolVarP(&f.random, "random", "r", false, "Greet in one random language")
	fl.BoolVar(&f.cowsay, "cowsay", false, "Have a cow say the greetings")
	fl.BoolVar(&f.party, "party", false, "Party mode: flags, confetti and random colors")
	fl.BoolVar(&f.fortune, "fortune", false, "Finish with a proverb")
	fl.BoolVar(&f.allAtOnce, "all-at-once", false, "Show the greetings in a grid")
	fl.BoolVar(&f.typewriter, "typewriter", false, "Type the greetings one character at a time")
	fl.BoolVar(&f.rainbow, "rainbow", false, "Color each character differently")
	fl.BoolVar(&f.box, "box", false, "Draw a box around each greeting (typed output is not boxed)")
	fl.StringVar(&f.font, "font", "", "Figlet font for banners (default standard)")
	fl.StringVar(&f.transform, "transform", "", "Lua snippet rewriting each greeting (globals text, name, code)")
	fl.Int64Var(&f.seed, "seed", 0, "Seed for random choices (0 picks one from the clock)")
	fl.IntVar(&f.width, "width", 0, "Output width in columns (0 detects it)")
	fl.StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

// resolve builds the OutputConfig: defaults, then the config file, then the
// flags set on the command line.
func (f *greetFlags) resolve(ctx context.Context, cmd *cobra.Command) (options.OutputConfig, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := options.Default()
	if f.configPath != "" {
		file, err := config.Load(f.configPath)
		if err != nil {
			return options.OutputConfig{}, err
		}
		logger.Debug("config loaded", "path", f.configPath)
		cfg = cfg.WithFile(file)
	}

	fl := cmd.Flags()
	if fl.Changed("languages") {
		cfg.Languages = lang.ParseFilter(f.languages)
		cfg.HasLanguages = true
	}
	if fl.Changed("name") {
		cfg.Name = f.name
	}
	set := func(flag string, dst *bool, v bool) {
		if fl.Changed(flag) {
			*dst = v
		}
	}
	set("no-figlet", &cfg.ShowFiglet, !f.noFiglet)
	set("no-color", &cfg.UseColor, !f.noColor)
	set("random", &cfg.RandomMode, f.random)
	set("cowsay", &cfg.Cowsay, f.cowsay)
	set("party", &cfg.PartyMode, f.party)
	set("fortune", &cfg.ShowFortune, f.fortune)
	set("all-at-once", &cfg.GridLayout, f.allAtOnce)
	set("typewriter", &cfg.Typewriter, f.typewriter)
	set("rainbow", &cfg.Rainbow, f.rainbow)
	set("box", &cfg.ShowBox, f.box)
	if fl.Changed("font") {
		cfg.Font = f.font
	}
	if fl.Changed("transform") {
		cfg.Transform = f.transform
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("width") {
		cfg.Width = f.width
	}

	if f.nameFromGit && !fl.Changed("name") {
		dir, err := os.Getwd()
		if err == nil {
			var name string
			name, err = gitname.Lookup(dir)
			if err == nil {
				cfg.Name = name
			}
		}
		if err != nil {
			logger.Warn("git name lookup failed", "error", err)
		} else {
			logger.Debug("name from git", "name", cfg.Name)
		}
	}
	return cfg, nil
}
