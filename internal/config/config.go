package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

// Toggle is an optional boolean setting.
type Toggle struct {
	Value bool
	Set   bool
}

// File holds the settings read from a greet CUE file. Every optional field
// has a presence flag so that callers only override what the file sets.
type File struct {
	ConfigVersion string

	Name         string
	HasName      bool
	Languages    []string
	HasLanguages bool
	Font         string
	HasFont      bool

	Figlet     Toggle
	Color      Toggle
	Random     Toggle
	Cowsay     Toggle
	Party      Toggle
	Fortune    Toggle
	Grid       Toggle
	Typewriter Toggle
	Rainbow    Toggle
	Box        Toggle

	TypewriterDelayMs  int
	HasTypewriterDelay bool
	Seed               int64
	HasSeed            bool
	Width              int
	HasWidth           bool
	Transform          string
	HasTransform       bool
}

// Load compiles the CUE file at path and extracts the greet settings.
// Required field: configVersion (string, supported version).
func Load(path string) (File, error) {
	v, err := compileCUE(path)
	if err != nil {
		return File{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return File{}, err
	}
	var f File
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&f.ConfigVersion); err != nil {
		return File{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if !IsSupportedConfigVersion(f.ConfigVersion) {
		return File{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", f.ConfigVersion, SupportedConfigVersionsCSV())
	}

	if f.HasName, err = optionalString(v, "name", &f.Name); err != nil {
		return File{}, err
	}
	if f.HasFont, err = optionalString(v, "font", &f.Font); err != nil {
		return File{}, err
	}
	if f.HasLanguages, err = optionalStringList(v, "languages", &f.Languages); err != nil {
		return File{}, err
	}
	toggles := []struct {
		name string
		dst  *Toggle
	}{
		{"figlet", &f.Figlet},
		{"color", &f.Color},
		{"random", &f.Random},
		{"cowsay", &f.Cowsay},
		{"party", &f.Party},
		{"fortune", &f.Fortune},
		{"grid", &f.Grid},
		{"rainbow", &f.Rainbow},
		{"box", &f.Box},
	}
	for _, t := range toggles {
		if err := optionalToggle(v, t.name, t.dst); err != nil {
			return File{}, err
		}
	}
	if err := parseTypewriter(v, &f); err != nil {
		return File{}, err
	}
	var seed int
	if f.HasSeed, err = optionalInt(v, "seed", &seed); err != nil {
		return File{}, err
	}
	f.Seed = int64(seed)
	if f.HasWidth, err = optionalInt(v, "width", &f.Width); err != nil {
		return File{}, err
	}
	if f.HasWidth && f.Width < 0 {
		return File{}, fmt.Errorf("invalid value for width: must be >= 0")
	}
	if tv := v.LookupPath(cue.ParsePath("transform")); tv.Exists() {
		if f.HasTransform, err = optionalString(tv, "inline", &f.Transform); err != nil {
			return File{}, fmt.Errorf("transform: %w", err)
		}
	}
	return f, nil
}

// parseTypewriter accepts either `typewriter: true` or
// `typewriter: {enabled: true, delayMs: 30}`.
func parseTypewriter(v cue.Value, f *File) error {
	tv := v.LookupPath(cue.ParsePath("typewriter"))
	if !tv.Exists() {
		return nil
	}
	switch tv.Kind() {
	case cue.BoolKind:
		return optionalToggle(v, "typewriter", &f.Typewriter)
	case cue.StructKind:
		if err := optionalToggle(tv, "enabled", &f.Typewriter); err != nil {
			return fmt.Errorf("typewriter: %w", err)
		}
		has, err := optionalInt(tv, "delayMs", &f.TypewriterDelayMs)
		if err != nil {
			return fmt.Errorf("typewriter: %w", err)
		}
		if has && f.TypewriterDelayMs < 0 {
			return fmt.Errorf("invalid value for typewriter.delayMs: must be >= 0")
		}
		f.HasTypewriterDelay = has
		return nil
	}
	return fmt.Errorf("invalid type for field: typewriter (expected bool or struct)")
}
