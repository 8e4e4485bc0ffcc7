package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// compileCUE loads and compiles a CUE file at the given path.
func compileCUE(path string) (cue.Value, error) {
	if filepath.Ext(path) != ".cue" {
		return cue.Value{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid config: %v", err)
	}
	return v, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

func optionalString(v cue.Value, name string, dst *string) (bool, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return false, nil
	}
	if f.Kind() != cue.StringKind {
		return false, fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	if err := f.Decode(dst); err != nil {
		return false, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return true, nil
}

func optionalToggle(v cue.Value, name string, dst *Toggle) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.BoolKind {
		return fmt.Errorf("invalid type for field: %s (expected bool)", name)
	}
	if err := f.Decode(&dst.Value); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	dst.Set = true
	return nil
}

func optionalInt(v cue.Value, name string, dst *int) (bool, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return false, nil
	}
	if f.Kind() != cue.IntKind {
		return false, fmt.Errorf("invalid type for field: %s (expected int)", name)
	}
	if err := f.Decode(dst); err != nil {
		return false, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return true, nil
}

func optionalStringList(v cue.Value, name string, dst *[]string) (bool, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return false, nil
	}
	if f.Kind() != cue.ListKind {
		return false, fmt.Errorf("invalid type for field: %s (expected list of strings)", name)
	}
	var out []string
	if err := f.Decode(&out); err != nil {
		return false, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	if out == nil {
		out = []string{}
	}
	*dst = out
	return true, nil
}
