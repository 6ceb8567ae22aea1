// Package selector chooses which discovered keys are rendered.
//
// Interactive runs a terminal checklist; All and Preset choose without
// asking. Every selector returns keys in discovery order.
package selector

import (
	"context"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/validation"
)

// All selects every discovered key, like confirming the checklist without
// toggling anything.
type All struct{}

// Select returns a copy of keys.
func (All) Select(_ context.Context, keys []string) ([]string, error) {
	return append([]string(nil), keys...), nil
}

// Preset selects a fixed list of keys, typically from --keys or the config
// file.
type Preset struct {
	Keys []string
}

// Select validates the preset against the discovered keys and returns the
// preset keys in discovery order. An unknown or repeated key is a KindConfig
// error.
func (p Preset) Select(_ context.Context, keys []string) ([]string, error) {
	if errs := validation.ValidateKeys(keys, p.Keys); len(errs) > 0 {
		return nil, &types.Error{
			Kind: types.KindConfig,
			Op:   validation.FormatErrors(errs),
		}
	}

	wanted := make(map[string]bool, len(p.Keys))
	for _, key := range p.Keys {
		wanted[key] = true
	}

	selected := make([]string, 0, len(p.Keys))
	for _, key := range keys {
		if wanted[key] {
			selected = append(selected, key)
		}
	}
	return selected, nil
}
