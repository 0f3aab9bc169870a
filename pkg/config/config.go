// Package config loads protocol models from YAML/JSON files and CLI overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Default returns the compiled-in protocol model.
func Default() domain.Model {
	return domain.DefaultModel()
}

// Load reads a model file (YAML, or JSON by extension) and applies it over the default model.
func Load(path string) (domain.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Model{}, fmt.Errorf("failed to read model file: %w", err)
	}

	raw := make(map[string]any)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return domain.Model{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Model{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return Apply(Default(), raw)
}

// Apply decodes raw values over model. Keys follow the YAML field names
// (listen_cost, wake_periods, ...). Unknown keys are rejected and the
// resulting model is validated.
func Apply(model domain.Model, raw map[string]any) (domain.Model, error) {
	if len(raw) == 0 {
		return model, model.Validate()
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &model,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return domain.Model{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return domain.Model{}, fmt.Errorf("%w: %v", domain.ErrInvalidModel, err)
	}

	if err := model.Validate(); err != nil {
		return domain.Model{}, err
	}
	return model, nil
}

// ParseOverrides turns "key=value" pairs into a map suitable for Apply.
// Comma separated values become lists: "wake_periods=4,6,8".
func ParseOverrides(pairs []string) (map[string]any, error) {
	raw := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: expected key=value", pair)
		}

		value = strings.TrimSpace(value)
		if strings.Contains(value, ",") {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			raw[key] = parts
			continue
		}
		raw[key] = value
	}
	return raw, nil
}

// Marshal encodes a model as YAML, the format Load reads back.
func Marshal(model domain.Model) ([]byte, error) {
	return yaml.Marshal(model)
}
