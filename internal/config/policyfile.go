package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/schedule"
)

// PolicyFile seeds the control loop at startup. Entries are validated when they are
// registered, not here.
type PolicyFile struct {
	AlertRules []alerting.Rule  `yaml:"alert_rules"`
	Policies   []scaling.Policy `yaml:"policies"`
	Schedules  []schedule.Entry `yaml:"schedules"`
}

// LoadPolicyFile reads a YAML policy file. Unknown keys are rejected.
func LoadPolicyFile(path string) (*PolicyFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open policy file: %w", err)
	}
	defer f.Close()

	return DecodePolicyFile(f)
}

// DecodePolicyFile decodes a YAML policy document. An empty document yields an empty file.
func DecodePolicyFile(r io.Reader) (*PolicyFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var pf PolicyFile

	if err := dec.Decode(&pf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode policy file: %w", ErrInvalidConfig, err)
	}

	return &pf, nil
}
