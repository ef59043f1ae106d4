package schedule

import (
	"fmt"
	"time"
)

// Entry sets a service to DesiredInstances whenever Cron fires.
type Entry struct {
	Name             string `json:"name" yaml:"name"`
	Service          string `json:"service" yaml:"service"`
	Cron             string `json:"cron" yaml:"cron"`
	TZ               string `json:"tz,omitempty" yaml:"tz,omitempty"`
	DesiredInstances int    `json:"desired_instances" yaml:"desired_instances"`
}

// Status is an entry with its scheduling state.
type Status struct {
	Entry
	NextRun    time.Time `json:"next_run"`
	LastRun    time.Time `json:"last_run,omitzero"`
	LastResult string    `json:"last_result,omitempty"`
}

func (e Entry) validate(parser CronParser) error {
	if e.Name == "" || e.Service == "" {
		return fmt.Errorf("%w: name and service are required", ErrInvalidEntry)
	}

	if e.DesiredInstances < 0 {
		return fmt.Errorf("%w: %s: desired instances must not be negative", ErrInvalidEntry, e.Name)
	}

	if err := parser.Validate(e.Cron, e.TZ); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidEntry, e.Name, err)
	}

	return nil
}
