package domain

import (
	"fmt"
	"regexp"
)

// FailOn selects the lowest comment severity that fails a review.
type FailOn string

const (
	FailOnError FailOn = "error"
	FailOnWarn  FailOn = "warn"
	FailOnNever FailOn = "never"
)

// ValidFailOn enumerates all recognized fail_on values.
var ValidFailOn = []FailOn{FailOnError, FailOnWarn, FailOnNever}

// ProjectConfig holds project-level configuration loaded from .htmlcheck.yaml.
type ProjectConfig struct {
	FailOn         FailOn   `yaml:"fail_on"         json:"fail_on,omitempty"`
	IgnoreMessages []string `yaml:"ignore_messages" json:"ignore_messages,omitempty"`
	IgnoreTypes    []string `yaml:"ignore_types"    json:"ignore_types,omitempty"`
	RecordHistory  bool     `yaml:"record_history"  json:"record_history,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// EffectiveFailOn returns FailOn, defaulting to FailOnError when unset.
func (c ProjectConfig) EffectiveFailOn() FailOn {
	if c.FailOn == "" {
		return FailOnError
	}
	return c.FailOn
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.FailOn != "" {
		valid := false
		for _, f := range ValidFailOn {
			if c.FailOn == f {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown fail_on %q (valid: error, warn, never)", c.FailOn)
		}
	}

	for i, pattern := range c.IgnoreMessages {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("ignore_messages[%d] %q: %w", i, pattern, err)
		}
	}

	for i, t := range c.IgnoreTypes {
		if t == "" {
			return fmt.Errorf("ignore_types[%d] must not be empty", i)
		}
	}

	return nil
}

// Filter drops messages matched by the ignore rules, keeping input order.
// A message is matched by ignore_types on its raw type or its summary label.
// Validate must have succeeded; patterns that fail to compile are skipped.
func (c ProjectConfig) Filter(messages []DiagnosticMessage) []DiagnosticMessage {
	if len(c.IgnoreMessages) == 0 && len(c.IgnoreTypes) == 0 {
		return messages
	}

	patterns := make([]*regexp.Regexp, 0, len(c.IgnoreMessages))
	for _, p := range c.IgnoreMessages {
		if re, err := regexp.Compile(p); err == nil {
			patterns = append(patterns, re)
		}
	}
	types := make(map[string]bool, len(c.IgnoreTypes))
	for _, t := range c.IgnoreTypes {
		types[t] = true
	}

	kept := make([]DiagnosticMessage, 0, len(messages))
	for _, m := range messages {
		if types[string(m.Type)] || types[Label(m)] {
			continue
		}
		if matchesAny(patterns, m.Message) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
