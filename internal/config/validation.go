package config

import (
	"fmt"
	"strings"
	"time"

	"algotest/pkg/market"
)

// ValidationError describes one rejected field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors.
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add appends a new validation error.
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

var knownPeriods = []string{
	string(market.PeriodM1),
	string(market.PeriodM5),
	string(market.PeriodM15),
	string(market.PeriodM30),
	string(market.PeriodH1),
	string(market.PeriodH4),
	string(market.PeriodD1),
}

var knownLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for values a run cannot work with.
func (c Config) Validate() error {
	var errs ValidationErrors

	if c.StartBar < 0 {
		errs.Add("startBar", "must not be negative", c.StartBar)
	}
	if c.Period != "" && !oneOf(strings.ToLower(c.Period), knownPeriods) {
		errs.Add("period", fmt.Sprintf("must be one of: %s", strings.Join(knownPeriods, ", ")), c.Period)
	}
	if c.DefaultTimeout != "" {
		if d, err := time.ParseDuration(c.DefaultTimeout); err != nil {
			errs.Add("defaultTimeout", "must be a duration such as 250ms or 2s", c.DefaultTimeout)
		} else if d <= 0 {
			errs.Add("defaultTimeout", "must be positive", c.DefaultTimeout)
		}
	}
	if c.Output.LogLevel != "" && !oneOf(strings.ToLower(c.Output.LogLevel), knownLogLevels) {
		errs.Add("output.logLevel", fmt.Sprintf("must be one of: %s", strings.Join(knownLogLevels, ", ")), c.Output.LogLevel)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// TimeoutDuration parses DefaultTimeout, zero when unset.
func (c Config) TimeoutDuration() time.Duration {
	if c.DefaultTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.DefaultTimeout)
	if err != nil {
		return 0
	}
	return d
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
