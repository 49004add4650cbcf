package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// adrIDPattern matches a three-digit ADR identifier or an inclusive range.
var adrIDPattern = regexp.MustCompile(`^\d{3}(-\d{3})?$`)

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if err := c.validateADR(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateSecrets(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateTasks(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateFixtures(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateADR() ValidationErrors {
	var errors ValidationErrors

	if c.ADR.Dir == "" {
		errors = append(errors, ValidationError{
			Field:   "adr.dir",
			Message: "directory is required",
		})
	}

	for i, rule := range c.ADR.Rules {
		prefix := fmt.Sprintf("adr.rules[%d]", i)

		if len(rule.Match) == 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".match",
				Message: "at least one filename keyword is required",
			})
		}

		if len(rule.Require) == 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".require",
				Message: "at least one ADR identifier is required",
			})
		}

		for _, id := range rule.Require {
			if !adrIDPattern.MatchString(id) {
				errors = append(errors, ValidationError{
					Field:   prefix + ".require",
					Message: fmt.Sprintf("%q is not a three-digit identifier or range", id),
				})
			}
		}
	}

	return errors
}

func (c *Config) validateSecrets() ValidationErrors {
	var errors ValidationErrors

	if c.Secrets.Root == "" {
		errors = append(errors, ValidationError{
			Field:   "secrets.root",
			Message: "scan root is required",
		})
	}

	if len(c.Secrets.Keywords) == 0 {
		errors = append(errors, ValidationError{
			Field:   "secrets.keywords",
			Message: "at least one sensitive keyword is required",
		})
	}

	if c.Secrets.MinLength <= 0 {
		errors = append(errors, ValidationError{
			Field:   "secrets.min_length",
			Message: "min_length must be positive",
		})
	}

	return errors
}

func (c *Config) validateTasks() ValidationErrors {
	var errors ValidationErrors

	if c.Tasks.Dir == "" {
		errors = append(errors, ValidationError{
			Field:   "tasks.dir",
			Message: "directory is required",
		})
	}

	if c.Tasks.Prefix == "" {
		errors = append(errors, ValidationError{
			Field:   "tasks.prefix",
			Message: "identifier prefix is required",
		})
	}

	for i, section := range c.Tasks.Sections {
		if len(section.Alternatives) == 0 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("tasks.sections[%d].alternatives", i),
				Message: "at least one accepted heading is required",
			})
		}
	}

	return errors
}

func (c *Config) validateFixtures() ValidationErrors {
	var errors ValidationErrors

	if c.Fixtures.Users < 0 {
		errors = append(errors, ValidationError{
			Field:   "fixtures.users",
			Message: "users cannot be negative",
		})
	}

	if c.Fixtures.Products < 0 {
		errors = append(errors, ValidationError{
			Field:   "fixtures.products",
			Message: "products cannot be negative",
		})
	}

	if c.Fixtures.Orders < 0 {
		errors = append(errors, ValidationError{
			Field:   "fixtures.orders",
			Message: "orders cannot be negative",
		})
	}

	db := c.Fixtures.Database
	if db.Port <= 0 || db.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "fixtures.database.port",
			Message: "port must be between 1 and 65535",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[db.TLS] {
		errors = append(errors, ValidationError{
			Field:   "fixtures.database.tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if db.BatchSize <= 0 {
		errors = append(errors, ValidationError{
			Field:   "fixtures.database.batch_size",
			Message: "batch_size must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
