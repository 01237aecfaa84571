// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate evaluates a fixed list of field rules and collects every
// failure, keyed by field, before the caller decides how to fail.
//
// # Architecture
//
// Rules are evaluated in the service layer. Handlers only use [ErrInvalidJSON]
// and [Violations.Details]. Rules are plain values; [Check] is the single
// reducer over them.
package validate

import (
	"regexp"
	"strings"

	"github.com/taibuivan/artgallery/internal/platform/apperr"
)

var (
	// emailRegex finds a mailbox address anywhere in the value (case-insensitive).
	emailRegex = regexp.MustCompile(`(?i)[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4}`)
	// contactNumberRegex matches exactly ten digits.
	contactNumberRegex = regexp.MustCompile(`^[0-9]{10}$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Rule is a single field-scoped check. Condition reports whether the rule is
// violated; Message is recorded under Field when it is.
type Rule struct {
	Field     string
	Condition func() bool
	Message   string
}

// Violations maps field names to their failure messages.
//
// Fields iterate in the order they were first recorded and messages in the
// order they were added, so two evaluations of the same rules compare equal.
//
// # Concurrency
//
// Violations is not safe for concurrent use.
type Violations struct {
	fields   []string
	messages map[string][]string
}

// NewViolations returns an empty set.
func NewViolations() *Violations {
	return &Violations{messages: make(map[string][]string)}
}

// Upsert appends message under field, creating the field entry if needed.
func (v *Violations) Upsert(field, message string) {
	if v.messages == nil {
		v.messages = make(map[string][]string)
	}
	if _, exists := v.messages[field]; !exists {
		v.fields = append(v.fields, field)
	}
	v.messages[field] = append(v.messages[field], message)
}

// Fields returns the violated field names in first-recorded order.
func (v *Violations) Fields() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.fields...)
}

// Messages returns the messages recorded for field.
func (v *Violations) Messages(field string) []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.messages[field]...)
}

// Len returns the number of violated fields.
func (v *Violations) Len() int {
	if v == nil {
		return 0
	}
	return len(v.fields)
}

// Empty reports whether no rule has been violated.
func (v *Violations) Empty() bool { return v.Len() == 0 }

// Details flattens the set into one [apperr.FieldError] per message,
// preserving field and message order.
func (v *Violations) Details() []apperr.FieldError {
	if v.Empty() {
		return nil
	}

	details := make([]apperr.FieldError, 0, len(v.fields))
	for _, field := range v.fields {
		for _, message := range v.messages[field] {
			details = append(details, apperr.FieldError{Field: field, Message: message})
		}
	}
	return details
}

// Check evaluates every rule in order and returns the collected violations.
// It never stops at the first failure.
func Check(rules ...Rule) *Violations {
	violations := NewViolations()
	for _, rule := range rules {
		if rule.Condition() {
			violations.Upsert(rule.Field, rule.Message)
		}
	}
	return violations
}

// # Predicates

// IsBlank reports whether value is empty or whitespace only.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// IsEmail reports whether value contains a well-formed email address.
func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsContactNumber reports whether value is exactly ten digits.
func IsContactNumber(value string) bool {
	return contactNumberRegex.MatchString(value)
}
