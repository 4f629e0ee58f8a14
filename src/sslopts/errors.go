// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUsage is the category of every malformed-invocation error.
	ErrUsage = errors.New("sslopts: usage error")

	// ErrValidation is the category of every out-of-range value error.
	ErrValidation = errors.New("sslopts: validation error")

	// ErrHelp is returned by Engine.Process after help text was written.
	// It is not a failure.
	ErrHelp = errors.New("sslopts: help requested")

	// ErrConflictingModes indicates more than one mode flag.
	ErrConflictingModes = errors.New("sslopts: conflicting mode options")

	// ErrConflictingQualifiers indicates more than one of the --*-only flags.
	ErrConflictingQualifiers = errors.New("sslopts: conflicting --*-only options")

	// ErrConflictingRPMMode indicates --rpm-only together with --no-rpm.
	ErrConflictingRPMMode = errors.New("sslopts: --rpm-only conflicts with --no-rpm")

	// ErrPositionalArgs indicates tokens not attached to any option.
	ErrPositionalArgs = errors.New("sslopts: unexpected arguments")

	// ErrBadOption indicates an unknown option or a malformed option value.
	ErrBadOption = errors.New("sslopts: bad option")

	// ErrCertExpirationTooShort indicates a certificate expiration below one day.
	ErrCertExpirationTooShort = errors.New("sslopts: certificate expiration too short")

	// ErrCertExpirationTooLong indicates a certificate expiration past the
	// 32-bit time horizon.
	ErrCertExpirationTooLong = errors.New("sslopts: certificate expiration too long")

	// ErrInvalidCountryCode indicates a country code that is not two characters.
	ErrInvalidCountryCode = errors.New("sslopts: invalid country code")
)

// UsageConflictError reports a command line whose shape is invalid. Tokens
// lists the offending tokens in the order they were given.
type UsageConflictError struct {
	Kind   error
	Tokens []string
	Detail string
}

func (e *UsageConflictError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrPositionalArgs):
		return fmt.Sprintf("these arguments make no sense in this context (try --help): %s", quoteList(e.Tokens))
	case errors.Is(e.Kind, ErrBadOption):
		return e.Detail
	default:
		return fmt.Sprintf("cannot use these options in combination: %s", quoteList(e.Tokens))
	}
}

// Unwrap exposes both the usage category and the specific kind.
func (e *UsageConflictError) Unwrap() []error { return []error{ErrUsage, e.Kind} }

// ValidationError reports a value that parsed fine but is out of range.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string { return e.Msg }

// Unwrap exposes both the validation category and the specific kind.
func (e *ValidationError) Unwrap() []error { return []error{ErrValidation, e.Kind} }

func quoteList(tokens []string) string {
	q := make([]string, len(tokens))
	for i, t := range tokens {
		q[i] = fmt.Sprintf("%q", t)
	}
	return "[" + strings.Join(q, ", ") + "]"
}
