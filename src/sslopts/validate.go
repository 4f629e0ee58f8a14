// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/x509/horizon"
)

// validate runs the post-parse checks and normalizes verbosity.
func validate(o *Options, now time.Time) error {
	if err := validateCertExpiration(o, now); err != nil {
		return err
	}
	if err := validateCountry(o); err != nil {
		return err
	}
	normalizeVerbosity(o)
	return nil
}

func validateCertExpiration(o *Options, now time.Time) error {
	if !o.IsSet(KeyCertExpiration) {
		return nil
	}

	days := o.Int(KeyCertExpiration)
	if days < 1 {
		return &ValidationError{
			Kind: ErrCertExpirationTooShort,
			Msg:  "certificate expiration must be at least 1 day",
		}
	}

	maxDays := horizon.DaysUntil(now)
	if days > maxDays {
		return &ValidationError{
			Kind: ErrCertExpirationTooLong,
			Msg: fmt.Sprintf("certificate expiration cannot exceed %d days (~%.2f years)",
				maxDays, horizon.YearsUntil(now)),
		}
	}
	return nil
}

func validateCountry(o *Options) error {
	if !o.IsSet(KeySetCountry) {
		return nil
	}
	if country := o.String(KeySetCountry); utf8.RuneCountInString(country) != 2 {
		return &ValidationError{
			Kind: ErrInvalidCountryCode,
			Msg:  "country code must be exactly two characters, such as 'US'",
		}
	}
	return nil
}

func normalizeVerbosity(o *Options) {
	if o.Bool(KeyQuiet) {
		o.Verbosity = VerbositySilent
		return
	}
	o.Verbosity = o.Count(KeyVerbose)
}
