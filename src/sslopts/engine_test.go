// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/x509/horizon"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/logger"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/ssldefaults"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/sslopts"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, out *bytes.Buffer, extra ...sslopts.EngineOption) *sslopts.Engine {
	t.Helper()

	provider := ssldefaults.New(
		ssldefaults.WithHostname("web01.example.com"),
		ssldefaults.WithNow(testNow),
		ssldefaults.WithGetenv(func(string) string { return "" }),
	)
	opts := []sslopts.EngineOption{
		sslopts.WithProgName(testProg),
		sslopts.WithSeeder(provider.Seed),
		sslopts.WithResolvers(provider.Resolvers()),
		sslopts.WithClock(func() time.Time { return testNow }),
		sslopts.WithOutput(out),
	}
	return sslopts.New(append(opts, extra...)...)
}

func TestProcessDirPropagatesToHelp(t *testing.T) {
	var out bytes.Buffer
	dir := filepath.Join(t.TempDir(), "custom", "path")

	_, err := newTestEngine(t, &out).Process([]string{"--gen-ca", "--dir", dir, "--help"})
	require.ErrorIs(t, err, sslopts.ErrHelp)
	assert.NotErrorIs(t, err, sslopts.ErrUsage)

	help := out.String()
	assert.Contains(t, help, "CA private key filename (default: "+filepath.Join(dir, "RHN-ORG-PRIVATE-SSL-KEY")+")")
	assert.Contains(t, help, "CA certificate filename (default: "+filepath.Join(dir, "RHN-ORG-TRUSTED-SSL-CERT")+")")
	assert.Contains(t, help, "build directory (default: "+dir+")")
	assert.Contains(t, help, "Usage: mgr-ssl-tool [options]")
}

func TestProcessDirPropagatesToValues(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()

	opts, err := newTestEngine(t, &out).Process([]string{"--gen-ca", "--dir", dir})
	require.NoError(t, err)

	assert.Equal(t, sslopts.ModeGenCA, opts.Mode)
	assert.Equal(t, filepath.Join(dir, "RHN-ORG-PRIVATE-SSL-KEY"), opts.String(sslopts.KeyCAKey))
	assert.Equal(t, filepath.Join(dir, "RHN-ORG-PRIVATE-SSL-KEY"), opts.Defaults().Get(sslopts.KeyCAKey))
	assert.False(t, opts.IsSet(sslopts.KeyCAKey))
	assert.True(t, opts.IsSet(sslopts.KeyDir))
	assert.Equal(t, horizon.DaysUntil(testNow), opts.Int(sslopts.KeyCertExpiration), "CA default lifetime reaches the horizon")
	assert.Empty(t, out.String(), "nothing is printed without help")
}

func TestProcessServerDefaults(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()

	opts, err := newTestEngine(t, &out).Process([]string{
		"--gen-server", "-d", dir, "--set-hostname", "www.corp.example.org",
		"--set-cname", "alias1", "--set-cname", "alias2", "--server-key", "/elsewhere/my.key",
	})
	require.NoError(t, err)

	machineDir := filepath.Join(dir, "www.corp")
	assert.Equal(t, filepath.Join(machineDir, "server.crt"), opts.String(sslopts.KeyServerCert))
	assert.Equal(t, "/elsewhere/my.key", opts.String(sslopts.KeyServerKey), "user value wins over the default")
	assert.Equal(t, filepath.Join(machineDir, "my.key"), opts.Defaults().Get(sslopts.KeyServerKey))
	assert.Equal(t, "rhn-org-httpd-ssl-archive-www.corp", opts.String(sslopts.KeyServerTar))
	assert.Equal(t, []string{"alias1", "alias2"}, opts.Strings(sslopts.KeySetCname))
	assert.Equal(t, ssldefaults.ServerCertExpiration, opts.Int(sslopts.KeyCertExpiration))
	assert.Equal(t, testNow.AddDate(0, 0, -7).Format(ssldefaults.StartDateLayout), opts.String(sslopts.KeyStartDate))
	assert.True(t, opts.Legal(sslopts.KeyServerTar))
	assert.False(t, opts.Legal(sslopts.KeyNoRPM))
}

func TestProcessForcedHelp(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		notice string
	}{
		{name: "No arguments", args: nil},
		{name: "Help only", args: []string{"--help"}},
		{name: "Short help only", args: []string{"-h"}},
		{name: "Help with options but no mode", args: []string{"-h", "--dir", "/tmp", "-v"}},
		{name: "Unknown first token", args: []string{"-v", "--gen-ca"}, notice: `unrecognized first option "-v"`},
		{name: "Stray first token", args: []string{"cert.pem"}, notice: `unrecognized first option "cert.pem"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			opts, err := newTestEngine(t, &out).Process(tt.args)

			assert.Nil(t, opts)
			require.ErrorIs(t, err, sslopts.ErrHelp)
			assert.NotErrorIs(t, err, sslopts.ErrUsage, "forced help is not a usage error")

			help := out.String()
			assert.Contains(t, help, "step 2 mgr-ssl-tool --gen-server [sub-options]")
			assert.Contains(t, help, "--check-cert")
			if tt.notice != "" {
				assert.Contains(t, help, tt.notice)
			}
		})
	}
}

func TestProcessModeHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := newTestEngine(t, &out).Process([]string{"--check-cert", "-h"})
	require.ErrorIs(t, err, sslopts.ErrHelp)

	help := out.String()
	assert.Contains(t, help, "--check-cert")
	assert.Contains(t, help, "--quiet")
	assert.NotContains(t, help, "--ca-key")
	assert.NotContains(t, help, "step 1")
}

func TestProcessUsageErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		kind   error
		tokens []string
	}{
		{
			name:   "Two modes",
			args:   []string{"--gen-ca", "--check-key"},
			kind:   sslopts.ErrConflictingModes,
			tokens: []string{"--gen-ca", "--check-key"},
		},
		{
			name:   "Two modes with help",
			args:   []string{"--help", "--gen-server", "--check-cert"},
			kind:   sslopts.ErrConflictingModes,
			tokens: []string{"--gen-server", "--check-cert"},
		},
		{
			name:   "Two qualifiers",
			args:   []string{"--gen-server", "--key-only", "--cert-req-only"},
			kind:   sslopts.ErrConflictingQualifiers,
			tokens: []string{"--key-only", "--cert-req-only"},
		},
		{
			name:   "RPM conflict in CA mode",
			args:   []string{"--gen-ca", "--rpm-only", "--no-rpm"},
			kind:   sslopts.ErrConflictingRPMMode,
			tokens: []string{"--rpm-only", "--no-rpm"},
		},
		{
			name:   "RPM conflict in check mode",
			args:   []string{"--check-cert", "--no-rpm", "--rpm-only"},
			kind:   sslopts.ErrConflictingRPMMode,
			tokens: []string{"--no-rpm", "--rpm-only"},
		},
		{
			name:   "Stray argument in CA mode",
			args:   []string{"--gen-ca", "stray.pem"},
			kind:   sslopts.ErrPositionalArgs,
			tokens: []string{"stray.pem"},
		},
		{
			name:   "Stray arguments in check mode",
			args:   []string{"--check-key", "a", "-v", "b"},
			kind:   sslopts.ErrPositionalArgs,
			tokens: []string{"a", "b"},
		},
		{
			name:   "Stray argument after terminator",
			args:   []string{"--check-cert", "--", "--quiet"},
			kind:   sslopts.ErrPositionalArgs,
			tokens: []string{"--quiet"},
		},
		{
			name:   "Help after terminator is positional",
			args:   []string{"--gen-ca", "--", "--help"},
			kind:   sslopts.ErrPositionalArgs,
			tokens: []string{"--help"},
		},
		{
			name:   "Option not legal for mode",
			args:   []string{"--check-cert", "--ca-key", "key.pem"},
			kind:   sslopts.ErrBadOption,
			tokens: []string{"--ca-key"},
		},
		{
			name:   "Qualifier not legal for mode",
			args:   []string{"--gen-ca", "--cert-req-only"},
			kind:   sslopts.ErrBadOption,
			tokens: []string{"--cert-req-only"},
		},
		{
			name: "Unknown option",
			args: []string{"--gen-ca", "--no-such-option"},
			kind: sslopts.ErrBadOption,
		},
		{
			name: "Malformed integer",
			args: []string{"--gen-ca", "--cert-expiration", "ten"},
			kind: sslopts.ErrBadOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			original := slices.Clone(tt.args)

			opts, err := newTestEngine(t, &out).Process(tt.args)

			assert.Nil(t, opts)
			assert.Equal(t, original, tt.args, "Process must not modify its input")
			require.ErrorIs(t, err, tt.kind)
			assert.ErrorIs(t, err, sslopts.ErrUsage)
			assert.NotErrorIs(t, err, sslopts.ErrHelp)

			var conflict *sslopts.UsageConflictError
			require.True(t, errors.As(err, &conflict))
			if tt.tokens != nil {
				assert.Equal(t, tt.tokens, conflict.Tokens)
			}
			assert.NotEmpty(t, conflict.Error())
			assert.Empty(t, out.String(), "usage errors print no help")
		})
	}
}

func TestProcessCertExpiration(t *testing.T) {
	maxDays := horizon.DaysUntil(testNow)
	require.Greater(t, maxDays, 1)

	tests := []struct {
		name string
		days string
		kind error
	}{
		{name: "Zero", days: "0", kind: sslopts.ErrCertExpirationTooShort},
		{name: "Negative", days: "-5", kind: sslopts.ErrCertExpirationTooShort},
		{name: "One day", days: "1"},
		{name: "Exactly the horizon", days: strconv.Itoa(maxDays)},
		{name: "One day past the horizon", days: strconv.Itoa(maxDays + 1), kind: sslopts.ErrCertExpirationTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			opts, err := newTestEngine(t, &out).Process([]string{"--gen-server", "--cert-expiration=" + tt.days})

			if tt.kind == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.days, strconv.Itoa(opts.Int(sslopts.KeyCertExpiration)))
				return
			}

			require.ErrorIs(t, err, tt.kind)
			assert.ErrorIs(t, err, sslopts.ErrValidation)
			assert.NotErrorIs(t, err, sslopts.ErrUsage)

			var verr *sslopts.ValidationError
			require.True(t, errors.As(err, &verr))
			if tt.kind == sslopts.ErrCertExpirationTooLong {
				assert.Contains(t, verr.Error(), strconv.Itoa(maxDays))
			}
		})
	}
}

func TestProcessCountryCode(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		valid bool
	}{
		{name: "Two letters", args: []string{"--gen-server", "--set-country", "US"}, valid: true},
		{name: "Absent", args: []string{"--gen-server"}, valid: true},
		{name: "Three letters", args: []string{"--gen-server", "--set-country", "USA"}},
		{name: "Empty separate token", args: []string{"--gen-ca", "--set-country", ""}},
		{name: "Empty attached", args: []string{"--gen-ca", "--set-country="}},
		{name: "One letter", args: []string{"--gen-ca", "--set-country", "U"}},
		{name: "Two non-ASCII characters", args: []string{"--gen-server", "--set-country", "ÜS"}, valid: true},
		{name: "One non-ASCII character", args: []string{"--gen-server", "--set-country", "é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := newTestEngine(t, &out).Process(tt.args)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, sslopts.ErrInvalidCountryCode)
			assert.ErrorIs(t, err, sslopts.ErrValidation)
		})
	}
}

func TestProcessVerbosity(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{name: "Default", args: []string{"--check-cert"}, expected: 0},
		{name: "Stacked", args: []string{"--check-cert", "-vvv"}, expected: 3},
		{name: "Repeated", args: []string{"--check-cert", "-v", "--verbose"}, expected: 2},
		{name: "Quiet wins", args: []string{"--check-cert", "--quiet", "-vvv"}, expected: sslopts.VerbositySilent},
		{name: "Quiet short", args: []string{"--check-cert", "-vv", "-q"}, expected: sslopts.VerbositySilent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			opts, err := newTestEngine(t, &out).Process(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts.Verbosity)
		})
	}
}

func TestProcessResolverOrder(t *testing.T) {
	var calls []string
	record := func(name string) sslopts.Resolver {
		return func(first *sslopts.Options, defs sslopts.Defaults) (sslopts.Defaults, error) {
			calls = append(calls, name)
			defs.Set(sslopts.KeySetOrg, name)
			return defs, nil
		}
	}

	var seededCA []bool
	engine := sslopts.New(
		sslopts.WithProgName(testProg),
		sslopts.WithOutput(&bytes.Buffer{}),
		sslopts.WithSeeder(func(ca bool) sslopts.Defaults {
			seededCA = append(seededCA, ca)
			return sslopts.Defaults{}
		}),
		sslopts.WithResolvers(sslopts.Resolvers{
			Dirs:           record("dirs"),
			CA:             record("ca"),
			Server:         record("server"),
			Distinguishing: record("dn"),
		}),
	)

	opts, err := engine.Process([]string{"--gen-ca"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dirs", "ca", "server", "dn"}, calls)
	assert.Equal(t, "dn", opts.String(sslopts.KeySetOrg), "last resolver wins")

	_, err = engine.Process([]string{"--check-key"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, seededCA)
}

func TestProcessResolverError(t *testing.T) {
	boom := errors.New("boom")
	engine := sslopts.New(
		sslopts.WithOutput(&bytes.Buffer{}),
		sslopts.WithResolvers(sslopts.Resolvers{
			Server: func(*sslopts.Options, sslopts.Defaults) (sslopts.Defaults, error) { return nil, boom },
		}),
	)

	_, err := engine.Process([]string{"--gen-server"})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "server")
}

func TestProcessTracesPhases(t *testing.T) {
	var out, logs bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&logs)

	_, err := newTestEngine(t, &out, sslopts.WithLogger(log)).Process([]string{"--check-cert", "-vv"})
	require.NoError(t, err)

	trace := logs.String()
	assert.Contains(t, trace, "option parsing: first-parsed")
	assert.Contains(t, trace, "option parsing: defaults-recomputed")
	assert.Contains(t, trace, "option parsing: final-parsed")
	assert.NotContains(t, trace, "recomputed CA defaults", "level 3 messages need -vvv")
}

func TestProcessIllegalOptionMessage(t *testing.T) {
	var out bytes.Buffer
	_, err := newTestEngine(t, &out).Process([]string{"--check-key", "--server-cert", "x.crt"})
	require.ErrorIs(t, err, sslopts.ErrBadOption)
	assert.Equal(t, "option --server-cert is not valid with --check-key (try mgr-ssl-tool --help)", err.Error())
}

func TestProcessHelpTokenAsOptionValue(t *testing.T) {
	var out bytes.Buffer
	opts, err := newTestEngine(t, &out).Process([]string{"--gen-ca", "--set-org", "--help"})
	require.NoError(t, err)
	assert.Equal(t, "--help", opts.String(sslopts.KeySetOrg))
	assert.Empty(t, out.String())
}
