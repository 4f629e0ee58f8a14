// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/logger"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/ssldefaults"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/sslopts"
)

const (
	// ExitSuccess is returned for completed runs and for help output.
	ExitSuccess = 0
	// ExitGeneralError is returned for every usage, validation or check failure.
	ExitGeneralError = 1
)

// OperationPerformed reports whether the last run reached a mode handler.
var OperationPerformed bool

// runner carries the collaborators of one command invocation.
type runner struct {
	log       logger.Logger
	provider  *ssldefaults.Provider
	generator Generator
	now       func() time.Time
}

// Option configures the root command.
type Option func(*runner)

// WithGenerator replaces the handler of --gen-ca and --gen-server.
func WithGenerator(g Generator) Option { return func(r *runner) { r.generator = g } }

// WithProvider replaces the defaults provider.
func WithProvider(p *ssldefaults.Provider) Option { return func(r *runner) { r.provider = p } }

// WithClock sets the time source used for validation and certificate checks.
func WithClock(now func() time.Time) Option { return func(r *runner) { r.now = now } }

// NewRootCommand builds the mgr-ssl-tool command. Flag parsing is left to
// the option engine: cobra hands it the raw token list.
func NewRootCommand(version string, log logger.Logger, opts ...Option) *cobra.Command {
	r := &runner{log: log, now: time.Now}
	for _, o := range opts {
		o(r)
	}

	cmd := &cobra.Command{
		Use:                posix.GetExecutableName() + " [options]",
		Short:              "Generate and check the SSL key set of a Uyuni/SUSE Manager server",
		Version:            version,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
	return cmd
}

// Execute runs the root command with the process arguments. Help output
// counts as success; any other error is printed to stderr and returned.
func Execute(ctx context.Context, version string, log logger.Logger, opts ...Option) error {
	cmd := NewRootCommand(version, log, opts...)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
	}
	return err
}

// ExitCode maps the result of Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, sslopts.ErrHelp) {
		return ExitSuccess
	}
	return ExitGeneralError
}

// run writes help text and notices to errOut, reports and plans to out.
func (r *runner) run(ctx context.Context, out, errOut io.Writer, args []string) error {
	OperationPerformed = false

	provider := r.provider
	if provider == nil {
		provider = ssldefaults.New(ssldefaults.WithNow(r.now()))
	}

	engine := sslopts.New(
		sslopts.WithSeeder(provider.Seed),
		sslopts.WithResolvers(provider.Resolvers()),
		sslopts.WithClock(r.now),
		sslopts.WithOutput(errOut),
		sslopts.WithLogger(r.log),
	)

	opts, err := engine.Process(args)
	if errors.Is(err, sslopts.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	r.log.SetVerbosity(opts.Verbosity)

	if err := ctx.Err(); err != nil {
		return err
	}

	OperationPerformed = true
	switch opts.Mode {
	case sslopts.ModeCheckKey:
		return r.checkKey(opts)
	case sslopts.ModeCheckCert:
		return r.checkCert(out, opts)
	default:
		g := r.generator
		if g == nil {
			g = NewPlanner(out)
		}
		return g.Generate(ctx, opts)
	}
}
