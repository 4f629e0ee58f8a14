// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/logger"
	"github.com/spf13/pflag"
)

// Seeder returns the starting defaults of an invocation. ca is true when
// --gen-ca was selected.
type Seeder func(ca bool) Defaults

// Resolver recomputes defaults from the values of the first parse pass.
// It receives its own copy of defs and returns the updated defaults.
type Resolver func(first *Options, defs Defaults) (Defaults, error)

// Resolvers are run in field order after the first parse pass. Nil entries
// are skipped.
type Resolvers struct {
	Dirs           Resolver
	CA             Resolver
	Server         Resolver
	Distinguishing Resolver
}

type phase int

const (
	phaseStart phase = iota
	phaseSeeded
	phaseFirstParsed
	phaseDefaultsRecomputed
	phaseFinalParsed
)

func (p phase) String() string {
	switch p {
	case phaseSeeded:
		return "seeded"
	case phaseFirstParsed:
		return "first-parsed"
	case phaseDefaultsRecomputed:
		return "defaults-recomputed"
	case phaseFinalParsed:
		return "final-parsed"
	default:
		return "start"
	}
}

// Engine resolves, parses and validates one command line.
//
// Parsing happens in up to two passes. The first pass runs against option
// help built from the seeded defaults and only serves to pick up user
// overrides; the resolvers then recompute the defaults from it. When help
// was requested, the tree is rebuilt from the recomputed defaults and parsed
// again so the printed defaults match the rest of the command line.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	prog      string
	seed      Seeder
	resolvers Resolvers
	now       func() time.Time
	out       io.Writer
	log       logger.Logger
	phase     phase
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithProgName sets the program name used in usage text.
func WithProgName(name string) EngineOption { return func(e *Engine) { e.prog = name } }

// WithSeeder sets the function producing the starting defaults.
func WithSeeder(s Seeder) EngineOption { return func(e *Engine) { e.seed = s } }

// WithResolvers sets the default recomputation steps.
func WithResolvers(r Resolvers) EngineOption { return func(e *Engine) { e.resolvers = r } }

// WithClock sets the time source used by the validators.
func WithClock(now func() time.Time) EngineOption { return func(e *Engine) { e.now = now } }

// WithOutput sets where help text and notices are written (stderr by default).
func WithOutput(w io.Writer) EngineOption { return func(e *Engine) { e.out = w } }

// WithLogger sets the logger used for phase tracing.
func WithLogger(l logger.Logger) EngineOption { return func(e *Engine) { e.log = l } }

// New creates an Engine.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		prog: posix.GetExecutableName(),
		now:  time.Now,
		out:  os.Stderr,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Process turns args (without the program name) into validated options.
//
// It returns ErrHelp once help text has been written, a *UsageConflictError
// for a malformed command line and a *ValidationError for out-of-range
// values. args is not modified.
func (e *Engine) Process(args []string) (*Options, error) {
	e.phase = phaseStart
	args = slices.Clone(args)

	if len(args) > 0 && !IsEntryToken(args[0]) {
		fmt.Fprintf(e.out, "%s: unrecognized first option %q, showing base help\n\n", e.prog, args[0])
		args = []string{"--help"}
	}

	res, err := Resolve(args)
	if err != nil {
		return nil, err
	}

	defs := StaticDefaults()
	if e.seed != nil {
		defs = defs.Merge(e.seed(res.Mode == ModeGenCA))
	}
	e.enter(phaseSeeded)

	tree := Build(res, defs, e.prog)
	if tree.ForceHelp {
		args = []string{"--help"}
	}

	first, err := e.parse(tree, res, defs, args, false)
	if err != nil {
		return nil, err
	}
	e.adoptVerbosity(first)
	e.enter(phaseFirstParsed)

	if defs, err = e.recompute(first, defs); err != nil {
		return nil, err
	}
	e.enter(phaseDefaultsRecomputed)

	if hasHelp(args) {
		if err := e.showHelp(Build(res, defs, e.prog), res, defs, args); err != nil {
			return nil, err
		}
	}

	final := first
	final.defs = defs
	if len(final.args) > 0 {
		return nil, &UsageConflictError{Kind: ErrPositionalArgs, Tokens: final.Args()}
	}
	if err := validate(final, e.now()); err != nil {
		return nil, err
	}
	e.enter(phaseFinalParsed)

	return final, nil
}

// parse runs one pass over args. Without help, a hidden placeholder help
// flag absorbs -h/--help so nothing is printed.
func (e *Engine) parse(tree Tree, res Resolution, defs Defaults, args []string, help bool) (*Options, error) {
	fs, bindings := tree.flagSet(e.prog)
	if help {
		fs.SetOutput(e.out)
		fs.Usage = func() { fmt.Fprint(e.out, tree.Help()) }
	} else {
		fs.SetOutput(io.Discard)
		fs.Usage = func() {}
		placeholder := &Descriptor{Key: KeyHelp, Short: "h", Kind: KindCount, Hidden: true}
		bindings = append(bindings, register(fs, placeholder))
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, e.badOption(tree, args, err)
	}

	o := newOptions(res, defs)
	o.collect(fs, bindings)
	return o, nil
}

// showHelp re-parses with real help handling. pflag writes the help text
// when it reaches the help flag and the result is ErrHelp. A nil result
// means the help token was consumed as an option value.
func (e *Engine) showHelp(tree Tree, res Resolution, defs Defaults, args []string) error {
	_, err := e.parse(tree, res, defs, args, true)
	return err
}

// badOption turns a pflag error into a usage error. An option that exists
// but is not legal in the selected mode is named explicitly.
func (e *Engine) badOption(tree Tree, args []string, err error) error {
	conflict := &UsageConflictError{
		Kind:   ErrBadOption,
		Detail: fmt.Sprintf("%v (try %s --help)", err, e.prog),
	}
	if !strings.HasPrefix(err.Error(), "unknown flag") {
		return conflict
	}

	for _, a := range args {
		if a == "--" {
			break
		}
		if !strings.HasPrefix(a, "--") {
			continue
		}
		k, ok := KeyForFlag(a)
		if !ok || k == KeyHelp {
			continue
		}
		if _, legal := tree.Options.Lookup(k); !legal {
			conflict.Tokens = []string{k.Flag()}
			conflict.Detail = fmt.Sprintf("option %s is not valid with %s (try %s --help)", k.Flag(), tree.Mode, e.prog)
			break
		}
	}
	return conflict
}

func (e *Engine) recompute(first *Options, defs Defaults) (Defaults, error) {
	steps := []struct {
		name string
		fn   Resolver
	}{
		{"directory", e.resolvers.Dirs},
		{"CA", e.resolvers.CA},
		{"server", e.resolvers.Server},
		{"distinguishing name", e.resolvers.Distinguishing},
	}

	for _, s := range steps {
		if s.fn == nil {
			continue
		}
		next, err := s.fn(first, defs.Clone())
		if err != nil {
			return nil, fmt.Errorf("sslopts: recomputing %s defaults: %w", s.name, err)
		}
		defs = next
		e.debugf(3, "recomputed %s defaults", s.name)
	}
	return defs, nil
}

func (e *Engine) adoptVerbosity(first *Options) {
	if e.log == nil {
		return
	}
	if first.Bool(KeyQuiet) {
		e.log.SetVerbosity(VerbositySilent)
		return
	}
	e.log.SetVerbosity(first.Count(KeyVerbose))
}

func (e *Engine) enter(p phase) {
	e.phase = p
	e.debugf(2, "option parsing: %s", p)
}

func (e *Engine) debugf(level int, format string, v ...any) {
	if e.log != nil {
		e.log.Debugf(level, format, v...)
	}
}
