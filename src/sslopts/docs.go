// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sslopts resolves the command line of the SSL key set tool.
//
// The tool has no subcommand grammar. One of four mode flags
// (--gen-ca, --gen-server, --check-key, --check-cert) may appear anywhere in
// the token list, optionally narrowed by one qualifier (--key-only,
// --cert-only, --cert-req-only, --rpm-only). The legal options, and the
// defaults printed in their help text, depend on the mode and on other
// options given on the same line (--dir moves every output file, for
// example).
//
// Resolution happens in layers:
//
//   - [Resolve] classifies the raw tokens as a set and rejects conflicting
//     mode, qualifier and RPM flags before any parsing.
//   - [Build] turns the mode, qualifier and current [Defaults] into a [Tree]:
//     the deduplicated option list plus usage text. It is a pure function
//     and is called again whenever the defaults change.
//   - [Engine.Process] seeds the defaults, parses once with [pflag] to pick
//     up overrides, lets the resolvers recompute the defaults, re-parses with
//     real help when -h/--help was given, rejects stray arguments and
//     validates the result.
//
// Usage:
//
//	engine := sslopts.New(
//		sslopts.WithSeeder(provider.Seed),
//		sslopts.WithResolvers(provider.Resolvers()),
//	)
//	opts, err := engine.Process(os.Args[1:])
//	switch {
//	case errors.Is(err, sslopts.ErrHelp):
//		return nil
//	case err != nil:
//		return err
//	}
//	fmt.Println(opts.Mode, opts.String(sslopts.KeyCACert))
//
// [pflag]: https://github.com/spf13/pflag
package sslopts
