// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package ssldefaults computes the default values of mgr-ssl-tool options.
//
// A [Provider] seeds the defaults from the host (hostname, clock) and
// supplies the four resolvers the option engine runs after its first parse
// pass:
//
//   - Dirs takes the build directory from --dir.
//   - CA moves the CA key and certificate into the build directory.
//   - Server moves the server key set into a per-machine subdirectory named
//     after --set-hostname, and names the tar archive after the machine.
//   - Distinguishing fills the certificate subject fields, first from a
//     stored defaults file and then from the command line.
//
// The stored defaults file is YAML or JSON (chosen by extension). Its path
// is read from the MGR_SSL_DEFAULTS_FILE environment variable, falling back
// to ssl-defaults.yaml inside the build directory:
//
//	country: DE
//	state: Bavaria
//	city: Nuremberg
//	org: Example Corp. Inc.
//	orgUnit: Infrastructure
//	email: ssl-admin@example.com
//
// Usage:
//
//	p := ssldefaults.New()
//	engine := sslopts.New(
//		sslopts.WithSeeder(p.Seed),
//		sslopts.WithResolvers(p.Resolvers()),
//	)
package ssldefaults
