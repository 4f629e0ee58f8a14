// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of mgr-ssl-tool.
// It wires a Cobra root command, with flag parsing disabled, to the
// [sslopts] engine, and dispatches the validated options to the handler of
// the selected mode:
//
//   - --check-key reads the CA private key and verifies that it decrypts
//     with --password or --password-file.
//   - --check-cert reads the CA certificate and verifies that it is a CA
//     certificate inside its validity window; -v prints its details.
//   - --gen-ca and --gen-server hand the options to a [Generator]. The
//     default [Planner] prints the resolved parameters as a markdown table.
//
// Help output is not an error. Every other failure is printed as
// "ERROR: ..." and maps to [ExitGeneralError].
package cli
