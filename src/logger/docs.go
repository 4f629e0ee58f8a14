// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations backed by
// [zerolog]: CLILogger for human-readable command-line output and JSONLogger
// for one-object-per-line structured output. Both honour the tool's
// verbosity convention (-q silences, each -v unlocks one more debug level)
// and are safe for concurrent use.
//
// [zerolog]: https://github.com/rs/zerolog
package logger
