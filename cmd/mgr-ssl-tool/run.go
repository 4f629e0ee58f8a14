// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/cli"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/logger"
	verpkg "github.com/H0llyW00dzZ/mgr-ssl-tool/src/version"
)

// logFormatEnv selects the log format: "json" or the default console lines.
const logFormatEnv = "MGR_SSL_LOG_FORMAT"

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// newLogger picks the logger implementation from the environment.
func newLogger(getenv func(string) string) logger.Logger {
	if strings.EqualFold(getenv(logFormatEnv), "json") {
		return logger.NewJSONLogger(os.Stdout)
	}
	return logger.NewCLILogger()
}

func main() {
	log := newLogger(os.Getenv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if code := cli.ExitCode(err); code != cli.ExitSuccess {
			stop()
			os.Exit(code)
		}
		if cli.OperationPerformed {
			log.Debugf(1, "mgr-ssl-tool %s completed successfully.", version)
		}
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		os.Exit(130) // Standard exit code for SIGINT
	}
}
