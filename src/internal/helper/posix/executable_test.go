// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "Relative path", path: "./mgr-ssl-tool", expected: "mgr-ssl-tool"},
		{name: "Just filename", path: "myapp", expected: "myapp"},
		{name: "Unix absolute path", path: "/usr/local/bin/myapp", expected: "myapp"},
		{name: "Windows path with .exe", path: `C:\Program Files\myapp.exe`, expected: "myapp"},
		{name: "Windows path without .exe", path: `C:\Program Files\myapp`, expected: "myapp"},
		{name: "Mixed separators", path: `C:\tools/bin\ssl.exe`, expected: "ssl"},
		{name: "Trailing separator", path: "/opt/tool/", expected: "tool"},
		{name: "Only .exe", path: ".exe", expected: DefaultProgName},
		{name: "Empty", path: "", expected: DefaultProgName},
		{name: "Root", path: "/", expected: DefaultProgName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExecutableName(tt.path))
		})
	}
}

func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Empty args", args: []string{}, expected: DefaultProgName},
		{name: "Empty first arg", args: []string{""}, expected: DefaultProgName},
		{name: "Absolute path", args: []string{"/usr/bin/rhn-ssl-tool", "--gen-ca"}, expected: "rhn-ssl-tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			defer func() { os.Args = origArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.expected, GetExecutableName())
		})
	}
}
