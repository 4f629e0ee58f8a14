// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// DefaultProgName is used when the executable name cannot be determined.
const DefaultProgName = "mgr-ssl-tool"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe suffix so
// usage text reads the same on every platform:
//   - Linux/macOS: "mgr-ssl-tool" from "/usr/bin/mgr-ssl-tool"
//   - Windows: "mgr-ssl-tool" from "C:\bin\mgr-ssl-tool.exe"
//   - Fallback: DefaultProgName if os.Args[0] is unavailable
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return DefaultProgName
	}
	return ExecutableName(os.Args[0])
}

// ExecutableName returns the base name of path, accepting both slash and
// backslash separators regardless of the host OS.
func ExecutableName(path string) string {
	path = strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	path = strings.TrimSuffix(path, ".exe")
	if path == "" {
		return DefaultProgName
	}
	return path
}
