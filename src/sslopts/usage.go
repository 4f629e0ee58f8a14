// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

import (
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/helper/gc"
	"github.com/spf13/pflag"
)

const baseUsageTemplate = `%[1]s [options]

 step a %[1]s --check-key [sub-options]

 step b %[1]s --check-cert

 step 1 %[1]s --gen-ca [sub-options]

 step 2 %[1]s --gen-server [sub-options]

The four options listed above are "base options". For more help about
a particular option, just add --help to either one, such as:
%[1]s --gen-ca --help

If confused, please refer to the man page or other documentation
for sample usage.`

const otherUsageTemplate = `%[1]s [options]

If confused, please refer to the man page or other documentation
for sample usage.`

// BaseUsage returns the usage text shown when no mode flag was given.
func BaseUsage(prog string) string { return fmt.Sprintf(baseUsageTemplate, prog) }

// OtherUsage returns the usage text shown for a selected mode.
func OtherUsage(prog string) string { return fmt.Sprintf(otherUsageTemplate, prog) }

// renderHelp assembles the usage line and the option listing of fs.
func renderHelp(usage string, fs *pflag.FlagSet) string {
	out := gc.Render(func(buf gc.Buffer) {
		buf.WriteString("Usage: ")
		buf.WriteString(usage)
		buf.WriteString("\n\nOptions:\n")
		buf.WriteString("  -h, --help            show this help message and exit\n")
		buf.WriteString(fs.FlagUsages())
	})
	return strings.TrimRight(out, "\n") + "\n"
}
