// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/sslopts"
)

// Generator produces the key set, certificates and packages for
// --gen-ca and --gen-server from validated options.
type Generator interface {
	Generate(ctx context.Context, opts *sslopts.Options) error
}

// Planner is the default Generator. Generation itself is done by external
// tooling; Planner prints the resolved parameters that tooling is given.
type Planner struct {
	out io.Writer
}

// NewPlanner creates a Planner writing to out.
func NewPlanner(out io.Writer) *Planner { return &Planner{out: out} }

// Generate prints one row per option legal in the selected mode.
func (p *Planner) Generate(ctx context.Context, opts *sslopts.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if opts.Verbosity == sslopts.VerbositySilent {
		return nil
	}

	_, err := fmt.Fprint(p.out, RenderPlan(opts))
	return err
}

// RenderPlan renders the resolved options as a markdown table.
func RenderPlan(opts *sslopts.Options) string {
	var rows [][]string
	for _, k := range sslopts.Keys() {
		if !opts.Legal(k) || k == sslopts.KeyHelp {
			continue
		}
		source := "default"
		if opts.IsSet(k) {
			source = "command line"
		}
		rows = append(rows, []string{k.Flag(), opts.Value(k), source})
	}

	return gc.Render(func(buf gc.Buffer) {
		buf.WriteString(fmt.Sprintf("Mode: %s", opts.Mode))
		if opts.Qualifier != sslopts.QualifierNone {
			buf.WriteString(" " + opts.Qualifier.String())
		}
		buf.WriteString("\n\n")

		table := tablewriter.NewTable(buf,
			tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		)
		table.Header([]string{"Option", "Value", "Source"})
		table.Bulk(rows)
		table.Render()
	})
}
