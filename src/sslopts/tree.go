// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

import "github.com/spf13/pflag"

// Tree is the option list legal for one mode and qualifier, together with
// the usage text that goes with it.
type Tree struct {
	Mode      Mode
	Qualifier Qualifier
	Options   Bundle
	Usage     string

	// ForceHelp is set when no mode was selected; the caller must show
	// top-level help instead of running anything.
	ForceHelp bool
}

// Build assembles the option tree for res from defs. It has no hidden
// state: calling it again with updated defaults yields help text that
// reflects them.
func Build(res Resolution, defs Defaults, prog string) Tree {
	c := newCatalog(defs)

	if res.Mode == ModeNone {
		return Tree{
			Mode:      ModeNone,
			Options:   c.base,
			Usage:     BaseUsage(prog),
			ForceHelp: true,
		}
	}

	return Tree{
		Mode:      res.Mode,
		Qualifier: res.Qualifier,
		Options:   c.modeBundle(res.Mode, res.Qualifier).Unique(),
		Usage:     OtherUsage(prog),
	}
}

// Help renders the usage text followed by the option listing.
func (t Tree) Help() string {
	fs, _ := t.flagSet("help")
	return renderHelp(t.Usage, fs)
}

// binding ties a descriptor to the pflag storage it was registered with.
type binding struct {
	desc *Descriptor
	b    *bool
	n    *int
	s    *string
	list *[]string
}

// flagSet registers every option of the tree on a fresh pflag.FlagSet that
// keeps tree order and reports errors instead of exiting.
func (t Tree) flagSet(name string) (*pflag.FlagSet, []*binding) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	bindings := make([]*binding, 0, len(t.Options))
	for _, d := range t.Options {
		bindings = append(bindings, register(fs, d))
	}
	return fs, bindings
}

func register(fs *pflag.FlagSet, d *Descriptor) *binding {
	b := &binding{desc: d}
	switch d.Kind {
	case KindBool:
		b.b = fs.BoolP(d.Long(), d.Short, false, d.Help)
	case KindCount:
		b.n = fs.CountP(d.Long(), d.Short, d.Help)
	case KindInt:
		b.n = fs.IntP(d.Long(), d.Short, 0, d.Help)
	case KindStringList:
		b.list = fs.StringArrayP(d.Long(), d.Short, nil, d.Help)
	default:
		b.s = fs.StringP(d.Long(), d.Short, d.Default, d.Help)
		// the help text already names the default
		fs.Lookup(d.Long()).DefValue = ""
	}
	if d.Hidden {
		_ = fs.MarkHidden(d.Long())
	}
	return b
}
