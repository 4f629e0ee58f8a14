// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

import (
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// VerbositySilent is the verbosity forced by --quiet.
const VerbositySilent = -1

// Options holds the parsed option values of one invocation. Accessors fall
// back to the recomputed defaults for options the user did not give.
type Options struct {
	Mode      Mode
	Qualifier Qualifier
	NoRPM     bool
	Verbosity int

	bools map[Key]bool
	ints  map[Key]int
	strs  map[Key]string
	lists map[Key][]string
	set   map[Key]bool
	legal map[Key]bool
	args  []string
	defs  Defaults
}

func newOptions(res Resolution, defs Defaults) *Options {
	return &Options{
		Mode:      res.Mode,
		Qualifier: res.Qualifier,
		NoRPM:     res.NoRPM,
		bools:     make(map[Key]bool),
		ints:      make(map[Key]int),
		strs:      make(map[Key]string),
		lists:     make(map[Key][]string),
		set:       make(map[Key]bool),
		legal:     make(map[Key]bool),
		defs:      defs,
	}
}

// collect copies the values of a parsed flag set into o.
func (o *Options) collect(fs *pflag.FlagSet, bindings []*binding) {
	for _, b := range bindings {
		k := b.desc.Key
		o.legal[k] = true
		if f := fs.Lookup(b.desc.Long()); f != nil && f.Changed {
			o.set[k] = true
		}
		switch {
		case b.b != nil:
			o.bools[k] = *b.b
		case b.n != nil:
			o.ints[k] = *b.n
		case b.s != nil:
			o.strs[k] = *b.s
		case b.list != nil:
			o.lists[k] = slices.Clone(*b.list)
		}
	}
	o.args = slices.Clone(fs.Args())
}

// IsSet reports whether k was given on the command line.
func (o *Options) IsSet(k Key) bool { return o.set[k] }

// Legal reports whether k belongs to the option tree of the selected mode.
func (o *Options) Legal(k Key) bool { return o.legal[k] }

// Bool returns the value of a boolean option.
func (o *Options) Bool(k Key) bool { return o.bools[k] }

// Count returns the occurrence count of a counting option.
func (o *Options) Count(k Key) int { return o.ints[k] }

// Int returns the value of an integer option, or its default.
func (o *Options) Int(k Key) int {
	if o.set[k] {
		return o.ints[k]
	}
	return o.defs.Int(k)
}

// String returns the value of a string option, or its default.
func (o *Options) String(k Key) string {
	if o.set[k] {
		return o.strs[k]
	}
	if v, ok := o.strs[k]; ok && v != "" {
		return v
	}
	return o.defs.Get(k)
}

// Strings returns the values of a repeatable option.
func (o *Options) Strings(k Key) []string { return slices.Clone(o.lists[k]) }

// Value renders the value of k as text whatever its kind. Repeatable
// options are joined with commas.
func (o *Options) Value(k Key) string {
	if v, ok := o.bools[k]; ok {
		return strconv.FormatBool(v)
	}
	if _, ok := o.ints[k]; ok {
		return strconv.Itoa(o.Int(k))
	}
	if v, ok := o.lists[k]; ok {
		return strings.Join(v, ",")
	}
	return o.String(k)
}

// Args returns the tokens that were not consumed by any option.
func (o *Options) Args() []string { return slices.Clone(o.args) }

// Defaults returns a copy of the defaults the values were resolved against.
func (o *Options) Defaults() Defaults { return o.defs.Clone() }

// SetKeys returns the keys given on the command line in canonical order.
func (o *Options) SetKeys() []Key {
	var keys []Key
	for _, k := range Keys() {
		if o.set[k] {
			keys = append(keys, k)
		}
	}
	return keys
}
