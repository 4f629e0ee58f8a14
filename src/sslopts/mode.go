// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

// Mode is the top-level operation requested on the command line.
type Mode int

const (
	// ModeNone means no mode flag was given; the caller shows top-level help.
	ModeNone Mode = iota
	ModeGenCA
	ModeGenServer
	ModeCheckKey
	ModeCheckCert
)

// String returns the flag that selects the mode.
func (m Mode) String() string {
	switch m {
	case ModeGenCA:
		return KeyGenCA.Flag()
	case ModeGenServer:
		return KeyGenServer.Flag()
	case ModeCheckKey:
		return KeyCheckKey.Flag()
	case ModeCheckCert:
		return KeyCheckCert.Flag()
	default:
		return "none"
	}
}

// Qualifier narrows a mode to a subset of its work.
type Qualifier int

const (
	QualifierNone Qualifier = iota
	QualifierKeyOnly
	QualifierCertOnly
	QualifierCertReqOnly
	QualifierRPMOnly
)

// String returns the flag that selects the qualifier.
func (q Qualifier) String() string {
	switch q {
	case QualifierKeyOnly:
		return KeyKeyOnly.Flag()
	case QualifierCertOnly:
		return KeyCertOnly.Flag()
	case QualifierCertReqOnly:
		return KeyCertReqOnly.Flag()
	case QualifierRPMOnly:
		return KeyRPMOnly.Flag()
	default:
		return "none"
	}
}

var (
	modeFlags = []string{
		KeyGenCA.Flag(), KeyGenServer.Flag(), KeyCheckKey.Flag(), KeyCheckCert.Flag(),
	}
	modeByFlag = map[string]Mode{
		KeyGenCA.Flag():     ModeGenCA,
		KeyGenServer.Flag(): ModeGenServer,
		KeyCheckKey.Flag():  ModeCheckKey,
		KeyCheckCert.Flag(): ModeCheckCert,
	}
	qualifierFlags = []string{
		KeyKeyOnly.Flag(), KeyCertReqOnly.Flag(), KeyCertOnly.Flag(), KeyRPMOnly.Flag(),
	}
	qualifierByFlag = map[string]Qualifier{
		KeyKeyOnly.Flag():     QualifierKeyOnly,
		KeyCertReqOnly.Flag(): QualifierCertReqOnly,
		KeyCertOnly.Flag():    QualifierCertOnly,
		KeyRPMOnly.Flag():     QualifierRPMOnly,
	}
	rpmFlags = []string{KeyRPMOnly.Flag(), KeyNoRPM.Flag()}
)

// Resolution is the outcome of classifying the raw tokens.
type Resolution struct {
	Mode      Mode
	Qualifier Qualifier
	NoRPM     bool
}

// Resolve classifies the raw tokens before any grammar-aware parsing. The
// tokens are treated as a set; conflicting flags are reported in the order
// they first appear. args is not modified.
func Resolve(args []string) (Resolution, error) {
	var res Resolution

	if hits := intersect(args, qualifierFlags); len(hits) > 1 {
		return res, &UsageConflictError{Kind: ErrConflictingQualifiers, Tokens: hits}
	} else if len(hits) == 1 {
		res.Qualifier = qualifierByFlag[hits[0]]
	}

	rpm := intersect(args, rpmFlags)
	if len(rpm) > 1 {
		return Resolution{}, &UsageConflictError{Kind: ErrConflictingRPMMode, Tokens: rpm}
	}
	res.NoRPM = len(rpm) == 1 && rpm[0] == KeyNoRPM.Flag()

	modes := intersect(args, modeFlags)
	switch len(modes) {
	case 0:
		res.Mode = ModeNone
	case 1:
		res.Mode = modeByFlag[modes[0]]
	default:
		return Resolution{}, &UsageConflictError{Kind: ErrConflictingModes, Tokens: modes}
	}

	return res, nil
}

// IsEntryToken reports whether tok may open a command line: a help flag or
// one of the four mode flags.
func IsEntryToken(tok string) bool {
	if isHelpToken(tok) {
		return true
	}
	_, ok := modeByFlag[tok]
	return ok
}

func isHelpToken(tok string) bool { return tok == "-h" || tok == "--help" }

// hasHelp reports whether a help flag appears before any "--" terminator.
func hasHelp(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if isHelpToken(a) {
			return true
		}
	}
	return false
}

// unique returns s without repeats, keeping first occurrences.
func unique(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// intersect returns the members of a that are also in b, in a's order.
func intersect(a, b []string) []string {
	want := make(map[string]struct{}, len(b))
	for _, v := range b {
		want[v] = struct{}{}
	}
	var out []string
	for _, v := range unique(a) {
		if _, ok := want[v]; ok {
			out = append(out, v)
		}
	}
	return out
}
