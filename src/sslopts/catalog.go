// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

import "fmt"

// Kind is the value kind of an option.
type Kind int

const (
	KindBool Kind = iota
	KindCount
	KindString
	KindInt
	KindStringList
)

// Descriptor describes one command-line option. Descriptors are immutable
// once built and are shared by reference between bundles.
type Descriptor struct {
	Key     Key
	Short   string // one letter, or empty
	Kind    Kind
	Help    string
	Default string // static default, or empty
	Hidden  bool
}

// Long returns the long flag name without dashes.
func (d *Descriptor) Long() string { return d.Key.LongName() }

func opt(k Key, short string, kind Kind, help string) *Descriptor {
	return &Descriptor{Key: k, Short: short, Kind: kind, Help: help}
}

// Bundle is an ordered group of descriptors.
type Bundle []*Descriptor

// Concat joins bundles in order. The result may contain repeats; see Unique.
func Concat(bundles ...Bundle) Bundle {
	var n int
	for _, b := range bundles {
		n += len(b)
	}
	out := make(Bundle, 0, n)
	for _, b := range bundles {
		out = append(out, b...)
	}
	return out
}

// Unique drops repeated descriptors, keeping the first occurrence of each.
// Descriptors are compared by identity, so distinct descriptors survive even
// when their help text is identical.
func (b Bundle) Unique() Bundle {
	seen := make(map[*Descriptor]struct{}, len(b))
	out := make(Bundle, 0, len(b))
	for _, d := range b {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Flags returns the long flag tokens of the bundle in order.
func (b Bundle) Flags() []string {
	flags := make([]string, len(b))
	for i, d := range b {
		flags[i] = d.Key.Flag()
	}
	return flags
}

// Lookup returns the first descriptor for k.
func (b Bundle) Lookup(k Key) (*Descriptor, bool) {
	for _, d := range b {
		if d.Key == k {
			return d, true
		}
	}
	return nil, false
}

// catalog holds every descriptor and bundle built against one Defaults
// snapshot. It is rebuilt whenever the defaults change.
type catalog struct {
	genCA, genServer, checkKey, checkCert *Descriptor

	password, passwordFile, caKey, caCert, certExp, force *Descriptor
	serverKey, serverCertReq, serverCert, startDate       *Descriptor

	caKeyOnly, caCertOnly                             *Descriptor
	serverKeyOnly, serverCertReqOnly, serverCertOnly  *Descriptor
	rpmOnly, noRPM, caCertRPM, serverTar, fromCACert  *Descriptor
	rpmPackager, rpmVendor, setHostname, setCname     *Descriptor

	base          Bundle // the four mode flags
	generic       Bundle // verbose, dir, quiet
	buildRPM      Bundle
	genConf       Bundle // DN fields shared by CA and server
	caConf        Bundle
	serverConf    Bundle
	caKeyOpts     Bundle
	caCertOpts    Bundle
	serverKeyOpts Bundle
	serverReqOpts Bundle
	serverCrtOpts Bundle
	checkKeyOpts  Bundle
}

func newCatalog(defs Defaults) *catalog {
	c := &catalog{}

	c.genCA = opt(KeyGenCA, "", KindBool,
		`generate a Certificate Authority (CA) key pair and public RPM. Review "--gen-ca --help" for more information.`)
	c.genServer = opt(KeyGenServer, "", KindBool,
		`generate the web server's SSL key set, RPM and tar archive. Review "--gen-server --help" for more information.`)
	c.checkKey = opt(KeyCheckKey, "", KindBool,
		`Check SSL CA private key's validity and password. Review "--check-key --help" for more information.`)
	c.checkCert = opt(KeyCheckCert, "", KindBool,
		`Check SSL CA cert's validity. Review "--check-cert --help" for more information.`)
	c.base = Bundle{c.genCA, c.genServer, c.checkKey, c.checkCert}

	c.password = opt(KeyPassword, "p", KindString, "CA password")
	c.passwordFile = opt(KeyPasswordFile, "", KindString, "file containing the CA password")
	c.caKey = opt(KeyCAKey, "", KindString,
		fmt.Sprintf("CA private key filename (default: %s)", defs.Get(KeyCAKey)))
	c.caCert = opt(KeyCACert, "", KindString,
		fmt.Sprintf("CA certificate filename (default: %s)", defs.Get(KeyCACert)))
	c.certExp = opt(KeyCertExpiration, "", KindInt,
		fmt.Sprintf("expiration of certificate (default: %d days)", defs.Int(KeyCertExpiration)))
	c.force = opt(KeyForce, "f", KindBool,
		"forcibly create a new CA SSL private key and/or public certificate")

	c.serverKey = opt(KeyServerKey, "", KindString,
		fmt.Sprintf("the web server's SSL private key filename (default: %s)", defs.Get(KeyServerKey)))
	c.serverCertReq = opt(KeyServerCertReq, "", KindString,
		fmt.Sprintf("location of the web server's SSL certificate request filename (default: %s)", defs.Get(KeyServerCertReq)))
	c.serverCert = opt(KeyServerCert, "", KindString,
		fmt.Sprintf("the web server SSL certificate filename (default: %s)", defs.Get(KeyServerCert)))
	c.startDate = opt(KeyStartDate, "", KindString,
		fmt.Sprintf("start date for the web server's SSL certificate validity (format: YYMMDDHHMMSSZ - where Z is a letter; default is 1 week ago: %s)", defs.Get(KeyStartDate)))
	c.startDate.Default = defs.Get(KeyStartDate)

	c.caKeyOnly = opt(KeyKeyOnly, "", KindBool,
		`(rarely used) only generate a CA SSL private key. Review "--gen-ca --key-only --help" for more information.`)
	c.caCertOnly = opt(KeyCertOnly, "", KindBool,
		`(rarely used) only generate a CA SSL public certificate. Review "--gen-ca --cert-only --help" for more information.`)
	c.serverKeyOnly = opt(KeyKeyOnly, "", KindBool,
		`(rarely used) only generate the web server's SSL private key. Review "--gen-server --key-only --help" for more information.`)
	c.serverCertReqOnly = opt(KeyCertReqOnly, "", KindBool,
		`(rarely used) only generate the web server's SSL certificate request. Review "--gen-server --cert-req-only --help" for more information.`)
	c.serverCertOnly = opt(KeyCertOnly, "", KindBool,
		`(rarely used) only generate the web server's SSL certificate. Review "--gen-server --cert-only --help" for more information.`)

	c.caCertRPM = opt(KeyCACertRPM, "", KindString,
		"(rarely changed) RPM name that houses the CA SSL public certificate (the base filename, not filename-version-release.noarch.rpm).")
	c.serverTar = opt(KeyServerTar, "", KindString,
		"(rarely changed) name of tar archive of the web server's SSL key set and CA SSL public certificate that is used solely by the proxy installation routines (the base filename, not filename-version-release.tar).")
	c.rpmPackager = opt(KeyRPMPackager, "", KindString,
		`(rarely used) packager of the generated RPM, such as "RHN Admin <rhn-admin@example.com>".`)
	c.rpmVendor = opt(KeyRPMVendor, "", KindString,
		`(rarely used) vendor of the generated RPM, such as "IS/IT Example Corp.".`)
	c.rpmOnly = opt(KeyRPMOnly, "", KindBool,
		`(rarely used) only generate a deployable RPM. (and tar archive if used during the --gen-server step) Review "<baseoption> --rpm-only --help" for more information.`)
	c.noRPM = opt(KeyNoRPM, "", KindBool, "(rarely used) do everything *except* generate an RPM.")
	c.fromCACert = opt(KeyFromCACert, "", KindString,
		"(for usage with --gen-ca and --rpm-only) Use a custom CA certificate from the given file. Note this doesn't affect the output CA certificate filename (for this use --ca-cert option).")

	c.setHostname = opt(KeySetHostname, "", KindString,
		fmt.Sprintf("hostname of the web server you are installing the key set on (default: %q)", defs.Get(KeySetHostname)))
	c.setCname = opt(KeySetCname, "", KindStringList,
		"cname alias of the web server, can be specified multiple times")

	c.buildRPM = Bundle{c.rpmPackager, c.rpmVendor, c.rpmOnly}

	c.generic = Bundle{
		opt(KeyVerbose, "v", KindCount, `be verbose. Accumulative: -vvv means "be *really* verbose".`),
		opt(KeyDir, "d", KindString, fmt.Sprintf("build directory (default: %s)", defs.Get(KeyDir))),
		opt(KeyQuiet, "q", KindBool, "be quiet. No output."),
	}

	c.genConf = Bundle{
		opt(KeySetCountry, "", KindString, fmt.Sprintf("2 letter country code (default: %q)", defs.Get(KeySetCountry))),
		opt(KeySetState, "", KindString, fmt.Sprintf("state or province (default: %q)", defs.Get(KeySetState))),
		opt(KeySetCity, "", KindString, fmt.Sprintf("city or locality (default: %q)", defs.Get(KeySetCity))),
		opt(KeySetOrg, "", KindString,
			fmt.Sprintf(`organization or company name, such as "Red Hat Inc." (default: %q)`, defs.Get(KeySetOrg))),
		opt(KeySetOrgUnit, "", KindString,
			fmt.Sprintf(`organizational unit, such as "RHN" (default: %q)`, defs.Get(KeySetOrgUnit))),
		opt(KeySetEmail, "", KindString, fmt.Sprintf("email address (default: %q)", defs.Get(KeySetEmail))),
	}
	c.caConf = Concat(Bundle{
		opt(KeySetCommonName, "", KindString, fmt.Sprintf("common name (default: %q)", defs.Get(KeySetCommonName))),
	}, c.genConf)
	c.serverConf = Concat(Bundle{c.setHostname, c.setCname}, c.genConf)

	c.caKeyOpts = Bundle{c.force, c.password, c.passwordFile, c.caKey}
	c.caCertOpts = Concat(Bundle{c.force, c.password, c.passwordFile, c.caKey, c.caCert, c.certExp}, c.caConf)
	c.serverKeyOpts = Bundle{c.serverKey}
	c.serverReqOpts = Bundle{c.serverKey, c.serverCertReq}
	c.serverCrtOpts = Bundle{
		c.password, c.passwordFile, c.caCert, c.caKey,
		c.serverCertReq, c.startDate, c.serverCert, c.certExp,
	}
	c.checkKeyOpts = Bundle{c.password, c.passwordFile}

	return c
}

// caBundle returns the --gen-ca bundle narrowed by q.
func (c *catalog) caBundle(q Qualifier) Bundle {
	switch q {
	case QualifierKeyOnly:
		return Concat(Bundle{c.genCA}, c.caKeyOpts, c.generic, Bundle{c.caKeyOnly})
	case QualifierCertOnly:
		return Concat(Bundle{c.genCA}, c.caKeyOpts, c.caCertOpts, c.generic, Bundle{c.caCertOnly})
	case QualifierRPMOnly:
		return Concat(Bundle{c.genCA, c.caKey, c.caCert}, c.buildRPM,
			Bundle{c.fromCACert, c.caCertRPM}, c.generic)
	default:
		return Concat(Bundle{c.genCA}, c.caKeyOpts, c.caCertOpts, c.generic,
			Bundle{c.caKeyOnly, c.caCertOnly}, c.buildRPM, Bundle{c.caCertRPM, c.noRPM})
	}
}

// serverBundle returns the --gen-server bundle narrowed by q.
func (c *catalog) serverBundle(q Qualifier) Bundle {
	switch q {
	case QualifierKeyOnly:
		return Concat(Bundle{c.genServer}, c.serverKeyOpts, c.generic, Bundle{c.serverKeyOnly})
	case QualifierCertOnly:
		return Concat(Bundle{c.genServer}, c.serverCrtOpts, c.generic, Bundle{c.serverCertOnly})
	case QualifierCertReqOnly:
		return Concat(Bundle{c.genServer}, c.serverKeyOpts, c.serverReqOpts, c.serverConf,
			c.generic, Bundle{c.serverCertReqOnly})
	default:
		return Concat(Bundle{c.genServer}, c.serverKeyOpts, c.serverReqOpts, c.serverCrtOpts,
			c.serverConf, c.generic,
			Bundle{c.serverKeyOnly, c.serverCertReqOnly, c.serverCertOnly}, Bundle{c.serverTar})
	}
}

// modeBundle returns the bundle legal for m under q. Qualifiers a mode does
// not support leave its full bundle in place.
func (c *catalog) modeBundle(m Mode, q Qualifier) Bundle {
	switch m {
	case ModeGenCA:
		return c.caBundle(q)
	case ModeGenServer:
		return c.serverBundle(q)
	case ModeCheckKey:
		return Concat(Bundle{c.checkKey}, c.checkKeyOpts, c.generic)
	case ModeCheckCert:
		return Concat(Bundle{c.checkCert}, c.generic)
	default:
		return c.base
	}
}
