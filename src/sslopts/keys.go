// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

import "strings"

// Key identifies one canonical option. The set is closed: every flag the
// tool understands has exactly one Key.
type Key int

const (
	KeyInvalid Key = iota

	// Base mode flags.
	KeyGenCA
	KeyGenServer
	KeyCheckKey
	KeyCheckCert

	// CA key set.
	KeyPassword
	KeyPasswordFile
	KeyCAKey
	KeyCACert
	KeyCertExpiration
	KeyForce

	// Server key set.
	KeyServerKey
	KeyServerCertReq
	KeyServerCert
	KeyStartDate

	// Qualifiers.
	KeyKeyOnly
	KeyCertOnly
	KeyCertReqOnly
	KeyRPMOnly
	KeyNoRPM

	// Packaging.
	KeyCACertRPM
	KeyServerTar
	KeyRPMPackager
	KeyRPMVendor
	KeyFromCACert

	// Distinguishing name.
	KeySetHostname
	KeySetCname
	KeySetCountry
	KeySetState
	KeySetCity
	KeySetOrg
	KeySetOrgUnit
	KeySetEmail
	KeySetCommonName

	// Generic.
	KeyVerbose
	KeyDir
	KeyQuiet
	KeyHelp

	keyCount
)

var keyNames = [keyCount]string{
	KeyInvalid:        "",
	KeyGenCA:          "gen_ca",
	KeyGenServer:      "gen_server",
	KeyCheckKey:       "check_key",
	KeyCheckCert:      "check_cert",
	KeyPassword:       "password",
	KeyPasswordFile:   "password_file",
	KeyCAKey:          "ca_key",
	KeyCACert:         "ca_cert",
	KeyCertExpiration: "cert_expiration",
	KeyForce:          "force",
	KeyServerKey:      "server_key",
	KeyServerCertReq:  "server_cert_req",
	KeyServerCert:     "server_cert",
	KeyStartDate:      "startdate",
	KeyKeyOnly:        "key_only",
	KeyCertOnly:       "cert_only",
	KeyCertReqOnly:    "cert_req_only",
	KeyRPMOnly:        "rpm_only",
	KeyNoRPM:          "no_rpm",
	KeyCACertRPM:      "ca_cert_rpm",
	KeyServerTar:      "server_tar",
	KeyRPMPackager:    "rpm_packager",
	KeyRPMVendor:      "rpm_vendor",
	KeyFromCACert:     "from_ca_cert",
	KeySetHostname:    "set_hostname",
	KeySetCname:       "set_cname",
	KeySetCountry:     "set_country",
	KeySetState:       "set_state",
	KeySetCity:        "set_city",
	KeySetOrg:         "set_org",
	KeySetOrgUnit:     "set_org_unit",
	KeySetEmail:       "set_email",
	KeySetCommonName:  "set_common_name",
	KeyVerbose:        "verbose",
	KeyDir:            "dir",
	KeyQuiet:          "quiet",
	KeyHelp:           "help",
}

var keysByFlag = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := KeyInvalid + 1; k < keyCount; k++ {
		m[k.Flag()] = k
	}
	return m
}()

// Name returns the canonical name of the key, e.g. "ca_key".
func (k Key) Name() string {
	if k <= KeyInvalid || k >= keyCount {
		return ""
	}
	return keyNames[k]
}

// LongName returns the flag name without dashes, e.g. "ca-key".
func (k Key) LongName() string { return strings.ReplaceAll(k.Name(), "_", "-") }

// Flag returns the long flag token, e.g. "--ca-key".
func (k Key) Flag() string {
	if k.Name() == "" {
		return ""
	}
	return "--" + k.LongName()
}

// String implements fmt.Stringer.
func (k Key) String() string { return k.Flag() }

// KeyForFlag translates a long flag token (with or without leading dashes,
// with or without an attached "=value") into its Key.
func KeyForFlag(flag string) (Key, bool) {
	name := strings.TrimLeft(flag, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	k, ok := keysByFlag["--"+name]
	return k, ok
}

// Keys returns every valid key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyInvalid + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
