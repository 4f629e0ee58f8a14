// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslopts

import "strconv"

// Defaults maps option keys to their current default values, rendered as
// strings. A Defaults value belongs to a single invocation: it is seeded,
// recomputed once after the first parse, and read by the tree builder.
type Defaults map[Key]string

// Get returns the default for k, or "" when none is set.
func (d Defaults) Get(k Key) string { return d[k] }

// Int returns the default for k as an integer. Unset or malformed entries
// yield 0.
func (d Defaults) Int(k Key) int {
	n, err := strconv.Atoi(d[k])
	if err != nil {
		return 0
	}
	return n
}

// Set stores v as the default for k.
func (d Defaults) Set(k Key, v string) { d[k] = v }

// SetInt stores n as the default for k.
func (d Defaults) SetInt(k Key, n int) { d[k] = strconv.Itoa(n) }

// Clone returns an independent copy of d.
func (d Defaults) Clone() Defaults {
	c := make(Defaults, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

// Merge returns a copy of d overlaid with every entry of other.
func (d Defaults) Merge(other Defaults) Defaults {
	c := d.Clone()
	for k, v := range other {
		c[k] = v
	}
	return c
}

// StaticDefaults returns the defaults every invocation starts from before
// the mode-specific seed is applied.
func StaticDefaults() Defaults {
	return Defaults{
		KeyDir:            "./ssl-build",
		KeyCAKey:          "RHN-ORG-PRIVATE-SSL-KEY",
		KeyCACert:         "RHN-ORG-TRUSTED-SSL-CERT",
		KeyCACertRPM:      "rhn-org-trusted-ssl-cert",
		KeyServerKey:      "server.key",
		KeyServerCertReq:  "server.csr",
		KeyServerCert:     "server.crt",
		KeyServerTar:      "rhn-org-httpd-ssl-archive",
		KeyCertExpiration: "365",
		KeySetCountry:     "US",
	}
}
