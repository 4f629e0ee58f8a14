// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssldefaults

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/x509/horizon"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/sslopts"
)

const (
	// StartDateLayout is the YYMMDDHHMMSSZ layout of --startdate.
	StartDateLayout = "060102150405Z"

	// ServerCertExpiration is the default validity of a server certificate, in days.
	ServerCertExpiration = 365

	serverTarPrefix = "rhn-org-httpd-ssl-archive"
)

// Provider computes the defaults of one invocation. The zero value is not
// usable; construct it with New.
type Provider struct {
	hostname string
	now      time.Time
	getenv   func(string) string
}

// Option configures a Provider.
type Option func(*Provider)

// WithHostname overrides the hostname detected from the system.
func WithHostname(h string) Option { return func(p *Provider) { p.hostname = h } }

// WithNow fixes the reference time.
func WithNow(t time.Time) Option { return func(p *Provider) { p.now = t } }

// WithGetenv replaces the environment lookup.
func WithGetenv(fn func(string) string) Option { return func(p *Provider) { p.getenv = fn } }

// New creates a Provider reading the hostname, clock and environment of
// the running process unless overridden.
func New(opts ...Option) *Provider {
	p := &Provider{now: time.Now(), getenv: os.Getenv}
	for _, o := range opts {
		o(p)
	}
	if p.hostname == "" {
		h, err := os.Hostname()
		if err != nil || h == "" {
			h = "localhost"
		}
		p.hostname = h
	}
	return p
}

// Resolvers returns the four recomputation steps in their fixed order.
func (p *Provider) Resolvers() sslopts.Resolvers {
	return sslopts.Resolvers{
		Dirs:           p.Dirs,
		CA:             p.CA,
		Server:         p.Server,
		Distinguishing: p.Distinguishing,
	}
}

// Seed returns the starting defaults. CA runs default to a certificate
// lifetime reaching the time horizon; everything else to one year.
func (p *Provider) Seed(ca bool) sslopts.Defaults {
	defs := sslopts.StaticDefaults()
	defs.Set(sslopts.KeySetHostname, p.hostname)
	defs.Set(sslopts.KeyStartDate, p.now.UTC().AddDate(0, 0, -7).Format(StartDateLayout))
	defs.Set(sslopts.KeySetCountry, "US")
	defs.Set(sslopts.KeySetState, "")
	defs.Set(sslopts.KeySetCity, "")
	defs.Set(sslopts.KeySetOrg, "Example Corp. Inc.")
	defs.Set(sslopts.KeySetOrgUnit, "unit")
	defs.Set(sslopts.KeyRPMPackager, "None")
	defs.Set(sslopts.KeyRPMVendor, "None")

	if ca {
		defs.SetInt(sslopts.KeyCertExpiration, horizon.DaysUntil(p.now))
		defs.Set(sslopts.KeySetCommonName, "")
		defs.Set(sslopts.KeySetEmail, "")
	} else {
		defs.SetInt(sslopts.KeyCertExpiration, ServerCertExpiration)
		defs.Set(sslopts.KeySetCommonName, p.hostname)
		defs.Set(sslopts.KeySetEmail, "admin@example.com")
	}
	return defs
}

// Dirs takes the build directory from --dir.
func (p *Provider) Dirs(first *sslopts.Options, defs sslopts.Defaults) (sslopts.Defaults, error) {
	if first.IsSet(sslopts.KeyDir) {
		defs.Set(sslopts.KeyDir, filepath.Clean(first.String(sslopts.KeyDir)))
	}
	return defs, nil
}

// CA places the CA key and certificate inside the build directory.
func (p *Provider) CA(first *sslopts.Options, defs sslopts.Defaults) (sslopts.Defaults, error) {
	dir := defs.Get(sslopts.KeyDir)
	for _, k := range []sslopts.Key{sslopts.KeyCAKey, sslopts.KeyCACert} {
		defs.Set(k, filepath.Join(dir, baseName(first, defs, k)))
	}
	if first.IsSet(sslopts.KeyCACertRPM) {
		defs.Set(sslopts.KeyCACertRPM, first.String(sslopts.KeyCACertRPM))
	}
	return defs, nil
}

// Server places the server key set in a per-machine directory below the
// build directory and names the tar archive after the machine.
func (p *Provider) Server(first *sslopts.Options, defs sslopts.Defaults) (sslopts.Defaults, error) {
	hostname := defs.Get(sslopts.KeySetHostname)
	if first.IsSet(sslopts.KeySetHostname) {
		hostname = first.String(sslopts.KeySetHostname)
		defs.Set(sslopts.KeySetHostname, hostname)
	}

	machine := MachineName(hostname)
	serverDir := filepath.Join(defs.Get(sslopts.KeyDir), machine)
	for _, k := range []sslopts.Key{sslopts.KeyServerKey, sslopts.KeyServerCertReq, sslopts.KeyServerCert} {
		defs.Set(k, filepath.Join(serverDir, baseName(first, defs, k)))
	}

	if first.IsSet(sslopts.KeyServerTar) {
		defs.Set(sslopts.KeyServerTar, first.String(sslopts.KeyServerTar))
	} else {
		defs.Set(sslopts.KeyServerTar, serverTarPrefix+"-"+machine)
	}
	return defs, nil
}

// Distinguishing fills the distinguishing-name defaults from the stored
// file, then from the command line.
func (p *Provider) Distinguishing(first *sslopts.Options, defs sslopts.Defaults) (sslopts.Defaults, error) {
	stored, err := LoadStored(p.storedPath(defs.Get(sslopts.KeyDir)))
	if err != nil {
		return nil, err
	}
	if stored != nil {
		stored.apply(defs)
	}

	if first.Mode != sslopts.ModeGenCA {
		defs.Set(sslopts.KeySetCommonName, defs.Get(sslopts.KeySetHostname))
	}

	for _, k := range []sslopts.Key{
		sslopts.KeySetCountry, sslopts.KeySetState, sslopts.KeySetCity,
		sslopts.KeySetOrg, sslopts.KeySetOrgUnit, sslopts.KeySetEmail,
		sslopts.KeySetCommonName,
	} {
		if first.IsSet(k) {
			defs.Set(k, first.String(k))
		}
	}
	return defs, nil
}

// MachineName strips the two rightmost labels (domain and TLD) from a
// fully qualified hostname. Short names are returned unchanged.
func MachineName(hostname string) string {
	labels := strings.Split(strings.Trim(hostname, "."), ".")
	if len(labels) > 2 {
		labels = labels[:len(labels)-2]
	}
	return strings.Join(labels, ".")
}

// baseName returns the file name for k: the user's value when given,
// otherwise the current default, stripped of any directory.
func baseName(first *sslopts.Options, defs sslopts.Defaults, k sslopts.Key) string {
	name := defs.Get(k)
	if first.IsSet(k) {
		name = first.String(k)
	}
	return filepath.Base(name)
}
