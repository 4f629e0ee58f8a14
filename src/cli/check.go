// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	x509certs "github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/sslopts"
)

// checkKey verifies that the CA private key can be read with the given password.
func (r *runner) checkKey(opts *sslopts.Options) error {
	path := opts.String(sslopts.KeyCAKey)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading CA private key: %w", err)
	}

	password, err := caPassword(opts)
	if err != nil {
		return err
	}

	if _, err := x509certs.CheckPrivateKey(data, password); err != nil {
		return fmt.Errorf("CA private key %s: %w", path, err)
	}

	r.log.Printf("CA private key %s is valid", path)
	return nil
}

// checkCert verifies the CA certificate and prints its details at -v.
func (r *runner) checkCert(out io.Writer, opts *sslopts.Options) error {
	path := opts.String(sslopts.KeyCACert)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading CA certificate: %w", err)
	}

	now := r.now()
	cert, err := x509certs.New().CheckCA(data, now)
	if cert != nil && opts.Verbosity >= 1 {
		fmt.Fprint(out, x509certs.RenderReport(cert, now))
	}
	if err != nil {
		return fmt.Errorf("CA certificate %s: %w", path, err)
	}

	r.log.Printf("CA certificate %s is valid until %s", path, cert.NotAfter.UTC().Format("2006-01-02"))
	return nil
}

// caPassword returns the password from --password-file, or from --password.
// A trailing line break in the file is not part of the password.
func caPassword(opts *sslopts.Options) ([]byte, error) {
	if !opts.Legal(sslopts.KeyPasswordFile) || !opts.IsSet(sslopts.KeyPasswordFile) {
		return []byte(opts.String(sslopts.KeyPassword)), nil
	}

	data, err := os.ReadFile(opts.String(sslopts.KeyPasswordFile))
	if err != nil {
		return nil, fmt.Errorf("error reading password file: %w", err)
	}
	return []byte(strings.TrimRight(string(data), "\r\n")), nil
}
