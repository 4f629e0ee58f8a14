// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrNotYetValid indicates a certificate whose validity starts in the future.
	ErrNotYetValid = errors.New("x509certs: certificate is not yet valid")

	// ErrExpired indicates a certificate whose validity has ended.
	ErrExpired = errors.New("x509certs: certificate has expired")

	// ErrNotCA indicates a certificate without the CA basic constraint.
	ErrNotCA = errors.New("x509certs: certificate is not a CA certificate")
)

// Certificate decodes [X.509] certificates as written by the key set
// generator: PEM, raw DER, or a PKCS7 bundle.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Decode decodes the first certificate from data.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, _ := pem.Decode(data)
		if block.Type != c.certBlockType {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBlockType, block.Type)
		}
		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Not plain DER; the RPM tooling may hand us a PKCS7 bundle instead.
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsePKCS7, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// CheckCA decodes data and verifies that it holds a CA certificate that is
// valid at now.
func (c *Certificate) CheckCA(data []byte, now time.Time) (*x509.Certificate, error) {
	cert, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	if !cert.IsCA {
		return cert, ErrNotCA
	}
	return cert, CheckValidity(cert, now)
}

// CheckValidity reports whether now falls inside the validity window of cert.
func CheckValidity(cert *x509.Certificate, now time.Time) error {
	switch {
	case now.Before(cert.NotBefore):
		return fmt.Errorf("%w: starts %s", ErrNotYetValid, cert.NotBefore.UTC().Format(time.RFC3339))
	case now.After(cert.NotAfter):
		return fmt.Errorf("%w: ended %s", ErrExpired, cert.NotAfter.UTC().Format(time.RFC3339))
	}
	return nil
}
