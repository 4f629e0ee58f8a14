// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/x509/certs"
)

var testNow = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

// newTestCert self-signs a certificate valid between notBefore and notAfter
// and returns its DER encoding.
func newTestCert(t *testing.T, notBefore, notAfter time.Time, isCA bool) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(4242),
		Subject: pkix.Name{
			CommonName:   "RHN-ORG-TRUSTED-SSL-CERT",
			Organization: []string{"Example Corp. Inc."},
			Country:      []string{"US"},
		},
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		IsCA:                  isCA,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return der
}

func toPEM(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

func TestCertificateDecode(t *testing.T) {
	der := newTestCert(t, testNow.AddDate(0, 0, -1), testNow.AddDate(1, 0, 0), true)
	decoder := x509certs.New()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "PEM", data: toPEM("CERTIFICATE", der)},
		{name: "DER", data: der},
		{name: "Wrong PEM type", data: toPEM("EC PRIVATE KEY", der), wantErr: x509certs.ErrInvalidBlockType},
		{name: "Garbage", data: []byte("definitely not a certificate"), wantErr: x509certs.ErrParsePKCS7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert, err := decoder.Decode(tt.data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cert)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "RHN-ORG-TRUSTED-SSL-CERT", cert.Subject.CommonName)
			assert.Equal(t, der, cert.Raw)
		})
	}
}

func TestCertificateIsPEM(t *testing.T) {
	der := newTestCert(t, testNow, testNow.AddDate(0, 1, 0), true)
	decoder := x509certs.New()

	assert.True(t, decoder.IsPEM(toPEM("CERTIFICATE", der)))
	assert.False(t, decoder.IsPEM(der))
	assert.False(t, decoder.IsPEM(nil))
}

func TestCheckCA(t *testing.T) {
	decoder := x509certs.New()

	tests := []struct {
		name    string
		der     []byte
		wantErr error
	}{
		{
			name: "Valid CA",
			der:  newTestCert(t, testNow.AddDate(0, 0, -7), testNow.AddDate(5, 0, 0), true),
		},
		{
			name:    "Expired",
			der:     newTestCert(t, testNow.AddDate(-2, 0, 0), testNow.AddDate(0, 0, -1), true),
			wantErr: x509certs.ErrExpired,
		},
		{
			name:    "Not yet valid",
			der:     newTestCert(t, testNow.AddDate(0, 0, 1), testNow.AddDate(1, 0, 0), true),
			wantErr: x509certs.ErrNotYetValid,
		},
		{
			name:    "Leaf certificate",
			der:     newTestCert(t, testNow.AddDate(0, 0, -1), testNow.AddDate(1, 0, 0), false),
			wantErr: x509certs.ErrNotCA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert, err := decoder.CheckCA(toPEM("CERTIFICATE", tt.der), testNow)
			require.NotNil(t, cert, "the decoded certificate is returned even when the check fails")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckCADecodeError(t *testing.T) {
	cert, err := x509certs.New().CheckCA([]byte("junk"), testNow)
	assert.Nil(t, cert)
	assert.ErrorIs(t, err, x509certs.ErrParsePKCS7)
}

func TestRenderReport(t *testing.T) {
	der := newTestCert(t, testNow.AddDate(0, 0, -1), testNow.AddDate(0, 0, 30), true)
	cert, err := x509certs.New().Decode(der)
	require.NoError(t, err)

	report := x509certs.RenderReport(cert, testNow)

	assert.Contains(t, report, "RHN-ORG-TRUSTED-SSL-CERT")
	assert.Contains(t, report, "4242")
	assert.Contains(t, report, "256-bit ECDSA")
	assert.Regexp(t, `Days Left\s*\|\s*30\s*\|`, report)
	assert.Regexp(t, `CA\s*\|\s*true\s*\|`, report)
}
