// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudflare/cfssl/helpers"
)

var (
	// ErrInvalidKeyPEM indicates that no PEM block was found in the key data.
	ErrInvalidKeyPEM = errors.New("x509certs: no PEM encoded private key found")

	// ErrPasswordRequired indicates an encrypted private key checked without a password.
	ErrPasswordRequired = errors.New("x509certs: private key is encrypted, a password is required")

	// ErrParsePrivateKey indicates a private key that could not be decrypted or parsed.
	ErrParsePrivateKey = errors.New("x509certs: failed to parse private key")
)

// CheckPrivateKey decrypts (when needed) and parses a PEM private key.
// RSA, ECDSA and Ed25519 keys in PKCS1, SEC1 or PKCS8 form are accepted.
func CheckPrivateKey(data, password []byte) (crypto.Signer, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidKeyPEM
	}
	if isEncrypted(block) && len(password) == 0 {
		return nil, ErrPasswordRequired
	}

	key, err := helpers.ParsePrivateKeyPEMWithPassword(data, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsePrivateKey, err)
	}
	return key, nil
}

func isEncrypted(block *pem.Block) bool {
	return strings.Contains(block.Headers["Proc-Type"], "ENCRYPTED")
}
