// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs decodes and checks the CA material handled by
// mgr-ssl-tool. Certificates are accepted as [PEM], DER or [PKCS7];
// private keys as PEM, optionally encrypted with a passphrase.
//
// The --check-cert mode uses [Certificate.CheckCA] and [RenderReport]; the
// --check-key mode uses [CheckPrivateKey].
//
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
