// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudflare/cfssl/helpers"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/internal/helper/gc"
)

// RenderReport renders the details of cert as a markdown table, with the
// remaining lifetime computed against now.
func RenderReport(cert *x509.Certificate, now time.Time) string {
	daysLeft := int(cert.NotAfter.Sub(now).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}

	rows := [][]string{
		{"Subject", cert.Subject.String()},
		{"Issuer", cert.Issuer.String()},
		{"Serial", cert.SerialNumber.String()},
		{"Not Before", cert.NotBefore.UTC().Format(time.RFC3339)},
		{"Not After", cert.NotAfter.UTC().Format(time.RFC3339)},
		{"Days Left", strconv.Itoa(daysLeft)},
		{"Key", fmt.Sprintf("%d-bit %s", helpers.KeyLength(cert.PublicKey), cert.PublicKeyAlgorithm)},
		{"Signature", helpers.SignatureString(cert.SignatureAlgorithm)},
		{"CA", strconv.FormatBool(cert.IsCA)},
	}

	return gc.Render(func(buf gc.Buffer) {
		table := tablewriter.NewTable(buf,
			tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		)
		table.Header([]string{"Field", "Value"})
		table.Bulk(rows)
		table.Render()
	})
}
