// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssldefaults

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/mgr-ssl-tool/src/sslopts"
)

// DefaultsFileEnv names the environment variable that points to a stored
// distinguishing-name file. When unset, StoredFileName inside the build
// directory is used.
const DefaultsFileEnv = "MGR_SSL_DEFAULTS_FILE"

// StoredFileName is the distinguishing-name file looked up in the build
// directory.
const StoredFileName = "ssl-defaults.yaml"

// configFormat represents supported stored-defaults file formats.
type configFormat int

const (
	// configFormatJSON represents JSON format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML format (.yaml, .yml)
	configFormatYAML
)

// Stored holds distinguishing-name values kept from an earlier run, so a
// server key set can reuse the organisation data of its CA.
type Stored struct {
	Country    string `json:"country,omitempty" yaml:"country,omitempty"`
	State      string `json:"state,omitempty" yaml:"state,omitempty"`
	City       string `json:"city,omitempty" yaml:"city,omitempty"`
	Org        string `json:"org,omitempty" yaml:"org,omitempty"`
	OrgUnit    string `json:"orgUnit,omitempty" yaml:"orgUnit,omitempty"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty"`
	CommonName string `json:"commonName,omitempty" yaml:"commonName,omitempty"`
}

// apply copies every non-empty field of s into defs.
func (s *Stored) apply(defs sslopts.Defaults) {
	for k, v := range map[sslopts.Key]string{
		sslopts.KeySetCountry:    s.Country,
		sslopts.KeySetState:      s.State,
		sslopts.KeySetCity:       s.City,
		sslopts.KeySetOrg:        s.Org,
		sslopts.KeySetOrgUnit:    s.OrgUnit,
		sslopts.KeySetEmail:      s.Email,
		sslopts.KeySetCommonName: s.CommonName,
	} {
		if v != "" {
			defs.Set(k, v)
		}
	}
}

// detectConfigFormat determines the file format from its extension,
// case-insensitively. Anything other than .yaml/.yml is read as JSON.
func detectConfigFormat(path string) configFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

func unmarshalStored(data []byte, s *Stored, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, s); err != nil {
			return fmt.Errorf("failed to parse YAML defaults file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, s); err != nil {
			return fmt.Errorf("failed to parse JSON defaults file: %w", err)
		}
	}
	return nil
}

// LoadStored reads the stored distinguishing-name file at path. A missing
// file yields (nil, nil).
func LoadStored(path string) (*Stored, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}

	s := &Stored{}
	if err := unmarshalStored(data, s, detectConfigFormat(path)); err != nil {
		return nil, err
	}
	return s, nil
}

// storedPath returns the file the Distinguishing resolver reads.
func (p *Provider) storedPath(dir string) string {
	if path := p.getenv(DefaultsFileEnv); path != "" {
		return path
	}
	return filepath.Join(dir, StoredFileName)
}
