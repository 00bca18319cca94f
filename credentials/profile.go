/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package credentials

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	taskerrors "github.com/suparena/cosmostasks/errors"
)

// Profile is a YAML account profile:
//
//	endpoint: https://myaccount.documents.azure.com:443/
//	key: <primary key>
//	# or instead of endpoint/key:
//	connectionString: AccountEndpoint=...;AccountKey=...;
//	database: SampleDB
//	container: Persons
//
// Database and Container are optional defaults for callers that bind them.
type Profile struct {
	Endpoint         string `yaml:"endpoint"`
	Key              string `yaml:"key"`
	ConnectionString string `yaml:"connectionString"`
	Database         string `yaml:"database"`
	Container        string `yaml:"container"`
}

// LoadProfile reads and parses a YAML profile file.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %q: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %q: %w", path, err)
	}
	return &p, nil
}

// Provider returns the credentials carried by the profile. A connection
// string wins over endpoint+key.
func (p *Profile) Provider() (Provider, error) {
	if p.ConnectionString != "" {
		return ConnectionString(p.ConnectionString), nil
	}
	if p.Endpoint != "" && p.Key != "" {
		return KeyCredentials{Endpoint: p.Endpoint, Key: p.Key}, nil
	}
	return nil, taskerrors.ErrNoCredentials
}
