/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package credentials supplies Cosmos DB account credentials to the task
// layer. Providers are opaque to the operations: they hand back a client and
// everything else is the SDK's business.
package credentials

import (
	"fmt"
	"log"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/joho/godotenv"

	taskerrors "github.com/suparena/cosmostasks/errors"
)

// Environment variable names read by FromEnv.
const (
	EnvConnectionString = "COSMOS_CONNECTION_STRING"
	EnvEndpoint         = "COSMOS_ENDPOINT"
	EnvKey              = "COSMOS_KEY"
)

// Provider hands out an account client. Implementations are immutable
// value types; Client never mutates the provider.
type Provider interface {
	Client(o *azcosmos.ClientOptions) (*azcosmos.Client, error)
}

// KeyCredentials authenticates with an account endpoint and primary key.
type KeyCredentials struct {
	Endpoint string
	Key      string
}

// Client constructs an account client from the endpoint and key. Errors are
// whatever the SDK raises; no validation happens here beyond emptiness.
func (c KeyCredentials) Client(o *azcosmos.ClientOptions) (*azcosmos.Client, error) {
	if c.Endpoint == "" || c.Key == "" {
		return nil, taskerrors.ErrNoCredentials
	}
	cred, err := azcosmos.NewKeyCredential(c.Key)
	if err != nil {
		return nil, err
	}
	return azcosmos.NewClientWithKey(c.Endpoint, cred, o)
}

// ConnectionString authenticates with an account connection string.
type ConnectionString string

// Client constructs an account client from the connection string.
func (c ConnectionString) Client(o *azcosmos.ClientOptions) (*azcosmos.Client, error) {
	if c == "" {
		return nil, taskerrors.ErrNoCredentials
	}
	return azcosmos.NewClientFromConnectionString(string(c), o)
}

// FromEnv builds a provider from the environment, loading a .env file first
// when one is present. A connection string wins over endpoint+key.
func FromEnv() (Provider, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	if cs := os.Getenv(EnvConnectionString); cs != "" {
		return ConnectionString(cs), nil
	}

	endpoint := os.Getenv(EnvEndpoint)
	key := os.Getenv(EnvKey)
	if endpoint == "" || key == "" {
		return nil, fmt.Errorf("%w: set %s, or %s and %s",
			taskerrors.ErrNoCredentials, EnvConnectionString, EnvEndpoint, EnvKey)
	}
	return KeyCredentials{Endpoint: endpoint, Key: key}, nil
}
