/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cosmosdb

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/suparena/cosmostasks/cosmosapi"
)

// WrapClient adapts an SDK account client to cosmosapi.Client.
func WrapClient(c *azcosmos.Client) cosmosapi.Client {
	return azClient{c: c}
}

// WrapContainer adapts an SDK container client to cosmosapi.Container,
// for callers that resolved a handle themselves.
func WrapContainer(c *azcosmos.ContainerClient) cosmosapi.Container {
	return azContainer{c: c}
}

type azClient struct {
	c *azcosmos.Client
}

func (a azClient) NewDatabase(id string) (cosmosapi.Database, error) {
	db, err := a.c.NewDatabase(id)
	if err != nil {
		return nil, err
	}
	return azDatabase{d: db}, nil
}

type azDatabase struct {
	d *azcosmos.DatabaseClient
}

func (a azDatabase) ID() string { return a.d.ID() }

func (a azDatabase) NewContainer(id string) (cosmosapi.Container, error) {
	ct, err := a.d.NewContainer(id)
	if err != nil {
		return nil, err
	}
	return azContainer{c: ct}, nil
}

type azContainer struct {
	c *azcosmos.ContainerClient
}

func (a azContainer) ID() string { return a.c.ID() }

func (a azContainer) NewQueryItemsPager(query string, partitionKey azcosmos.PartitionKey, o *azcosmos.QueryOptions) cosmosapi.ItemsPager {
	return a.c.NewQueryItemsPager(query, partitionKey, o)
}

func (a azContainer) ReadItem(ctx context.Context, partitionKey azcosmos.PartitionKey, itemID string, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error) {
	return a.c.ReadItem(ctx, partitionKey, itemID, o)
}

func (a azContainer) CreateItem(ctx context.Context, partitionKey azcosmos.PartitionKey, item []byte, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error) {
	return a.c.CreateItem(ctx, partitionKey, item, o)
}

func (a azContainer) UpsertItem(ctx context.Context, partitionKey azcosmos.PartitionKey, item []byte, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error) {
	return a.c.UpsertItem(ctx, partitionKey, item, o)
}
