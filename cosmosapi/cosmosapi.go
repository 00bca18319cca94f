/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cosmosapi

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
)

// Client is the account-scoped surface the task layer needs from the
// Cosmos DB SDK. *azcosmos.Client satisfies it through the adapter in the
// cosmosdb package; the mock package provides an in-memory substitute.
type Client interface {
	NewDatabase(id string) (Database, error)
}

// Database is a database-scoped handle.
type Database interface {
	ID() string
	NewContainer(id string) (Container, error)
}

// Container is a container-scoped handle covering exactly the operations
// the task layer forwards. Method signatures mirror azcosmos.ContainerClient
// so the adapter is a thin veneer and arguments pass through untouched.
type Container interface {
	ID() string

	NewQueryItemsPager(query string, partitionKey azcosmos.PartitionKey, o *azcosmos.QueryOptions) ItemsPager

	ReadItem(ctx context.Context, partitionKey azcosmos.PartitionKey, itemID string, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error)

	CreateItem(ctx context.Context, partitionKey azcosmos.PartitionKey, item []byte, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error)

	UpsertItem(ctx context.Context, partitionKey azcosmos.PartitionKey, item []byte, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error)
}

// ItemsPager is the paging surface of a query. The SDK's
// *runtime.Pager[azcosmos.QueryItemsResponse] satisfies it directly.
type ItemsPager interface {
	More() bool
	NextPage(ctx context.Context) (azcosmos.QueryItemsResponse, error)
}
