/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package taskmodels

import (
	"encoding/json"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/google/uuid"
)

// Item is an opaque structured record stored in a container. The task layer
// never validates its contents; the service owns all invariants.
type Item map[string]any

// ID returns the item's "id" field, or "" when absent or not a string.
func (i Item) ID() string {
	id, _ := i["id"].(string)
	return id
}

// EnsureID returns the item's id, assigning a new UUID when the body has none.
func (i Item) EnsureID() string {
	if id := i.ID(); id != "" {
		return id
	}
	id := uuid.NewString()
	i["id"] = id
	return id
}

// PartitionKeyValue returns the value used to route the item: the
// "partitionKey" field when present, otherwise the "id" field.
func (i Item) PartitionKeyValue() (string, bool) {
	if pk, ok := i["partitionKey"].(string); ok && pk != "" {
		return pk, true
	}
	if id := i.ID(); id != "" {
		return id, true
	}
	return "", false
}

// MarshalBody serializes the item for the wire.
func (i Item) MarshalBody() ([]byte, error) {
	return json.Marshal(map[string]any(i))
}

// DecodeItem deserializes a raw service payload into an Item.
func DecodeItem(raw []byte) (Item, error) {
	var item Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return item, nil
}

// QueryInput carries the arguments of the query-items operation.
type QueryInput struct {
	// Query is the Cosmos DB SQL query to execute.
	Query string

	// Parameters holds the optional @name/value parameters of the query.
	Parameters []azcosmos.QueryParameter

	// PartitionKey optionally scopes the query to a single partition.
	// Nil queries across partitions.
	PartitionKey *azcosmos.PartitionKey

	// Container and Database identify the target container.
	Container ContainerRef
	Database  DatabaseRef

	// Options are passed through to the SDK unmodified.
	Options *azcosmos.QueryOptions
}

// ReadInput carries the arguments of the read-item operation.
// PartitionKey is required by contract.
type ReadInput struct {
	ItemID       string
	PartitionKey azcosmos.PartitionKey

	Container ContainerRef
	Database  DatabaseRef

	// Options are passed through to the SDK unmodified.
	Options *azcosmos.ItemOptions
}

// CreateInput carries the arguments of the create-item and upsert-item
// operations.
type CreateInput struct {
	// Body is the record to create. A missing "id" field is assigned a UUID
	// before the call.
	Body Item

	// PartitionKey routes the item. Nil derives the key from the body
	// ("partitionKey" field, then "id").
	PartitionKey *azcosmos.PartitionKey

	Container ContainerRef
	Database  DatabaseRef

	// Options are passed through to the SDK unmodified.
	Options *azcosmos.ItemOptions
}
