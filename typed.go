/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cosmostasks

import (
	"context"
	"encoding/json"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/suparena/cosmostasks/taskmodels"
)

// DecodeItem converts an opaque item into a typed value.
func DecodeItem[T any](item taskmodels.Item) (*T, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	result := new(T)
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeItems converts a result collection into typed values.
func DecodeItems[T any](items []taskmodels.Item) ([]T, error) {
	results := make([]T, 0, len(items))
	for _, item := range items {
		typed, err := DecodeItem[T](item)
		if err != nil {
			return nil, err
		}
		results = append(results, *typed)
	}
	return results, nil
}

// EncodeItem converts a typed value into the opaque item shape.
func EncodeItem[T any](v T) (taskmodels.Item, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return taskmodels.DecodeItem(raw)
}

// Binding ties a Tasks instance to a container and an item type, giving
// type-safe variants of the task operations.
type Binding[T any] struct {
	tasks     *Tasks
	container taskmodels.ContainerRef
	database  taskmodels.DatabaseRef
}

// Bind creates a typed binding for the given container and database.
func Bind[T any](t *Tasks, container taskmodels.ContainerRef, database taskmodels.DatabaseRef) *Binding[T] {
	return &Binding[T]{tasks: t, container: container, database: database}
}

// Query runs the query with the given parameters and decodes every result.
func (b *Binding[T]) Query(ctx context.Context, query string, parameters ...azcosmos.QueryParameter) ([]T, error) {
	items, err := b.tasks.QueryItems(ctx, taskmodels.QueryInput{
		Query:      query,
		Parameters: parameters,
		Container:  b.container,
		Database:   b.database,
	})
	if err != nil {
		return nil, err
	}
	return DecodeItems[T](items)
}

// Read fetches one item by id and partition key.
func (b *Binding[T]) Read(ctx context.Context, itemID string, partitionKey azcosmos.PartitionKey) (*T, error) {
	item, err := b.tasks.ReadItem(ctx, taskmodels.ReadInput{
		ItemID:       itemID,
		PartitionKey: partitionKey,
		Container:    b.container,
		Database:     b.database,
	})
	if err != nil {
		return nil, err
	}
	return DecodeItem[T](item)
}

// Create stores a new record and returns it as stored.
func (b *Binding[T]) Create(ctx context.Context, v T) (*T, error) {
	return b.write(ctx, v, b.tasks.CreateItem)
}

// Upsert creates or replaces the record identified by the value's id.
func (b *Binding[T]) Upsert(ctx context.Context, v T) (*T, error) {
	return b.write(ctx, v, b.tasks.UpsertItem)
}

func (b *Binding[T]) write(ctx context.Context, v T, op func(context.Context, taskmodels.CreateInput) (taskmodels.Item, error)) (*T, error) {
	body, err := EncodeItem(v)
	if err != nil {
		return nil, err
	}
	item, err := op(ctx, taskmodels.CreateInput{
		Body:      body,
		Container: b.container,
		Database:  b.database,
	})
	if err != nil {
		return nil, err
	}
	return DecodeItem[T](item)
}
