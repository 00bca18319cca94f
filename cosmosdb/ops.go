/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cosmosdb

import (
	"context"
	"reflect"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/suparena/cosmostasks/cosmosapi"
	taskerrors "github.com/suparena/cosmostasks/errors"
	"github.com/suparena/cosmostasks/taskmodels"
)

// Meta carries the service metadata of a completed operation. The task
// facade surfaces it on the post-call observe event.
type Meta struct {
	RequestCharge float32
	ActivityID    string
}

// QueryItems executes the query against the container and returns the full
// result collection, draining every page the service hands back. Arguments
// forward to the SDK exactly as received; service errors return unmodified.
func QueryItems(ctx context.Context, container cosmosapi.Container, in taskmodels.QueryInput) ([]taskmodels.Item, Meta, error) {
	if in.Query == "" {
		return nil, Meta{}, taskerrors.ErrEmptyQuery
	}

	opts := in.Options
	if len(in.Parameters) > 0 {
		// Parameters ride on the SDK options struct; clone so the caller's
		// options are not mutated.
		cloned := azcosmos.QueryOptions{}
		if opts != nil {
			cloned = *opts
		}
		cloned.QueryParameters = in.Parameters
		opts = &cloned
	}

	partitionKey := azcosmos.PartitionKey{} // empty key queries across partitions
	if in.PartitionKey != nil {
		partitionKey = *in.PartitionKey
	}

	pager := container.NewQueryItemsPager(in.Query, partitionKey, opts)

	var (
		items []taskmodels.Item
		meta  Meta
	)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, meta, err
		}
		meta.RequestCharge += page.RequestCharge
		meta.ActivityID = page.ActivityID
		for _, raw := range page.Items {
			item, err := taskmodels.DecodeItem(raw)
			if err != nil {
				return nil, meta, err
			}
			items = append(items, item)
		}
	}
	return items, meta, nil
}

// ReadItem fetches exactly one item. The partition key is required by
// contract; a zero key fails before any network call.
func ReadItem(ctx context.Context, container cosmosapi.Container, in taskmodels.ReadInput) (taskmodels.Item, Meta, error) {
	if isZeroPartitionKey(in.PartitionKey) {
		return nil, Meta{}, taskerrors.ErrMissingPartitionKey
	}

	resp, err := container.ReadItem(ctx, in.PartitionKey, in.ItemID, in.Options)
	if err != nil {
		return nil, Meta{}, err
	}
	meta := Meta{RequestCharge: resp.RequestCharge, ActivityID: resp.ActivityID}

	item, err := taskmodels.DecodeItem(resp.Value)
	if err != nil {
		return nil, meta, err
	}
	return item, meta, nil
}

// CreateItem creates a new record from the body. A body without an id is
// assigned one; the partition key derives from the input or the body. No
// idempotency is layered on: duplicate ids fail with the service's own
// conflict error.
func CreateItem(ctx context.Context, container cosmosapi.Container, in taskmodels.CreateInput) (taskmodels.Item, Meta, error) {
	return writeItem(ctx, container.CreateItem, in)
}

// UpsertItem creates or replaces the record identified by the body's id.
func UpsertItem(ctx context.Context, container cosmosapi.Container, in taskmodels.CreateInput) (taskmodels.Item, Meta, error) {
	return writeItem(ctx, container.UpsertItem, in)
}

type writeFunc func(ctx context.Context, partitionKey azcosmos.PartitionKey, item []byte, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error)

func writeItem(ctx context.Context, write writeFunc, in taskmodels.CreateInput) (taskmodels.Item, Meta, error) {
	body := in.Body
	if body == nil {
		body = taskmodels.Item{}
	}
	body.EnsureID()

	partitionKey, err := writePartitionKey(in)
	if err != nil {
		return nil, Meta{}, err
	}

	raw, err := body.MarshalBody()
	if err != nil {
		return nil, Meta{}, err
	}

	resp, err := write(ctx, partitionKey, raw, in.Options)
	if err != nil {
		return nil, Meta{}, err
	}
	meta := Meta{RequestCharge: resp.RequestCharge, ActivityID: resp.ActivityID}

	// The service elides the response payload when content responses are
	// disabled; the request body is the created record in that case.
	if len(resp.Value) == 0 {
		return body, meta, nil
	}
	item, err := taskmodels.DecodeItem(resp.Value)
	if err != nil {
		return nil, meta, err
	}
	return item, meta, nil
}

func writePartitionKey(in taskmodels.CreateInput) (azcosmos.PartitionKey, error) {
	if in.PartitionKey != nil {
		return *in.PartitionKey, nil
	}
	value, ok := in.Body.PartitionKeyValue()
	if !ok {
		return azcosmos.PartitionKey{}, taskerrors.ErrMissingPartitionKey
	}
	return azcosmos.NewPartitionKeyString(value), nil
}

// isZeroPartitionKey distinguishes an unset key from legal keys such as the
// empty string or the null partition key, which carry a component.
func isZeroPartitionKey(pk azcosmos.PartitionKey) bool {
	return reflect.DeepEqual(pk, azcosmos.PartitionKey{})
}
