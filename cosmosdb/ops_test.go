/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cosmosdb

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/cosmostasks/cosmosapi/mock"
	taskerrors "github.com/suparena/cosmostasks/errors"
	"github.com/suparena/cosmostasks/taskmodels"
)

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestQueryItemsForwardsArguments(t *testing.T) {
	olivia := mustMarshal(t, map[string]any{"id": "1", "firstname": "Olivia", "age": 44})
	noah := mustMarshal(t, map[string]any{"id": "2", "firstname": "Noah", "age": 51})

	var gotQuery string
	var gotOpts *azcosmos.QueryOptions
	container := mock.NewContainer("Persons").WithQueryFunc(
		func(query string, pk azcosmos.PartitionKey, o *azcosmos.QueryOptions) ([][]byte, error) {
			gotQuery = query
			gotOpts = o
			return [][]byte{olivia, noah}, nil
		})

	parameters := []azcosmos.QueryParameter{{Name: "@age", Value: 44}}
	items, _, err := QueryItems(context.Background(), container, taskmodels.QueryInput{
		Query:      "SELECT * FROM c where c.age >= @age",
		Parameters: parameters,
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM c where c.age >= @age", gotQuery)
	require.NotNil(t, gotOpts)
	assert.Equal(t, parameters, gotOpts.QueryParameters)

	require.Len(t, items, 2)
	assert.Equal(t, "Olivia", items[0]["firstname"])
	assert.Equal(t, "Noah", items[1]["firstname"])
}

func TestQueryItemsDoesNotMutateCallerOptions(t *testing.T) {
	container := mock.NewContainer("Persons")
	callerOpts := &azcosmos.QueryOptions{PageSizeHint: 10}

	_, _, err := QueryItems(context.Background(), container, taskmodels.QueryInput{
		Query:      "SELECT * FROM c",
		Parameters: []azcosmos.QueryParameter{{Name: "@age", Value: 44}},
		Options:    callerOpts,
	})
	require.NoError(t, err)

	assert.Nil(t, callerOpts.QueryParameters, "caller options must not be mutated")

	call, ok := container.LastCall()
	require.True(t, ok)
	require.NotNil(t, call.QueryOptions)
	assert.EqualValues(t, 10, call.QueryOptions.PageSizeHint, "pass-through options must carry over")
}

func TestQueryItemsDrainsAllPages(t *testing.T) {
	page1 := [][]byte{mustMarshal(t, map[string]any{"id": "1"})}
	page2 := [][]byte{
		mustMarshal(t, map[string]any{"id": "2"}),
		mustMarshal(t, map[string]any{"id": "3"}),
	}
	container := mock.NewContainer("Persons").WithPages(page1, page2)

	items, _, err := QueryItems(context.Background(), container, taskmodels.QueryInput{
		Query: "SELECT * FROM c",
	})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "3", items[2].ID())
}

func TestQueryItemsEmptyQuery(t *testing.T) {
	container := mock.NewContainer("Persons")

	_, _, err := QueryItems(context.Background(), container, taskmodels.QueryInput{})
	require.ErrorIs(t, err, taskerrors.ErrEmptyQuery)
	assert.Empty(t, container.Calls(), "no call may reach the service")
}

func TestQueryItemsErrorPassthrough(t *testing.T) {
	serviceErr := errors.New("service exploded")
	container := mock.NewContainer("Persons").WithQueryFunc(
		func(string, azcosmos.PartitionKey, *azcosmos.QueryOptions) ([][]byte, error) {
			return nil, serviceErr
		})

	_, _, err := QueryItems(context.Background(), container, taskmodels.QueryInput{
		Query: "SELECT * FROM c",
	})
	assert.Equal(t, serviceErr, err, "the service error must propagate unwrapped")
}

func TestReadItemForwardsArguments(t *testing.T) {
	stored := mustMarshal(t, map[string]any{"id": "item-1", "firstname": "Olivia"})
	container := mock.NewContainer("Persons")
	container.SetItem("item-1", stored)

	opts := &azcosmos.ItemOptions{}
	item, _, err := ReadItem(context.Background(), container, taskmodels.ReadInput{
		ItemID:       "item-1",
		PartitionKey: azcosmos.NewPartitionKeyString("item-1"),
		Options:      opts,
	})
	require.NoError(t, err)
	assert.Equal(t, "Olivia", item["firstname"])

	call, ok := container.LastCall()
	require.True(t, ok)
	assert.Equal(t, "read", call.Op)
	assert.Equal(t, "item-1", call.ItemID)
	assert.Equal(t, azcosmos.NewPartitionKeyString("item-1"), call.PartitionKey)
	assert.Same(t, opts, call.ItemOptions, "options must pass through untouched")
}

func TestReadItemRequiresPartitionKey(t *testing.T) {
	container := mock.NewContainer("Persons")

	_, _, err := ReadItem(context.Background(), container, taskmodels.ReadInput{
		ItemID: "item-1",
	})
	require.ErrorIs(t, err, taskerrors.ErrMissingPartitionKey)
	assert.Empty(t, container.Calls(), "the contract failure must precede any network call")
}

func TestReadItemAllowsEmptyStringPartitionKey(t *testing.T) {
	container := mock.NewContainer("Persons")
	container.SetItem("item-1", mustMarshal(t, map[string]any{"id": "item-1"}))

	_, _, err := ReadItem(context.Background(), container, taskmodels.ReadInput{
		ItemID:       "item-1",
		PartitionKey: azcosmos.NewPartitionKeyString(""),
	})
	assert.NoError(t, err, "an empty-string key is a legal partition key value")
}

func TestReadItemNotFoundPassthrough(t *testing.T) {
	container := mock.NewContainer("Persons")

	_, _, err := ReadItem(context.Background(), container, taskmodels.ReadInput{
		ItemID:       "missing",
		PartitionKey: azcosmos.NewPartitionKeyString("missing"),
	})
	require.Error(t, err)
	assert.True(t, taskerrors.IsNotFound(err), "the 404 must surface as the service raised it")
}

func TestCreateItemAssignsID(t *testing.T) {
	container := mock.NewContainer("Persons")

	item, _, err := CreateItem(context.Background(), container, taskmodels.CreateInput{
		Body: taskmodels.Item{"firstname": "Olivia", "age": 3},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID(), "a missing id must be assigned")

	call, ok := container.LastCall()
	require.True(t, ok)
	assert.Equal(t, azcosmos.NewPartitionKeyString(item.ID()), call.PartitionKey)
}

func TestCreateItemPartitionKeyPrecedence(t *testing.T) {
	t.Run("ExplicitKeyWins", func(t *testing.T) {
		container := mock.NewContainer("Persons")
		pk := azcosmos.NewPartitionKeyString("tenant-7")

		_, _, err := CreateItem(context.Background(), container, taskmodels.CreateInput{
			Body:         taskmodels.Item{"id": "a", "partitionKey": "tenant-9"},
			PartitionKey: &pk,
		})
		require.NoError(t, err)

		call, _ := container.LastCall()
		assert.Equal(t, pk, call.PartitionKey)
	})

	t.Run("BodyFieldBeatsID", func(t *testing.T) {
		container := mock.NewContainer("Persons")

		_, _, err := CreateItem(context.Background(), container, taskmodels.CreateInput{
			Body: taskmodels.Item{"id": "a", "partitionKey": "tenant-9"},
		})
		require.NoError(t, err)

		call, _ := container.LastCall()
		assert.Equal(t, azcosmos.NewPartitionKeyString("tenant-9"), call.PartitionKey)
	})
}

func TestCreateItemConflictPassthrough(t *testing.T) {
	container := mock.NewContainer("Persons")
	body := taskmodels.Item{"id": "dup", "firstname": "Olivia"}

	_, _, err := CreateItem(context.Background(), container, taskmodels.CreateInput{Body: body})
	require.NoError(t, err)

	_, _, err = CreateItem(context.Background(), container, taskmodels.CreateInput{Body: body})
	require.Error(t, err)
	assert.True(t, taskerrors.IsConflict(err), "duplicate ids fail with the service's own conflict")
}

func TestCreateItemFallsBackToBodyWithoutEcho(t *testing.T) {
	container := mock.NewContainer("Persons").WithEchoDisabled()

	item, _, err := CreateItem(context.Background(), container, taskmodels.CreateInput{
		Body: taskmodels.Item{"id": "a", "firstname": "Olivia"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Olivia", item["firstname"], "request body stands in for an elided response")
}

func TestUpsertItemReplaces(t *testing.T) {
	container := mock.NewContainer("Persons")
	_, _, err := CreateItem(context.Background(), container, taskmodels.CreateInput{
		Body: taskmodels.Item{"id": "a", "age": 1},
	})
	require.NoError(t, err)

	item, _, err := UpsertItem(context.Background(), container, taskmodels.CreateInput{
		Body: taskmodels.Item{"id": "a", "age": 2},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, item["age"])
	assert.Equal(t, 1, container.Count())
}
