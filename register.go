/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cosmostasks

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/suparena/cosmostasks/observe"
	"github.com/suparena/cosmostasks/registry"
	"github.com/suparena/cosmostasks/taskmodels"
)

// RegisterAll publishes the four operations into the task registry under
// the given prefix ("cosmosdb" when empty), so orchestration engines can
// invoke them by name with plain structured input.
func (t *Tasks) RegisterAll(prefix string) error {
	if prefix == "" {
		prefix = "cosmosdb"
	}

	entries := []registry.Task{
		{
			Name:        prefix + "." + observe.OpQueryItems,
			Description: "Return all results matching a Cosmos DB SQL query",
			Run:         t.runQueryItems,
		},
		{
			Name:        prefix + "." + observe.OpReadItem,
			Description: "Fetch one item by id and partition key",
			Run:         t.runReadItem,
		},
		{
			Name:        prefix + "." + observe.OpCreateItem,
			Description: "Create an item in a container",
			Run:         t.runCreateItem,
		},
		{
			Name:        prefix + "." + observe.OpUpsertItem,
			Description: "Create or replace an item in a container",
			Run:         t.runUpsertItem,
		},
	}
	for _, entry := range entries {
		if err := registry.Register(entry); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tasks) runQueryItems(ctx context.Context, input map[string]any) (any, error) {
	query, err := stringField(input, "query")
	if err != nil {
		return nil, err
	}
	parameters, err := queryParameters(input)
	if err != nil {
		return nil, err
	}
	return t.QueryItems(ctx, taskmodels.QueryInput{
		Query:      query,
		Parameters: parameters,
		Container:  containerField(input),
		Database:   databaseField(input),
	})
}

func (t *Tasks) runReadItem(ctx context.Context, input map[string]any) (any, error) {
	itemID, err := stringField(input, "item")
	if err != nil {
		return nil, err
	}
	pk, err := stringField(input, "partitionKey")
	if err != nil {
		return nil, err
	}
	return t.ReadItem(ctx, taskmodels.ReadInput{
		ItemID:       itemID,
		PartitionKey: azcosmos.NewPartitionKeyString(pk),
		Container:    containerField(input),
		Database:     databaseField(input),
	})
}

func (t *Tasks) runCreateItem(ctx context.Context, input map[string]any) (any, error) {
	in, err := createInput(input)
	if err != nil {
		return nil, err
	}
	return t.CreateItem(ctx, in)
}

func (t *Tasks) runUpsertItem(ctx context.Context, input map[string]any) (any, error) {
	in, err := createInput(input)
	if err != nil {
		return nil, err
	}
	return t.UpsertItem(ctx, in)
}

func createInput(input map[string]any) (taskmodels.CreateInput, error) {
	body, ok := input["body"].(map[string]any)
	if !ok {
		return taskmodels.CreateInput{}, fmt.Errorf("input field %q must be an object", "body")
	}
	in := taskmodels.CreateInput{
		Body:      taskmodels.Item(body),
		Container: containerField(input),
		Database:  databaseField(input),
	}
	if pk, ok := input["partitionKey"].(string); ok && pk != "" {
		key := azcosmos.NewPartitionKeyString(pk)
		in.PartitionKey = &key
	}
	return in, nil
}

func containerField(input map[string]any) taskmodels.ContainerRef {
	name, _ := input["container"].(string)
	return taskmodels.ContainerByName(name)
}

func databaseField(input map[string]any) taskmodels.DatabaseRef {
	name, _ := input["database"].(string)
	return taskmodels.DatabaseByName(name)
}

func stringField(input map[string]any, key string) (string, error) {
	value, ok := input[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("input field %q is required", key)
	}
	return value, nil
}

// queryParameters accepts the plain-data shapes an engine payload carries:
// a list of {"name": ..., "value": ...} objects.
func queryParameters(input map[string]any) ([]azcosmos.QueryParameter, error) {
	raw, ok := input["parameters"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("input field %q must be a list", "parameters")
	}
	parameters := make([]azcosmos.QueryParameter, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("query parameter entries must be objects")
		}
		name, _ := m["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("query parameter entries require a name")
		}
		parameters = append(parameters, azcosmos.QueryParameter{Name: name, Value: m["value"]})
	}
	return parameters, nil
}
