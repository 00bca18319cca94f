//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cosmostasks_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/joho/godotenv"

	"github.com/suparena/cosmostasks"
	"github.com/suparena/cosmostasks/credentials"
	"github.com/suparena/cosmostasks/errors"
	"github.com/suparena/cosmostasks/taskmodels"
)

func setupTasks(t *testing.T) (*cosmostasks.Tasks, taskmodels.ContainerRef, taskmodels.DatabaseRef) {
	_ = godotenv.Load()

	database := os.Getenv("COSMOS_TEST_DATABASE")
	container := os.Getenv("COSMOS_TEST_CONTAINER")
	if database == "" || container == "" {
		t.Skip("COSMOS_TEST_DATABASE / COSMOS_TEST_CONTAINER not set, skipping integration test")
	}

	creds, err := credentials.FromEnv()
	if err != nil {
		t.Skipf("no account credentials in environment: %v", err)
	}

	return cosmostasks.New(creds),
		taskmodels.ContainerByName(container),
		taskmodels.DatabaseByName(database)
}

func TestIntegrationCreateReadDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	tasks, container, database := setupTasks(t)

	id := fmt.Sprintf("test-%d", time.Now().UnixNano())

	// Create
	created, err := tasks.CreateItem(ctx, taskmodels.CreateInput{
		Body: taskmodels.Item{
			"id":        id,
			"firstname": "Integration",
			"age":       1,
			"createdAt": time.Now().UTC().Format(time.RFC3339),
		},
		Container: container,
		Database:  database,
	})
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}
	if created.ID() != id {
		t.Errorf("Created item id doesn't match: got %q, want %q", created.ID(), id)
	}

	// Creating the same id again must conflict.
	_, err = tasks.CreateItem(ctx, taskmodels.CreateInput{
		Body:      taskmodels.Item{"id": id},
		Container: container,
		Database:  database,
	})
	if !errors.IsConflict(err) {
		t.Errorf("Expected a conflict error, got: %v", err)
	}

	// Read it back
	read, err := tasks.ReadItem(ctx, taskmodels.ReadInput{
		ItemID:       id,
		PartitionKey: azcosmos.NewPartitionKeyString(id),
		Container:    container,
		Database:     database,
	})
	if err != nil {
		t.Fatalf("Failed to read item: %v", err)
	}
	if read["firstname"] != "Integration" {
		t.Errorf("Read item doesn't match: got %+v", read)
	}

	// Reading an absent id must report not found.
	_, err = tasks.ReadItem(ctx, taskmodels.ReadInput{
		ItemID:       id + "-absent",
		PartitionKey: azcosmos.NewPartitionKeyString(id + "-absent"),
		Container:    container,
		Database:     database,
	})
	if !errors.IsNotFound(err) {
		t.Errorf("Expected not found error, got: %v", err)
	}
}

func TestIntegrationQueryItems(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	tasks, container, database := setupTasks(t)

	marker := fmt.Sprintf("query-%d", time.Now().UnixNano())

	// Seed a few items sharing a marker value
	for i := 0; i < 3; i++ {
		_, err := tasks.UpsertItem(ctx, taskmodels.CreateInput{
			Body: taskmodels.Item{
				"id":     fmt.Sprintf("%s-%d", marker, i),
				"marker": marker,
				"age":    40 + i,
			},
			Container: container,
			Database:  database,
		})
		if err != nil {
			t.Fatalf("Failed to upsert item: %v", err)
		}
	}

	items, err := tasks.QueryItems(ctx, taskmodels.QueryInput{
		Query: "SELECT * FROM c WHERE c.marker = @marker AND c.age >= @age",
		Parameters: []azcosmos.QueryParameter{
			{Name: "@marker", Value: marker},
			{Name: "@age", Value: 41},
		},
		Container: container,
		Database:  database,
	})
	if err != nil {
		t.Fatalf("Failed to query items: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 results, got %d", len(items))
	}
}
