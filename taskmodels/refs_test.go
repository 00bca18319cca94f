/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package taskmodels_test

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/suparena/cosmostasks/cosmosapi/mock"
	"github.com/suparena/cosmostasks/taskmodels"
)

func TestContainerRefVariants(t *testing.T) {
	byName := taskmodels.ContainerByName("Persons")
	if byName.Name() != "Persons" {
		t.Errorf("expected Persons, got %q", byName.Name())
	}
	if _, ok := byName.Handle(); ok {
		t.Error("a by-name reference must not carry a handle")
	}

	byProps := taskmodels.ContainerByProperties(azcosmos.ContainerProperties{ID: "Persons"})
	if byProps.Name() != "Persons" {
		t.Errorf("expected Persons, got %q", byProps.Name())
	}

	handle := mock.NewContainer("Persons")
	byHandle := taskmodels.ContainerByHandle(handle)
	if byHandle.Name() != "Persons" {
		t.Errorf("expected the handle's ID, got %q", byHandle.Name())
	}
	got, ok := byHandle.Handle()
	if !ok || got != handle {
		t.Error("expected the same handle back")
	}
}

func TestContainerRefIsZero(t *testing.T) {
	if !(taskmodels.ContainerRef{}).IsZero() {
		t.Error("zero value must report IsZero")
	}
	if taskmodels.ContainerByName("Persons").IsZero() {
		t.Error("a by-name reference is resolvable")
	}
}

func TestDatabaseRefVariants(t *testing.T) {
	if got := taskmodels.DatabaseByName("SampleDB").Name(); got != "SampleDB" {
		t.Errorf("expected SampleDB, got %q", got)
	}
	if got := taskmodels.DatabaseByProperties(azcosmos.DatabaseProperties{ID: "SampleDB"}).Name(); got != "SampleDB" {
		t.Errorf("expected SampleDB, got %q", got)
	}

	handle := mock.NewDatabase("SampleDB")
	ref := taskmodels.DatabaseByHandle(handle)
	if got, ok := ref.Handle(); !ok || got != handle {
		t.Error("expected the same handle back")
	}
	if (taskmodels.DatabaseRef{}).IsZero() != true {
		t.Error("zero value must report IsZero")
	}
}
