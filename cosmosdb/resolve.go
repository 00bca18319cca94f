/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cosmosdb

import (
	"github.com/suparena/cosmostasks/cosmosapi"
	taskerrors "github.com/suparena/cosmostasks/errors"
	"github.com/suparena/cosmostasks/taskmodels"
)

// ResolveContainer produces a container-scoped handle from the reference
// pair. A by-handle container reference wins outright; otherwise the
// database resolves first and the container is looked up by name within it.
// Handle construction is whatever the SDK does; no network call is implied.
func ResolveContainer(client cosmosapi.Client, container taskmodels.ContainerRef, database taskmodels.DatabaseRef) (cosmosapi.Container, error) {
	if handle, ok := container.Handle(); ok {
		return handle, nil
	}
	if container.IsZero() {
		return nil, taskerrors.NewUnresolvedRefError("container")
	}

	db, err := ResolveDatabase(client, database)
	if err != nil {
		return nil, err
	}
	return db.NewContainer(container.Name())
}

// ResolveDatabase produces a database-scoped handle from the reference.
func ResolveDatabase(client cosmosapi.Client, database taskmodels.DatabaseRef) (cosmosapi.Database, error) {
	if handle, ok := database.Handle(); ok {
		return handle, nil
	}
	if database.IsZero() {
		return nil, taskerrors.NewUnresolvedRefError("database")
	}
	return client.NewDatabase(database.Name())
}
