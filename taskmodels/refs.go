/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package taskmodels

import (
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/suparena/cosmostasks/cosmosapi"
)

// ContainerRef identifies a container by name, by its properties, or by a
// pre-resolved handle. The zero value is unresolvable.
type ContainerRef struct {
	name   string
	props  *azcosmos.ContainerProperties
	handle cosmosapi.Container
}

// ContainerByName references a container by its ID.
func ContainerByName(name string) ContainerRef {
	return ContainerRef{name: name}
}

// ContainerByProperties references a container through a properties bag,
// typically obtained from a prior read of the container.
func ContainerByProperties(props azcosmos.ContainerProperties) ContainerRef {
	return ContainerRef{props: &props}
}

// ContainerByHandle references a container through an already resolved
// handle, skipping name resolution entirely.
func ContainerByHandle(c cosmosapi.Container) ContainerRef {
	return ContainerRef{handle: c}
}

// Name returns the container ID carried by the reference, or "" for a
// zero reference. A by-handle reference reports the handle's ID.
func (r ContainerRef) Name() string {
	switch {
	case r.handle != nil:
		return r.handle.ID()
	case r.props != nil:
		return r.props.ID
	default:
		return r.name
	}
}

// Handle returns the pre-resolved handle, if the reference carries one.
func (r ContainerRef) Handle() (cosmosapi.Container, bool) {
	return r.handle, r.handle != nil
}

// IsZero reports whether the reference carries nothing resolvable.
func (r ContainerRef) IsZero() bool {
	return r.name == "" && r.props == nil && r.handle == nil
}

// DatabaseRef identifies a database by name, by its properties, or by a
// pre-resolved handle.
type DatabaseRef struct {
	name   string
	props  *azcosmos.DatabaseProperties
	handle cosmosapi.Database
}

// DatabaseByName references a database by its ID.
func DatabaseByName(name string) DatabaseRef {
	return DatabaseRef{name: name}
}

// DatabaseByProperties references a database through a properties bag.
func DatabaseByProperties(props azcosmos.DatabaseProperties) DatabaseRef {
	return DatabaseRef{props: &props}
}

// DatabaseByHandle references a database through an already resolved handle.
func DatabaseByHandle(d cosmosapi.Database) DatabaseRef {
	return DatabaseRef{handle: d}
}

// Name returns the database ID carried by the reference, or "" for a
// zero reference.
func (r DatabaseRef) Name() string {
	switch {
	case r.handle != nil:
		return r.handle.ID()
	case r.props != nil:
		return r.props.ID
	default:
		return r.name
	}
}

// Handle returns the pre-resolved handle, if the reference carries one.
func (r DatabaseRef) Handle() (cosmosapi.Database, bool) {
	return r.handle, r.handle != nil
}

// IsZero reports whether the reference carries nothing resolvable.
func (r DatabaseRef) IsZero() bool {
	return r.name == "" && r.props == nil && r.handle == nil
}
