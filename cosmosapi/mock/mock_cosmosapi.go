/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides in-memory implementations of the cosmosapi
// interfaces for testing
package mock

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/suparena/cosmostasks/cosmosapi"
)

// Call records one forwarded operation with exactly the arguments received.
type Call struct {
	Op           string // "query", "read", "create", "upsert"
	Query        string
	PartitionKey azcosmos.PartitionKey
	ItemID       string
	Body         []byte
	QueryOptions *azcosmos.QueryOptions
	ItemOptions  *azcosmos.ItemOptions
}

// Client is a mock implementation of cosmosapi.Client.
type Client struct {
	mu        sync.Mutex
	databases map[string]*Database
	newDBErr  error
}

// NewClient creates a new mock Client.
func NewClient() *Client {
	return &Client{databases: make(map[string]*Database)}
}

// WithDatabase registers a prepared database on the client.
func (c *Client) WithDatabase(db *Database) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.databases[db.id] = db
	return c
}

// WithNewDatabaseError makes NewDatabase return an error.
func (c *Client) WithNewDatabaseError(err error) *Client {
	c.newDBErr = err
	return c
}

// NewDatabase returns the registered database, creating an empty one on
// first use so tests only need to prepare what they care about.
func (c *Client) NewDatabase(id string) (cosmosapi.Database, error) {
	if c.newDBErr != nil {
		return nil, c.newDBErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	db, ok := c.databases[id]
	if !ok {
		db = NewDatabase(id)
		c.databases[id] = db
	}
	return db, nil
}

// Database is a mock implementation of cosmosapi.Database.
type Database struct {
	mu         sync.Mutex
	id         string
	containers map[string]*Container
	newCtErr   error
}

// NewDatabase creates a new mock Database.
func NewDatabase(id string) *Database {
	return &Database{id: id, containers: make(map[string]*Container)}
}

// WithContainer registers a prepared container on the database.
func (d *Database) WithContainer(ct *Container) *Database {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.containers[ct.id] = ct
	return d
}

// WithNewContainerError makes NewContainer return an error.
func (d *Database) WithNewContainerError(err error) *Database {
	d.newCtErr = err
	return d
}

func (d *Database) ID() string { return d.id }

// NewContainer returns the registered container, creating an empty one on
// first use.
func (d *Database) NewContainer(id string) (cosmosapi.Container, error) {
	if d.newCtErr != nil {
		return nil, d.newCtErr
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	ct, ok := d.containers[id]
	if !ok {
		ct = NewContainer(id)
		d.containers[id] = ct
	}
	return ct, nil
}

// Container is a mock implementation of cosmosapi.Container. By default it
// behaves like a tiny in-memory container keyed by item id; the With*
// functions override individual operations for a test.
type Container struct {
	mu    sync.RWMutex
	id    string
	items map[string][]byte

	queryFunc func(query string, pk azcosmos.PartitionKey, o *azcosmos.QueryOptions) ([][]byte, error)
	pages     [][][]byte
	noEcho    bool
	readErr   error
	createErr error
	upsertErr error

	calls []Call
}

// NewContainer creates a new mock Container.
func NewContainer(id string) *Container {
	return &Container{id: id, items: make(map[string][]byte)}
}

// WithQueryFunc sets a custom query function for testing.
func (m *Container) WithQueryFunc(f func(query string, pk azcosmos.PartitionKey, o *azcosmos.QueryOptions) ([][]byte, error)) *Container {
	m.queryFunc = f
	return m
}

// WithPages makes queries serve the given fixed pages in order, so tests
// can exercise multi-page draining.
func (m *Container) WithPages(pages ...[][]byte) *Container {
	m.pages = pages
	return m
}

// WithEchoDisabled makes write responses carry no payload, the way the
// service behaves when content responses are disabled.
func (m *Container) WithEchoDisabled() *Container {
	m.noEcho = true
	return m
}

// WithReadError makes ReadItem return an error.
func (m *Container) WithReadError(err error) *Container {
	m.readErr = err
	return m
}

// WithCreateError makes CreateItem return an error.
func (m *Container) WithCreateError(err error) *Container {
	m.createErr = err
	return m
}

// WithUpsertError makes UpsertItem return an error.
func (m *Container) WithUpsertError(err error) *Container {
	m.upsertErr = err
	return m
}

func (m *Container) ID() string { return m.id }

// NewQueryItemsPager returns a single-page pager over either the configured
// query function's result or everything stored.
func (m *Container) NewQueryItemsPager(query string, partitionKey azcosmos.PartitionKey, o *azcosmos.QueryOptions) cosmosapi.ItemsPager {
	m.record(Call{Op: "query", Query: query, PartitionKey: partitionKey, QueryOptions: o})

	if m.queryFunc != nil {
		items, err := m.queryFunc(query, partitionKey, o)
		if err != nil {
			return &Pager{err: err}
		}
		return &Pager{pages: [][][]byte{items}}
	}
	if m.pages != nil {
		return &Pager{pages: m.pages}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	page := make([][]byte, 0, len(m.items))
	for _, raw := range m.items {
		page = append(page, raw)
	}
	return &Pager{pages: [][][]byte{page}}
}

// ReadItem returns the stored item, or a 404 response error.
func (m *Container) ReadItem(ctx context.Context, partitionKey azcosmos.PartitionKey, itemID string, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error) {
	m.record(Call{Op: "read", PartitionKey: partitionKey, ItemID: itemID, ItemOptions: o})

	if m.readErr != nil {
		return azcosmos.ItemResponse{}, m.readErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.items[itemID]
	if !ok {
		return azcosmos.ItemResponse{}, &azcore.ResponseError{StatusCode: 404, ErrorCode: "NotFound"}
	}
	return azcosmos.ItemResponse{Value: raw}, nil
}

// CreateItem stores the item, or returns a 409 response error when the id
// already exists.
func (m *Container) CreateItem(ctx context.Context, partitionKey azcosmos.PartitionKey, item []byte, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error) {
	m.record(Call{Op: "create", PartitionKey: partitionKey, Body: item, ItemOptions: o})

	if m.createErr != nil {
		return azcosmos.ItemResponse{}, m.createErr
	}

	id := itemIDOf(item)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.items[id]; exists {
		return azcosmos.ItemResponse{}, &azcore.ResponseError{StatusCode: 409, ErrorCode: "Conflict"}
	}
	m.items[id] = item
	return m.writeResponse(item), nil
}

// UpsertItem stores the item unconditionally.
func (m *Container) UpsertItem(ctx context.Context, partitionKey azcosmos.PartitionKey, item []byte, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error) {
	m.record(Call{Op: "upsert", PartitionKey: partitionKey, Body: item, ItemOptions: o})

	if m.upsertErr != nil {
		return azcosmos.ItemResponse{}, m.upsertErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[itemIDOf(item)] = item
	return m.writeResponse(item), nil
}

func (m *Container) writeResponse(item []byte) azcosmos.ItemResponse {
	if m.noEcho {
		return azcosmos.ItemResponse{}
	}
	return azcosmos.ItemResponse{Value: item}
}

// Helper methods for testing

// SetItem stores a raw payload under the given id.
func (m *Container) SetItem(id string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = raw
}

// Count returns the number of stored items.
func (m *Container) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Calls returns a copy of the recorded calls in order.
func (m *Container) Calls() []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// LastCall returns the most recent recorded call.
func (m *Container) LastCall() (Call, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.calls) == 0 {
		return Call{}, false
	}
	return m.calls[len(m.calls)-1], true
}

func (m *Container) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

// Pager is a mock cosmosapi.ItemsPager serving fixed pages.
type Pager struct {
	pages [][][]byte
	next  int
	err   error
}

// NewPager creates a pager serving the given pages in order.
func NewPager(pages ...[][]byte) *Pager {
	return &Pager{pages: pages}
}

// WithPageError makes NextPage fail once the prepared pages are exhausted.
func (p *Pager) WithPageError(err error) *Pager {
	p.err = err
	return p
}

func (p *Pager) More() bool {
	return p.next < len(p.pages) || (p.err != nil && p.next == len(p.pages))
}

func (p *Pager) NextPage(ctx context.Context) (azcosmos.QueryItemsResponse, error) {
	if p.next >= len(p.pages) {
		if p.err != nil {
			err := p.err
			p.err = nil
			return azcosmos.QueryItemsResponse{}, err
		}
		return azcosmos.QueryItemsResponse{}, &azcore.ResponseError{StatusCode: 400, ErrorCode: "BadRequest"}
	}
	page := p.pages[p.next]
	p.next++
	return azcosmos.QueryItemsResponse{Items: page}, nil
}

func itemIDOf(raw []byte) string {
	// Falls back to the raw payload as the key so tests without ids still work.
	var env struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.ID != "" {
		return env.ID
	}
	return string(raw)
}
