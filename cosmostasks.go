/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cosmostasks

import (
	"context"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/suparena/cosmostasks/cosmosapi"
	"github.com/suparena/cosmostasks/cosmosdb"
	"github.com/suparena/cosmostasks/credentials"
	"github.com/suparena/cosmostasks/observe"
	"github.com/suparena/cosmostasks/taskmodels"
	"github.com/suparena/cosmostasks/worker"
)

var (
	sharedPool     *worker.Pool
	sharedPoolOnce sync.Once
)

// SharedPool returns the process-wide worker pool used when no pool is
// configured explicitly.
func SharedPool() *worker.Pool {
	sharedPoolOnce.Do(func() {
		sharedPool = worker.NewPool()
	})
	return sharedPool
}

// Tasks binds credentials, the observability hook, and the worker pool into
// the four task operations. The zero value is not usable; construct with
// New or NewWithClient.
type Tasks struct {
	clientFn func() (cosmosapi.Client, error)
	hook     observe.Hook
	pool     *worker.Pool

	clientOpts       *azcosmos.ClientOptions
	defaultDatabase  string
	defaultContainer string
}

// Option configures a Tasks instance.
type Option func(*Tasks)

// WithHook sets the pre/post-call hook. Defaults to a no-op.
func WithHook(h observe.Hook) Option {
	return func(t *Tasks) {
		if h != nil {
			t.hook = h
		}
	}
}

// WithPool sets the worker pool blocking calls run on. Defaults to the
// shared pool.
func WithPool(p *worker.Pool) Option {
	return func(t *Tasks) {
		if p != nil {
			t.pool = p
		}
	}
}

// WithClientOptions passes SDK client options through to credential
// resolution.
func WithClientOptions(o *azcosmos.ClientOptions) Option {
	return func(t *Tasks) { t.clientOpts = o }
}

// WithDefaults sets the database and container used when an input carries
// zero references.
func WithDefaults(database, container string) Option {
	return func(t *Tasks) {
		t.defaultDatabase = database
		t.defaultContainer = container
	}
}

// New creates a Tasks instance over the given credentials. Client
// construction is deferred to each call; the provider is never mutated.
func New(creds credentials.Provider, opts ...Option) *Tasks {
	t := newTasks(opts)
	t.clientFn = func() (cosmosapi.Client, error) {
		client, err := creds.Client(t.clientOpts)
		if err != nil {
			return nil, err
		}
		return cosmosdb.WrapClient(client), nil
	}
	return t
}

// NewWithClient creates a Tasks instance over an already constructed
// account client. Used by tests and by callers that manage the client
// themselves.
func NewWithClient(client cosmosapi.Client, opts ...Option) *Tasks {
	t := newTasks(opts)
	t.clientFn = func() (cosmosapi.Client, error) {
		return client, nil
	}
	return t
}

func newTasks(opts []Option) *Tasks {
	t := &Tasks{hook: observe.NopHook{}}
	for _, opt := range opts {
		opt(t)
	}
	if t.pool == nil {
		t.pool = SharedPool()
	}
	return t
}

// QueryItems returns all results matching the given query, parameters
// forwarded as-is. The blocking call runs on the worker pool; the SDK's
// error, if any, propagates unmodified.
func (t *Tasks) QueryItems(ctx context.Context, in taskmodels.QueryInput) ([]taskmodels.Item, error) {
	in.Container, in.Database = t.applyDefaults(in.Container, in.Database)

	ev := observe.Event{
		Op:        observe.OpQueryItems,
		Database:  in.Database.Name(),
		Container: in.Container.Name(),
	}
	t.hook.Before(ctx, ev)
	start := time.Now()

	type result struct {
		items []taskmodels.Item
		meta  cosmosdb.Meta
	}
	res, err := offloadCall(ctx, t, in.Container, in.Database, func(container cosmosapi.Container) (result, error) {
		items, meta, err := cosmosdb.QueryItems(ctx, container, in)
		return result{items: items, meta: meta}, err
	})

	t.after(ctx, ev, start, res.meta, err)
	if err != nil {
		return nil, err
	}
	return res.items, nil
}

// ReadItem fetches exactly one item by id and partition key. The partition
// key is required by contract.
func (t *Tasks) ReadItem(ctx context.Context, in taskmodels.ReadInput) (taskmodels.Item, error) {
	in.Container, in.Database = t.applyDefaults(in.Container, in.Database)

	ev := observe.Event{
		Op:        observe.OpReadItem,
		Database:  in.Database.Name(),
		Container: in.Container.Name(),
		ItemID:    in.ItemID,
	}
	t.hook.Before(ctx, ev)
	start := time.Now()

	res, err := offloadCall(ctx, t, in.Container, in.Database, func(container cosmosapi.Container) (itemResult, error) {
		item, meta, err := cosmosdb.ReadItem(ctx, container, in)
		return itemResult{item: item, meta: meta}, err
	})

	t.after(ctx, ev, start, res.meta, err)
	if err != nil {
		return nil, err
	}
	return res.item, nil
}

// CreateItem creates a new record in the resolved container and returns it
// as stored. Duplicate ids fail with the service's own conflict error.
func (t *Tasks) CreateItem(ctx context.Context, in taskmodels.CreateInput) (taskmodels.Item, error) {
	return t.write(ctx, observe.OpCreateItem, cosmosdb.CreateItem, in)
}

// UpsertItem creates or replaces the record identified by the body's id.
func (t *Tasks) UpsertItem(ctx context.Context, in taskmodels.CreateInput) (taskmodels.Item, error) {
	return t.write(ctx, observe.OpUpsertItem, cosmosdb.UpsertItem, in)
}

type itemResult struct {
	item taskmodels.Item
	meta cosmosdb.Meta
}

type writeOp func(ctx context.Context, container cosmosapi.Container, in taskmodels.CreateInput) (taskmodels.Item, cosmosdb.Meta, error)

func (t *Tasks) write(ctx context.Context, op string, write writeOp, in taskmodels.CreateInput) (taskmodels.Item, error) {
	in.Container, in.Database = t.applyDefaults(in.Container, in.Database)

	ev := observe.Event{
		Op:        op,
		Database:  in.Database.Name(),
		Container: in.Container.Name(),
		ItemID:    in.Body.ID(),
	}
	t.hook.Before(ctx, ev)
	start := time.Now()

	res, err := offloadCall(ctx, t, in.Container, in.Database, func(container cosmosapi.Container) (itemResult, error) {
		item, meta, err := write(ctx, container, in)
		return itemResult{item: item, meta: meta}, err
	})

	if err == nil {
		ev.ItemID = res.item.ID()
	}
	t.after(ctx, ev, start, res.meta, err)
	if err != nil {
		return nil, err
	}
	return res.item, nil
}

// offloadCall resolves the container (re-resolved on every call, never
// cached) and runs fn on the worker pool, suspending the caller until it
// completes.
func offloadCall[T any](ctx context.Context, t *Tasks, container taskmodels.ContainerRef, database taskmodels.DatabaseRef, fn func(cosmosapi.Container) (T, error)) (T, error) {
	var zero T
	handle, err := t.resolveContainer(container, database)
	if err != nil {
		return zero, err
	}
	return worker.Run(ctx, t.pool, func() (T, error) {
		return fn(handle)
	})
}

func (t *Tasks) resolveContainer(container taskmodels.ContainerRef, database taskmodels.DatabaseRef) (cosmosapi.Container, error) {
	if handle, ok := container.Handle(); ok {
		return handle, nil
	}
	client, err := t.clientFn()
	if err != nil {
		return nil, err
	}
	return cosmosdb.ResolveContainer(client, container, database)
}

func (t *Tasks) applyDefaults(container taskmodels.ContainerRef, database taskmodels.DatabaseRef) (taskmodels.ContainerRef, taskmodels.DatabaseRef) {
	if container.IsZero() && t.defaultContainer != "" {
		container = taskmodels.ContainerByName(t.defaultContainer)
	}
	if database.IsZero() && t.defaultDatabase != "" {
		database = taskmodels.DatabaseByName(t.defaultDatabase)
	}
	return container, database
}

func (t *Tasks) after(ctx context.Context, ev observe.Event, start time.Time, meta cosmosdb.Meta, err error) {
	ev.Err = err
	ev.Duration = time.Since(start)
	ev.RequestCharge = meta.RequestCharge
	ev.ActivityID = meta.ActivityID
	t.hook.After(ctx, ev)
}
