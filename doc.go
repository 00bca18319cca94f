/*
Package cosmostasks provides thin task wrappers exposing Azure Cosmos DB
client operations to workflow-orchestration callers.

Each operation is a 1:1 forwarding call into the azcosmos SDK: resolve a
container handle from credentials and container/database references, run
the blocking call on a worker pool, and return whatever the SDK produced.
There is no retry logic, no caching, and no error translation; the
orchestration framework's own failure policy governs what happens to a
failed task.

Basic Usage:

	creds := credentials.KeyCredentials{Endpoint: endpoint, Key: key}
	tasks := cosmostasks.New(creds,
	    cosmostasks.WithHook(observe.NewSlogHook(nil)),
	)

	items, err := tasks.QueryItems(ctx, taskmodels.QueryInput{
	    Query:     "SELECT * FROM c where c.age >= @age",
	    Parameters: []azcosmos.QueryParameter{{Name: "@age", Value: 44}},
	    Container: taskmodels.ContainerByName("Persons"),
	    Database:  taskmodels.DatabaseByName("SampleDB"),
	})

Container and database references accept a name, a properties bag, or a
pre-resolved handle. Typed access is available through Bind:

	persons := cosmostasks.Bind[Person](tasks,
	    taskmodels.ContainerByName("Persons"),
	    taskmodels.DatabaseByName("SampleDB"))
	result, err := persons.Query(ctx, query, params...)

For engines that dispatch work by name, RegisterAll publishes the four
operations into the registry package.
*/
package cosmostasks
