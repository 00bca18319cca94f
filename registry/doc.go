/*
Package registry exposes the task operations to orchestration engines by
name.

A workflow engine that dispatches units of work as (name, plain-data input)
pairs can discover and invoke the Cosmos DB operations without linking
against their typed signatures:

	task, err := registry.Get("cosmosdb.query_items")
	if err != nil { ... }
	out, err := task.Run(ctx, map[string]any{
	    "query":     "SELECT * FROM c where c.age >= @age",
	    "container": "Persons",
	    "database":  "SampleDB",
	    "parameters": []any{
	        map[string]any{"name": "@age", "value": 44},
	    },
	})

Tasks.RegisterAll on the root package populates the registry with the four
operations under a caller-chosen prefix.

The registry is thread-safe and should be populated during initialization.
*/
package registry
