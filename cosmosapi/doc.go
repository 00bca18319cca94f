/*
Package cosmosapi defines the narrow interfaces the task layer uses to talk
to Cosmos DB.

The interfaces deliberately mirror the azcosmos client surface so that the
production adapter adds nothing: every argument forwards to the SDK exactly
as received. The seam exists so tests can substitute the mock package
without a live account.

Implementations:
  - cosmosdb: adapter over *azcosmos.Client (the real SDK)
  - cosmosapi/mock: in-memory substitute for testing
*/
package cosmosapi
