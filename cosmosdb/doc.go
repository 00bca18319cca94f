/*
Package cosmosdb implements the Cosmos DB forwarding operations behind the
cosmostasks task wrappers.

Every operation is a single-shot forward-and-return: resolve a container
handle, call the SDK, hand back whatever it produced. Service errors
propagate to the caller exactly as the SDK raised them; this package adds
no retries, no caching, and no error translation.

ResolveContainer dispatches the closed set of reference variants (by name,
by properties, by handle) defined in the taskmodels package. A by-handle
container reference short-circuits database resolution entirely.
*/
package cosmosdb
