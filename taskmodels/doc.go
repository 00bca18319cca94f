/*
Package taskmodels defines the input and data types shared by the cosmostasks
operations.

Item is the opaque record shape exchanged with Cosmos DB. QueryInput,
ReadInput and CreateInput carry the arguments of the corresponding task
operation, including the container and database references and the
pass-through SDK option structs.

Container and database references are a closed set of variants: by name,
by properties, or by pre-resolved handle. Construct them with
ContainerByName, ContainerByProperties, ContainerByHandle and the
database equivalents.
*/
package taskmodels
