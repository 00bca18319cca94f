/*
Package errors provides the sentinel errors of the cosmostasks contract and
classification helpers for raw service errors.

The task operations propagate Cosmos DB errors unmodified; this package
never rewrites them. The Is* helpers inspect the azcore.ResponseError
status code so callers can branch on the service outcome:

	items, err := tasks.QueryItems(ctx, in)
	if err != nil {
	    if errors.IsThrottled(err) {
	        // leave the retry to the orchestration engine's policy
	        return nil, err
	    }
	    return nil, err
	}

Sentinels such as ErrMissingPartitionKey cover this layer's own argument
contract and are checked with the standard errors.Is().
*/
package errors
