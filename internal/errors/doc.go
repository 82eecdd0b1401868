// Package errors provides structured error handling for the battle API.
//
// Errors carry a code, a message, optional metadata, and an optional cause.
// Codes map directly to HTTP statuses at the REST boundary, so the layers
// below the handlers never reason about status codes.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("battle not found")
//	err := errors.InvalidArgumentf("unknown enemy type: %s", enemyType)
//
// Adding metadata:
//
//	err := errors.FailedPrecondition("character already has an ongoing battle").
//	    WithMeta("battleId", battleID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get battle")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // handle missing resource
//	}
//
// # Layer Guidelines
//
// Repository layer returns NotFound/AlreadyExists/Aborted and wraps storage
// failures. Orchestrator layer validates inputs (InvalidArgument), checks
// battle-flow preconditions (FailedPrecondition), and wraps repository errors
// with business context. Handlers convert codes to HTTP statuses via
// Code.HTTPStatus and surface metadata in the response body.
package errors
