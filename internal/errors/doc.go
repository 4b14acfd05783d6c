// Package errors provides the structured error type shared by every layer of
// the deck builder.
//
// An Error carries:
//   - a Code, the transport-level classification (maps onto gRPC codes)
//   - a Message safe to show to a user
//   - an optional Reason, the domain rule that was violated
//     (for example "DUPLICATE_UNIT" or "DECK_FULL")
//   - an optional Cause and free-form Meta
//
// # Basic Usage
//
//	err := errors.NotFound("deck not found")
//	err := errors.ResourceExhausted("deck has no empty unit slot").WithReason("DECK_FULL")
//
// Wrapping keeps both the code and the reason of the wrapped error:
//
//	if _, err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load deck")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) { ... }
//	if errors.GetReason(err) == "DUPLICATE_UNIT" { ... }
//
// # Layer Guidelines
//
// Engine packages return rule violations as values with a Reason and never
// panic for expected domain conditions.
//
// Repositories return NotFound / InvalidArgument and wrap storage errors.
//
// Handlers convert with ToGRPCError; the reason travels as a
// google.rpc.ErrorInfo detail and FromGRPCError restores it on the client.
package errors
