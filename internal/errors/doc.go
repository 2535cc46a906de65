// Package errors provides the structured error type used across dex-api.
//
// Errors carry a code, a message, an optional cause and metadata:
//
//	err := errors.NotFound("species not found").
//	    WithMeta("name", name)
//
// Wrapping keeps the code, kind and metadata of the wrapped error:
//
//	if err := store.Load(); err != nil {
//	    return errors.Wrap(err, "failed to load cache")
//	}
//
// # Catalog errors
//
// Everything that crosses the catalog network boundary is a catalog error.
// Its Kind field says which of three failures it was, and each kind has a
// matching code for the gRPC boundary:
//
//   - NotFound (CodeNotFound): the catalog has no such resource
//   - Network (CodeUnavailable, or CodeDeadlineExceeded on timeout): the
//     request could not be completed
//   - Decode (CodeDataLoss): the response body could not be parsed
//
// Use CatalogKindOf, IsNotFound, IsNetwork and IsDecode to branch on them.
//
// # Validation
//
// Config types validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
//
// # gRPC
//
// Handlers convert with ToGRPCError; clients convert back with FromGRPCError.
package errors
