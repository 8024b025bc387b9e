// Package errors provides the error handling used throughout rpg-sheet.
//
// Errors carry two classifications:
//   - a Code, the coarse transport-level category (NOT_FOUND, INVALID_ARGUMENT,
//     ...) that maps onto gRPC status codes
//   - a Kind, the position in the character-sheet failure hierarchy
//     (generic → trait → trait_not_found, ...)
//
// Every error also has a short Message for a headline and an optional
// Description rendered from the failing context.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.TraitNotFound("Strength")
//	err := errors.FileNotOpened(path, ioErr)
//	err := errors.InvalidArgumentf("invalid dot value: %d", value)
//
// Wrapping errors keeps code, kind, and description:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// # Error Checking
//
// By code:
//
//	if errors.IsNotFound(err) { ... }
//
// By kind, matching any descendant:
//
//	if errors.IsKind(err, errors.KindTrait) { ... }
//
// For display:
//
//	msg, desc := errors.Present(err)
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Store == nil {
//	    vb.RequiredField("Store")
//	}
//	return vb.Build()
package errors
