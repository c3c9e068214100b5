// Package errors provides coded errors for rpg-grid.
//
// Placement and layout outcomes that are expected to fail often (an occupied
// cell, a constraint violation, a search that found no free cell) are NOT
// reported through this package; they are typed results in the placement and
// layout packages. This package covers conditions that abort an operation:
// malformed floorplans, invalid templates, missing dependencies, unknown
// sessions.
//
// Creating errors:
//
//	err := errors.NotFoundf("template %q not found", id)
//	err := errors.InvalidArgument("floorplan has no page record")
//
// Adding metadata:
//
//	err := errors.NotFound("session not found").
//	    WithMeta("session_id", sessionID)
//
// Wrapping errors keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save snapshot")
//	}
//
// Config validation:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidatePositive("width", cfg.Width, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Handlers convert with ToGRPCError before returning to gRPC callers, and
// clients convert back with FromGRPCError.
package errors
