// Package errors provides the coded error type used between the stores, the
// orchestrators and the CLI.
//
// Stores report NotFound and AlreadyExists. Orchestrators report InvalidArgument
// for malformed requests and FailedPrecondition for actions the state of the run
// forbids, such as choosing while stat points are pending. Wrap keeps the code
// of the error it wraps, so the CLI can pick an exit status and print the broken
// rule with Reason:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrapf(err, "failed to get save %s", id)
//	}
//
// Config validation collects every problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("BundleID", c.BundleID, vb)
//	return vb.Build()
package errors
