// Package errors provides the structured error type shared by every layer of
// the wizard service.
//
// Errors carry a Code, a user-facing Message, an optional Cause and Meta.
// Codes map onto HTTP statuses through Code.HTTPStatus and are rendered by
// WriteHTTPError as:
//
//	{"code": "NOT_FOUND", "message": "session not found", "meta": {...}}
//
// # Creating and wrapping
//
//	err := errors.NotFoundf("race %s not found", id)
//	err := errors.Unavailable("reference data unavailable").AsRetryable()
//	return errors.Wrap(err, "failed to load catalogs")
//
// Wrap keeps the code and metadata of the wrapped Error; wrapping a plain
// error yields INTERNAL. WrapWithCode changes the code.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines: repositories return NotFound/AlreadyExists with IDs in
// metadata; orchestrators validate inputs (InvalidArgument) and preconditions
// (FailedPrecondition); handlers only translate with WriteHTTPError.
package errors
