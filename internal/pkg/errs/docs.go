// Package errs provides the typed errors shared by the label service.
//
// Every error type comes with a sentinel (ErrValueIsRequired and friends),
// a constructor with and without a cause, and an Unwrap method that exposes
// both the sentinel and the cause, so callers can match the broad category
// with errors.Is and the concrete details with errors.As:
//
//	var notAllowed *errs.ValueIsNotAllowedError
//	if errors.As(err, &notAllowed) {
//	    // notAllowed.Allowed lists the accepted values
//	}
//
// Domain packages pass their own sentinels as the cause, which keeps
// checks such as errors.Is(err, parcel.ErrInvalidDepoCode) working.
package errs
