// Package errs collects the sentinel errors returned across package
// boundaries outside the core (store, predictor, harness, manifest). Core
// operations (check, eval, enumerate, analyse, sample) never throw by
// design, per the boundary table in section 7 of the design notes; errs
// exists for the ambient layers wrapped around them.
package errs

import "errors"

var (
	// ErrProgramNotFound is returned by the synthesiser's CLI entry point
	// when no program was found within the configured search budget.
	ErrProgramNotFound = errors.New("no program found for the given examples")

	// ErrDatasetBucketConflict is returned by the store when a caller tries
	// to register a bucket key that already names a different shape.
	ErrDatasetBucketConflict = errors.New("dataset bucket key already registered with a different shape")

	// ErrConfigInvalid is returned by config.Load when the parsed
	// configuration fails validation (e.g. no buckets, a duplicate bucket
	// name, an unknown read kind or strategy).
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrPredictorUnavailable is returned by the HTTP attribute predictor
	// client when the remote endpoint cannot be reached or returns a
	// malformed response.
	ErrPredictorUnavailable = errors.New("attribute predictor unavailable")

	// ErrStoreClosed is returned by Store methods called after Close.
	ErrStoreClosed = errors.New("dataset store is closed")
)
