package aggregators

import (
	"fmt"

	"power-analytics/internal/shared/svcerrors"
)

const (
	codeMissingInput    = "AGG_1000"
	codeMissingColumn   = "AGG_1001"
	codeMalformedInput  = "AGG_1002"
	codeInternalInput   = "AGG_9000"
	codeInternalOutput  = "AGG_9001"
	codeInternalReducer = "AGG_9002"
)

// errMissingInput returns an error when no file matches the signal pattern.
func errMissingInput(dir, pattern string) *svcerrors.ServiceError {
	return svcerrors.NewMissingInputError(codeMissingInput, fmt.Sprintf("no input files matching %s in %s", pattern, dir), nil)
}

// errMissingColumn returns an error when a required field is absent; the cause lists the available fields.
func errMissingColumn(cause error) *svcerrors.ServiceError {
	return svcerrors.NewMissingColumnError(codeMissingColumn, "required column missing", cause)
}

func errMalformedInput(cause error) *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeMalformedInput, "malformed input file", cause)
}

// errInternalInputFailed returns an error when listing or reading input files fails.
func errInternalInputFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInput, fmt.Errorf("inputStoreFailed: %w", cause))
}

// errInternalOutputFailed returns an error when writing an artifact fails.
func errInternalOutputFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOutput, fmt.Errorf("outputStoreFailed: %w", cause))
}

func errInternalReducerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReducer, fmt.Errorf("signalReducerFailed: %w", cause))
}
