package correlations

import (
	"fmt"

	"power-analytics/internal/shared/svcerrors"
)

const (
	codeMissingInput     = "COR_1000"
	codeNoTimestamp      = "COR_1001"
	codeNoValue          = "COR_1002"
	codeInvalidRegions   = "COR_1003"
	codeMalformedSamples = "COR_1004"
	codeInternalInput    = "COR_9000"
	codeInternalOutput   = "COR_9001"
	codeInternalLoader   = "COR_9002"
	codeInternalJoin     = "COR_9003"
)

// errMissingInput returns an error when the source has no sample or no region files.
func errMissingInput(what, dir, pattern string) *svcerrors.ServiceError {
	return svcerrors.NewMissingInputError(codeMissingInput, fmt.Sprintf("no %s files matching %s in %s", what, pattern, dir), nil)
}

func errNoTimestamp(cause error) *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeNoTimestamp, "no usable timestamp column in samples", cause)
}

func errNoValue(cause error) *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeNoValue, "no value column in samples", cause)
}

// errInvalidRegions returns an error when a region file lacks required columns or holds a bad row.
func errInvalidRegions(cause error) *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeInvalidRegions, "invalid region file", cause)
}

func errMalformedSamples(cause error) *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeMalformedSamples, "malformed sample file", cause)
}

func errInternalInputFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInput, fmt.Errorf("inputStoreFailed: %w", cause))
}

func errInternalOutputFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOutput, fmt.Errorf("outputStoreFailed: %w", cause))
}

func errInternalLoaderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLoader, fmt.Errorf("seriesLoaderFailed: %w", cause))
}

func errInternalCorrelatorFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalJoin, fmt.Errorf("correlatorFailed: %w", cause))
}
