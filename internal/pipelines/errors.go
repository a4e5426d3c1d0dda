package pipelines

import (
	"fmt"
	"strings"

	"power-analytics/internal/shared/svcerrors"
)

const (
	codeUnknownSource = "RUN_1000"
	codeNoInput       = "RUN_1001"
	codeRunInProgress = "RUN_1002"
)

// errUnknownSource returns an error when a requested source is not configured.
func errUnknownSource(name string, configured []string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownSource,
		fmt.Sprintf("unknown source %q, configured sources: %s", name, strings.Join(configured, ", ")), nil)
}

// errNoInput returns an error when not a single input file was found for any selected source.
func errNoInput(selected []string) *svcerrors.ServiceError {
	return svcerrors.NewMissingInputError(codeNoInput,
		fmt.Sprintf("no input files found for sources: %s", strings.Join(selected, ", ")), nil)
}

func errRunInProgress() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeRunInProgress, "a run is already in progress", nil)
}
