package http

import (
	"encoding/json"
	"net/http"

	"power-analytics/internal/pipelines"
	"power-analytics/internal/shared/loggers"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type runHandler struct {
	runner pipelines.Runner
}

func NewRunHandler(runner pipelines.Runner) AppHttpHandler {
	return &runHandler{runner: runner}
}

// Handle processes POST /runs: one synchronous run over the requested sources,
// answered with the run report.
func (h *runHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, svcErr := h.runner.Run(r.Context(), sourceNames(r))
	if svcErr != nil {
		if report != nil {
			loggers.Ctx(r.Context()).Info().Str(loggers.FieldRunID, report.RunID).Msg("run found no input")
		}
		return svcErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(report)
	return nil
}
