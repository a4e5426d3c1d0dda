package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"power-analytics/internal/models"
	pipelinemocks "power-analytics/internal/pipelines/mocks"
	"power-analytics/internal/shared/loggers"
	"power-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (http.Handler, *pipelinemocks.MockRunner) {
	ctrl := gomock.NewController(t)
	runner := pipelinemocks.NewMockRunner(ctrl)
	logger, err := loggers.New("error")
	require.NoError(t, err)
	return NewRouter(runner, logger), runner
}

func TestRunHandler_Success(t *testing.T) {
	t.Parallel()

	router, runner := newTestRouter(t)
	report := &models.RunReport{
		RunID: "01HZX3J4Q6S8T9V0W1X2Y3Z4A5",
		Sources: []models.SourceReport{{
			Source:  "nvml_power",
			Window:  20,
			Signals: []models.SignalResult{{Signal: "nvml_power", Status: models.StatusWritten, Files: 2, Rows: 10}},
		}},
	}
	runner.EXPECT().Run(gomock.Any(), []string(nil)).Return(report, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/runs", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.RunReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, report.RunID, got.RunID)
	require.Len(t, got.Sources, 1)
	assert.Equal(t, "nvml_power", got.Sources[0].Source)
	assert.Equal(t, models.StatusWritten, got.Sources[0].Signals[0].Status)
}

func TestRunHandler_SourceQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		expected []string
	}{
		{name: "no query", target: "/runs", expected: nil},
		{name: "single", target: "/runs?source=variorum", expected: []string{"variorum"}},
		{name: "repeated", target: "/runs?source=variorum&source=nvml_power", expected: []string{"variorum", "nvml_power"}},
		{name: "comma separated", target: "/runs?source=nvml_power,%20nvml_energy,", expected: []string{"nvml_power", "nvml_energy"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, runner := newTestRouter(t)
			runner.EXPECT().Run(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, names []string) (*models.RunReport, *svcerrors.ServiceError) {
					assert.Equal(t, tt.expected, names)
					return &models.RunReport{RunID: "run"}, nil
				})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, tt.target, nil))
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestRunHandler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		report         *models.RunReport
		svcErr         *svcerrors.ServiceError
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "unknown source",
			svcErr:         svcerrors.NewInvalidArgumentError("RUN_1000", `unknown source "rapl"`, nil),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "RUN_1000",
		},
		{
			name:           "no input anywhere",
			report:         &models.RunReport{RunID: "run"},
			svcErr:         svcerrors.NewMissingInputError("RUN_1001", "no input files found for sources: variorum", nil),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "RUN_1001",
		},
		{
			name:           "run in progress",
			svcErr:         svcerrors.NewResourceConflictError("RUN_1002", "a run is already in progress", nil),
			expectedStatus: http.StatusConflict,
			expectedCode:   "RUN_1002",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, runner := newTestRouter(t)
			runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(tt.report, tt.svcErr)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/runs?source=variorum", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.Equal(t, tt.expectedCode, errorResponse.ErrorCode)
			assert.NotEmpty(t, errorResponse.RequestID)
		})
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
