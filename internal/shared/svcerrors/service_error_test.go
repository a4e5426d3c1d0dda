package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewMissingColumnError("AGG_1001", "no timestamp column", nil),
			wantErr: NewMissingColumnError("AGG_1001", "no timestamp column", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("AGG_9000", nil)),
			wantErr: NewInternalError("AGG_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Categories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            *ServiceError
		wantStatus     int
		wantInternal   bool
		wantMissingIn  bool
		wantCategory   string
	}{
		{"invalid argument", NewInvalidArgumentError("C", "m", nil), 400, false, false, "invalid_argument"},
		{"missing input", NewMissingInputError("C", "m", nil), 404, false, true, "missing_input"},
		{"missing column", NewMissingColumnError("C", "m", nil), 422, false, false, "missing_column"},
		{"failed precondition", NewFailedPreconditionError("C", "m", nil), 422, false, false, "failed_precondition"},
		{"resource conflict", NewResourceConflictError("C", "m", nil), 409, false, false, "resource_conflict"},
		{"internal", NewInternalError("C", nil), 500, true, false, "internal"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStatus, tt.err.HttpStatusCode)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
			assert.Equal(t, tt.wantMissingIn, tt.err.IsMissingInput())
			assert.Equal(t, tt.wantCategory, tt.err.Category)
		})
	}
}

func TestServiceError_ErrorIncludesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such column")
	err := NewMissingColumnError("AGG_1001", "timestamp not resolvable", cause)

	assert.Equal(t, "AGG_1001: timestamp not resolvable: no such column", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "AGG_1001: m", NewInvalidArgumentError("AGG_1001", "m", nil).Error())
}
