package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"course-platform/pkg/apperr"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", fmt.Errorf("%w: name required", apperr.ErrValidation), http.StatusBadRequest},
		{"unauthorized", fmt.Errorf("bad credentials: %w", apperr.ErrUnauthorized), http.StatusUnauthorized},
		{"forbidden", fmt.Errorf("not enrolled: %w", apperr.ErrForbidden), http.StatusForbidden},
		{"not found", fmt.Errorf("course: %w", apperr.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("already enrolled: %w", apperr.ErrConflict), http.StatusConflict},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tc.err, "test op")
			require.Equal(t, tc.wantCode, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
