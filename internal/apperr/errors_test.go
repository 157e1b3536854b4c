package apperr_test

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"bld/internal/apperr"
)

func TestStatusAndMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"unauthorized", apperr.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"wrapped unauthorized", fmt.Errorf("guard: %w", apperr.ErrUnauthorized), http.StatusUnauthorized, "Unauthorized"},
		{"too many requests", apperr.ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
		{"store error", fmt.Errorf("list tasks: %w", sql.ErrConnDone), http.StatusInternalServerError, "Internal server error"},
		{"plain internal", apperr.ErrInternal, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantStatus, apperr.Status(tc.err))
			assert.Equal(t, tc.wantMessage, apperr.Message(tc.err))
		})
	}
}
