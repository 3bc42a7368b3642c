package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithServiceError(t *testing.T) {
	errLimit := errors.New("Amount exceeds daily limit")
	errMissing := errors.New("Recipient wallet address not found")
	rules := []ErrorStatus{
		{Err: errLimit, Code: http.StatusBadRequest},
		{Err: errMissing, Code: http.StatusNotFound},
	}

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "matched sentinel",
			err:          errMissing,
			expectedCode: http.StatusNotFound,
			expectedBody: "Recipient wallet address not found",
		},
		{
			name:         "wrapped sentinel keeps the wrapper message",
			err:          fmt.Errorf("%w of %s", errLimit, "10,000"),
			expectedCode: http.StatusBadRequest,
			expectedBody: "Amount exceeds daily limit of 10,000",
		},
		{
			name:         "storage error is hidden",
			err:          errors.New("adjust wallet: connection reset"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			RespondWithServiceError(w, tt.err, rules...)

			assert.Equal(t, tt.expectedCode, w.Code)
			var body Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body.Error)
		})
	}
}
