package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondHelpers(t *testing.T) {
	cases := []struct {
		name    string
		write   func(w http.ResponseWriter)
		status  int
		code    string
		message string
		field   string
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, ErrCodeInvalidPayload) }, http.StatusBadRequest, ErrCodeInvalidPayload, MsgBadRequest, ""},
		{"not found", RespondNotFound, http.StatusNotFound, ErrCodeNotFound, MsgNotFound, ""},
		{"method", RespondMethodNotAllowed, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, MsgMethodNotAllowed, ""},
		{"unprocessable", func(w http.ResponseWriter) { RespondUnprocessable(w, "difficulty") }, http.StatusUnprocessableEntity, ErrCodeUnprocessable, MsgUnprocessable, "difficulty"},
		{"internal", RespondInternalError, http.StatusInternalServerError, ErrCodeInternalError, MsgInternalError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.Error)
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, tc.field, body.Field)
		})
	}
}
