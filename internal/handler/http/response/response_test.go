package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        validator.ValidationErrors{{Field: "role", Message: "must be one of ADMIN, EMPLOYEE, HR"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"role: must be one of ADMIN, EMPLOYEE, HR","details":{"role":"must be one of ADMIN, EMPLOYEE, HR"}}`,
		},
		{
			name:       "invalid credentials",
			err:        fmt.Errorf("login: %w", auth.ErrInvalidCredentials),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"error":"login: Invalid credentials"}`,
		},
		{
			name:       "store failure",
			err:        errors.New(`failed to create attendance: violates foreign key constraint "attendance_employee_id_fkey"`),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to create attendance: violates foreign key constraint \"attendance_employee_id_fkey\""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestOK_BareBody(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]int64{"count": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body["count"])
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, "payroll-2024-05.pdf", "application/pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="payroll-2024-05.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "8", rec.Header().Get("Content-Length"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}
