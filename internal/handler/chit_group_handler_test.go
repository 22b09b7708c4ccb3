package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChitGroupHandler_CreateChitGroup(t *testing.T) {
	s := newTestServer(t)

	body := `{"name":"Sunday Chit","monthlyInstallment":"5000","startMonth":"2024-01"}`
	rec := s.do(http.MethodPost, "/api/v1/chit-groups", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var chit domain.ChitGroup
	decodeJSON(t, rec, &chit)
	assert.Equal(t, "Sunday Chit", chit.Name)
	assert.Equal(t, domain.ChitStatusActive, chit.Status)

	rec = s.do(http.MethodPost, "/api/v1/chit-groups", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 for duplicate name, got %d", rec.Code)
	}
	assert.Equal(t, "A chit group with this name already exists", decodeProblem(t, rec).Detail)
}

func TestChitGroupHandler_CreateChitGroupValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name          string
		body          string
		expectedField string
	}{
		{"installment not a number", `{"name":"A","monthlyInstallment":"lots","startMonth":"2024-01"}`, "monthlyInstallment"},
		{"installment zero", `{"name":"A","monthlyInstallment":"0","startMonth":"2024-01"}`, "monthlyInstallment"},
		{"bad start month", `{"name":"A","monthlyInstallment":"100","startMonth":"01-2024"}`, "startMonth"},
		{"blank name", `{"name":" ","monthlyInstallment":"100","startMonth":"2024-01"}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/api/v1/chit-groups", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}
			problem := decodeProblem(t, rec)
			require.Len(t, problem.Errors, 1)
			assert.Equal(t, tt.expectedField, problem.Errors[0].Field)
		})
	}
}

func TestChitGroupHandler_UnlinkBlockedByActiveAdjustment(t *testing.T) {
	s := withAdjustmentScenario(t)

	rec := s.do(http.MethodPost, "/api/v1/adjustments", adjustmentBody("1000"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodDelete, "/api/v1/borrower-chit-links/1/1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	assert.Equal(t, "Cannot unlink: active adjustments exist for this borrower-chit combination", decodeProblem(t, rec).Detail)
}

func TestChitGroupHandler_Unlink(t *testing.T) {
	s := withAdjustmentScenario(t)

	rec := s.do(http.MethodDelete, "/api/v1/borrower-chit-links/1/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodDelete, "/api/v1/borrower-chit-links/1/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChitGroupHandler_LinkRequiresBothIDs(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/borrower-chit-links", `{"borrowerId":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	assert.Len(t, decodeProblem(t, rec).Errors, 2)
}
