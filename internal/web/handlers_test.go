package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleSolveReturnsSolution(t *testing.T) {
	s := NewServer(nil)
	body, _ := json.Marshal(SolveRequest{Scramble: "R U R' U'"})

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleSolve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp SolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.MoveCount == 0 && resp.Solution != "" {
		t.Errorf("MoveCount is 0 but Solution is non-empty: %q", resp.Solution)
	}
}

func TestHandleSolveRejectsBadScramble(t *testing.T) {
	s := NewServer(nil)
	body, _ := json.Marshal(SolveRequest{Scramble: "Q4"})

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleSolve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleScrambleReturnsParsableScramble(t *testing.T) {
	s := NewServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/scramble", nil)
	rec := httptest.NewRecorder()
	s.handleScramble(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp ScrambleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Scramble == "" {
		t.Error("scramble is empty")
	}
}

func TestHandleHealth(t *testing.T) {
	s := NewServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
