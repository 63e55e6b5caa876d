package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	registerRoutes(e, false)
	return e
}

func postJSON(e *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandleSolve(t *testing.T) {
	e := newTestEngine()
	rec := postJSON(e, "/api/v1/solve", `{"cells": "1030030130100103"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("solve returned status %d: %s", rec.Code, rec.Body.String())
	}
	var resp solveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("couldn't decode solve response: %v", err)
	}
	if resp.Passes < 1 {
		t.Errorf("solve reported %d passes", resp.Passes)
	}
	if resp.Unknown != 8 {
		t.Errorf("solve reported %d unknown cells, expected 8", resp.Unknown)
	}
	if len(resp.Cells) != 16 {
		t.Errorf("solve returned %d cells, expected 16: %q", len(resp.Cells), resp.Cells)
	}
	if len(resp.Remaining) != 4 {
		t.Fatalf("solve returned %d remaining rows, expected 4", len(resp.Remaining))
	}
	for x, row := range resp.Remaining {
		for y, count := range row {
			if count != 0 && count != 2 {
				t.Errorf("cell (%d, %d) has %d remaining candidates, expected 0 or 2", x, y, count)
			}
		}
	}
}

func TestHandleSolveCompletes(t *testing.T) {
	e := newTestEngine()
	// a board one hidden single away from complete
	rec := postJSON(e, "/api/v1/solve", `{"cells": "1234341221434.21"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("solve returned status %d: %s", rec.Code, rec.Body.String())
	}
	var resp solveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("couldn't decode solve response: %v", err)
	}
	if resp.Unknown != 0 {
		t.Errorf("solve left %d cells unknown: %q", resp.Unknown, resp.Cells)
	}
	if resp.Cells != "1234341221434321" {
		t.Errorf("solve returned wrong cells: %q", resp.Cells)
	}
}

func TestHandleSolveBadRequests(t *testing.T) {
	e := newTestEngine()
	cases := []string{
		``,                              // no body
		`{"cells": ""}`,                 // missing cells
		`{"cells": "12345"}`,            // not a square board
		`{"cells": "12x.030130010103"}`, // bad character
	}
	for i, body := range cases {
		rec := postJSON(e, "/api/v1/solve", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: status %d, expected %d", i, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestStorageRoutesAbsentWhenUnstored(t *testing.T) {
	e := newTestEngine()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/puzzles", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("puzzles route answered %d without storage", rec.Code)
	}
}
