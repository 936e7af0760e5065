package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"duitku/internal/handlers"
	"duitku/internal/store"
	"duitku/internal/testutil"
	"duitku/internal/validator"
)

func setupReportRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Register()

	s := testutil.SetupEmptyStore(t)
	h := handlers.NewReportHandler(s)

	router := gin.New()
	reports := router.Group("/api/v1/reports")
	reports.GET("/overview", h.GetOverview)
	reports.GET("/summary", h.GetSummary)
	reports.GET("/categories", h.GetCategoryReport)
	reports.GET("/periods", h.GetPeriodReport)
	reports.GET("/comparison", h.GetComparison)
	exports := router.Group("/api/v1/export")
	exports.GET("/report", h.ExportReport)
	exports.GET("/transactions.csv", h.ExportCSV)
	return router, s
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetOverview(t *testing.T) {
	router, s := setupReportRouter(t)
	testutil.MustAdd(t, s, testutil.Income(5_000_000, "salary", "Gaji Bulanan", testutil.Date(2024, time.January, 15)))
	testutil.MustAdd(t, s, testutil.Expense(150_000, "food", "Makan siang", testutil.Date(2024, time.January, 16)))
	testutil.MustAdd(t, s, testutil.Expense(50_000, "transport", "Bensin motor", testutil.Date(2024, time.January, 16)))

	w := get(t, router, "/api/v1/reports/overview")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Summary struct {
			TotalIncome  int64 `json:"total_income"`
			TotalExpense int64 `json:"total_expense"`
			Balance      int64 `json:"balance"`
			Count        int   `json:"count"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Summary.TotalIncome != 5_000_000 || body.Summary.TotalExpense != 200_000 {
		t.Errorf("unexpected totals: %+v", body.Summary)
	}
	if body.Summary.Balance != 4_800_000 || body.Summary.Count != 3 {
		t.Errorf("unexpected balance or count: %+v", body.Summary)
	}
}

func TestGetSummary(t *testing.T) {
	t.Run("rejects an unknown period", func(t *testing.T) {
		router, _ := setupReportRouter(t)
		w := get(t, router, "/api/v1/reports/summary?period=fortnight")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults to all-time", func(t *testing.T) {
		router, s := setupReportRouter(t)
		testutil.MustAdd(t, s, testutil.Income(1_000_000, "salary", "Gaji", testutil.Date(2020, time.June, 1)))

		w := get(t, router, "/api/v1/reports/summary")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Summary struct {
				Period   string `json:"period"`
				Overview struct {
					Count int `json:"count"`
				} `json:"overview"`
			} `json:"summary"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if body.Summary.Period != "all-time" {
			t.Errorf("expected all-time period, got %q", body.Summary.Period)
		}
		if body.Summary.Overview.Count != 1 {
			t.Errorf("expected the old record counted, got %d", body.Summary.Overview.Count)
		}
	})
}

func TestGetCategoryReport(t *testing.T) {
	router, s := setupReportRouter(t)
	testutil.MustAdd(t, s, testutil.Income(5_000_000, "salary", "Gaji Bulanan", testutil.Date(2024, time.January, 15)))
	testutil.MustAdd(t, s, testutil.Expense(150_000, "food", "Makan siang", testutil.Date(2024, time.January, 16)))
	testutil.MustAdd(t, s, testutil.Expense(50_000, "transport", "Bensin motor", testutil.Date(2024, time.January, 16)))

	t.Run("expense shares are computed within the type filter", func(t *testing.T) {
		w := get(t, router, "/api/v1/reports/categories?type=expense")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Categories []struct {
				CategoryID string  `json:"category_id"`
				Percentage float64 `json:"percentage"`
			} `json:"categories"`
			TopCategory struct {
				CategoryID string `json:"category_id"`
			} `json:"top_category"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(body.Categories) != 2 {
			t.Fatalf("expected 2 expense categories, got %d", len(body.Categories))
		}
		if body.Categories[0].CategoryID != "food" || body.Categories[0].Percentage != 75 {
			t.Errorf("unexpected leading category: %+v", body.Categories[0])
		}
		if body.TopCategory.CategoryID != "food" {
			t.Errorf("expected food as top category, got %q", body.TopCategory.CategoryID)
		}
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		w := get(t, router, "/api/v1/reports/categories?type=transfer")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty store omits the top category", func(t *testing.T) {
		emptyRouter, _ := setupReportRouter(t)
		w := get(t, emptyRouter, "/api/v1/reports/categories")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if _, ok := body["top_category"]; ok {
			t.Error("expected no top_category key for an empty store")
		}
	})
}

func TestGetPeriodReport(t *testing.T) {
	router, s := setupReportRouter(t)
	testutil.MustAdd(t, s, testutil.Income(1_000_000, "salary", "Gaji", testutil.Date(2024, time.January, 5)))
	testutil.MustAdd(t, s, testutil.Income(1_000_000, "salary", "Gaji", testutil.Date(2024, time.February, 5)))

	t.Run("monthly buckets", func(t *testing.T) {
		w := get(t, router, "/api/v1/reports/periods")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Periods []struct {
				Key string `json:"key"`
			} `json:"periods"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(body.Periods) != 2 || body.Periods[0].Key != "2024-01" {
			t.Errorf("unexpected period buckets: %+v", body.Periods)
		}
	})

	t.Run("rejects an unknown granularity", func(t *testing.T) {
		w := get(t, router, "/api/v1/reports/periods?granularity=week")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestExportReport(t *testing.T) {
	router, s := setupReportRouter(t)
	testutil.MustAdd(t, s, testutil.Income(5_000_000, "salary", "Gaji Bulanan", testutil.Date(2024, time.January, 15)))

	w := get(t, router, "/api/v1/export/report")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "laporan-keuangan-all-time-") {
		t.Errorf("unexpected Content-Disposition: %q", disposition)
	}

	var body struct {
		Period  string `json:"period"`
		Summary struct {
			TotalTransactions int `json:"totalTransactions"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Period != "all-time" || body.Summary.TotalTransactions != 1 {
		t.Errorf("unexpected document: %+v", body)
	}
}

func TestExportCSV(t *testing.T) {
	router, s := setupReportRouter(t)
	testutil.MustAdd(t, s, testutil.Expense(150_000, "food", "Makan siang", testutil.Date(2024, time.January, 16)))

	w := get(t, router, "/api/v1/export/transactions.csv")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv content type, got %q", ct)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Pengeluaran") {
		t.Errorf("expected localized type label, got %q", lines[1])
	}
}
