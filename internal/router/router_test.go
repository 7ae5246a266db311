package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/edupay/salaryboard/internal/config"
	"github.com/edupay/salaryboard/internal/handler"
	"github.com/edupay/salaryboard/internal/model"
	"github.com/edupay/salaryboard/internal/repository"
	"github.com/edupay/salaryboard/internal/response"
	"github.com/edupay/salaryboard/internal/service"
	"github.com/edupay/salaryboard/internal/validator"
)

func testRouter() *gin.Engine {
	validator.Setup()

	repo := repository.NewDatasetRepository([]model.DistrictRecord{
		{State: "Texas", Region: model.RegionSouth, District: "Texas District 1",
			StartingSalary: 44000, MedianSalary: 56000, TopSalary: 64000, YearsToTop: 20,
			BudgetSharePct: 50, NumTeachers: 300, StudentTeacherRatio: 16.0, AvgRaisePct: 1.89},
		{State: "Texas", Region: model.RegionSouth, District: "Texas District 2",
			StartingSalary: 46000, MedianSalary: 60000, TopSalary: 66000, YearsToTop: 22,
			BudgetSharePct: 54, NumTeachers: 200, StudentTeacherRatio: 15.0, AvgRaisePct: 1.65},
		{State: "Iowa", Region: model.RegionMidwest, District: "Iowa District 1",
			StartingSalary: 40000, MedianSalary: 52000, TopSalary: 61000, YearsToTop: 19,
			BudgetSharePct: 47, NumTeachers: 120, StudentTeacherRatio: 14.0, AvgRaisePct: 2.25},
	})

	dashboardService := service.NewDashboardService(repo)
	districtService := service.NewDistrictService(repo)

	handlers := &Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService),
		District:  handler.NewDistrictHandler(districtService),
		Meta:      handler.NewMetaHandler(dashboardService),
		Chart:     handler.NewChartHandler(service.NewChartService(dashboardService)),
		Export:    handler.NewExportHandler(service.NewExportService(districtService)),
	}

	return SetupRouter(handlers, &config.Config{GinMode: gin.TestMode})
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, w.Body.String())
	}
	return env
}

func TestHealth(t *testing.T) {
	w := get(t, testRouter(), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestDashboardPage(t *testing.T) {
	w := get(t, testRouter(), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Teacher Salary Comparison Tool")) {
		t.Error("dashboard page missing title")
	}
}

func TestMetaEndpoints(t *testing.T) {
	r := testRouter()

	env := decodeEnvelope(t, get(t, r, "/api/v1/meta/regions"))
	data := env.Data.(map[string]interface{})
	regions := data["regions"].([]interface{})
	if len(regions) != 2 {
		t.Errorf("got %d regions, want 2", len(regions))
	}

	env = decodeEnvelope(t, get(t, r, "/api/v1/meta/states?region=South"))
	data = env.Data.(map[string]interface{})
	states := data["states"].([]interface{})
	if len(states) != 1 || states[0] != "Texas" {
		t.Errorf("States(South) = %v, want [Texas]", states)
	}

	// "all" means no restriction regardless of case.
	env = decodeEnvelope(t, get(t, r, "/api/v1/meta/states?region=ALL"))
	data = env.Data.(map[string]interface{})
	if all := data["states"].([]interface{}); len(all) != 2 {
		t.Errorf("States(ALL) = %v, want both states", all)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "trace-42" {
		t.Errorf("X-Request-ID = %q, want client-supplied trace-42", got)
	}
	env := decodeEnvelope(t, w)
	if env.Metadata.RequestID != "trace-42" {
		t.Errorf("metadata request ID = %q, want trace-42", env.Metadata.RequestID)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/api/v1/dashboard?region=South")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if env.Error != nil {
		t.Fatalf("unexpected error: %+v", env.Error)
	}
	if env.Metadata.RequestID == "" {
		t.Error("missing request ID in metadata")
	}

	data := env.Data.(map[string]interface{})
	if got := data["total_districts"].(float64); got != 2 {
		t.Errorf("total_districts = %v, want 2", got)
	}
}

func TestDistrictsPagination(t *testing.T) {
	r := testRouter()

	env := decodeEnvelope(t, get(t, r, "/api/v1/districts?page=1&per_page=2"))
	if env.Pagination == nil {
		t.Fatal("missing pagination")
	}
	if env.Pagination.TotalItems != 3 || env.Pagination.TotalPages != 2 {
		t.Errorf("pagination = %+v, want 3 items over 2 pages", env.Pagination)
	}

	data := env.Data.(map[string]interface{})
	districts := data["districts"].([]interface{})
	if len(districts) != 2 {
		t.Errorf("got %d districts on page 1, want 2", len(districts))
	}
}

func TestDistrictsRejectsBadPage(t *testing.T) {
	w := get(t, testRouter(), "/api/v1/districts?page=-1")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != response.ErrValidation {
		t.Errorf("error = %+v, want %s", env.Error, response.ErrValidation)
	}
}

func TestChartEndpoint(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/api/v1/charts/salary-range")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type %q, want image/png", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc == "" {
		t.Error("chart response missing Cache-Control")
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("body is not a PNG")
	}
}

func TestChartSingleStateSelection(t *testing.T) {
	r := testRouter()

	// Iowa has a single district; every chart must still render.
	for _, name := range service.ChartNames {
		w := get(t, r, "/api/v1/charts/"+name+"?states=Iowa")
		if w.Code != http.StatusOK {
			t.Errorf("%s: status %d, want 200\nbody: %s", name, w.Code, w.Body.String())
			continue
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
			t.Errorf("%s: body is not a PNG", name)
		}
	}
}

func TestChartEmptySelection(t *testing.T) {
	w := get(t, testRouter(), "/api/v1/charts/salary-range?states=Nowhere")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != response.ErrEmptyResult {
		t.Errorf("error = %+v, want %s", env.Error, response.ErrEmptyResult)
	}
}

func TestChartUnknownName(t *testing.T) {
	w := get(t, testRouter(), "/api/v1/charts/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != response.ErrUnknownChart {
		t.Errorf("error = %+v, want %s", env.Error, response.ErrUnknownChart)
	}
}

func TestExportEndpoint(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/api/v1/export?states=Texas")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("missing Content-Disposition header")
	}

	file, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows("Districts")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	// Header plus the two Texas rows.
	if len(rows) != 3 {
		t.Errorf("got %d rows, want 3", len(rows))
	}
}
