package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/evcraddock/carpet/internal/area"
	"github.com/evcraddock/carpet/internal/calc"
	"github.com/evcraddock/carpet/internal/property"
)

func apiRequest(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	r := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func oneBedroomInput() area.Input {
	return area.Input{Categories: []area.CategoryInput{
		{Category: area.CategoryBedrooms, Count: 1, Rooms: []area.RoomInput{
			{Length: area.Dimension{Feet: 10, Inches: 6}, Breadth: area.Dimension{Feet: 8}},
		}},
	}}
}

func saveTestProperty(t *testing.T, srv *Server, name string) {
	t.Helper()
	w := apiRequest(t, srv, "POST", "/api/properties", map[string]interface{}{
		"name":  name,
		"input": oneBedroomInput(),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("save %s: status = %d, body = %s", name, w.Code, w.Body.String())
	}
}

func TestAPICalculate(t *testing.T) {
	srv := testServer(t)

	w := apiRequest(t, srv, "POST", "/api/calculate", oneBedroomInput())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var res calc.Result
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.HasRooms || len(res.Rooms) != 1 {
		t.Fatalf("result = %+v, want one room", res)
	}
	if res.Totals == nil || res.Totals.TotalSqft != 84 || res.Totals.ClaimedSqft != 112 {
		t.Errorf("totals = %+v, want 84 / 112", res.Totals)
	}
	if res.Plan == nil || len(res.Plan.Placements) != 1 {
		t.Errorf("layout = %+v, want one placement", res.Plan)
	}
}

func TestAPICalculateEmpty(t *testing.T) {
	srv := testServer(t)

	w := apiRequest(t, srv, "POST", "/api/calculate", area.Input{})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if !strings.Contains(body, `"has_rooms":false`) {
		t.Errorf("body = %s, want has_rooms false", body)
	}
	if strings.Contains(body, `"totals"`) {
		t.Errorf("body = %s, did not expect totals", body)
	}
}

func TestAPICalculateInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"categories":`},
		{"unknown category", `{"categories":[{"category":"Garage","count":1}]}`},
		{"count above maximum", `{"categories":[{"category":"Bedrooms","count":11}]}`},
		{"negative feet", `{"categories":[{"category":"Bedrooms","count":1,"rooms":[{"length":{"ft":-1},"breadth":{"ft":8}}]}]}`},
		{"overflowing feet", `{"categories":[{"category":"Bedrooms","count":1,"rooms":[{"length":{"ft":1e999},"breadth":{"ft":8}}]}]}`},
		{"more rooms than count", `{"categories":[{"category":"Bedrooms","count":0,"rooms":[{"length":{"ft":1},"breadth":{"ft":1}}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testServer(t)
			r := httptest.NewRequest("POST", "/api/calculate", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if !strings.Contains(w.Body.String(), `"error"`) {
				t.Errorf("body = %s, want error field", w.Body.String())
			}
		})
	}
}

func TestAPISummaryCSV(t *testing.T) {
	srv := testServer(t)

	w := apiRequest(t, srv, "POST", "/api/summary.csv", oneBedroomInput())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if lines[0] != "Room,Category,Length (ft),Breadth (ft),Area (sqft)" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestAPISaveAndGetProperty(t *testing.T) {
	srv := testServer(t)
	saveTestProperty(t, srv, "Flat A")

	w := apiRequest(t, srv, "GET", "/api/properties/Flat%20A", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var got property.Named
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Flat A" {
		t.Errorf("name = %q, want Flat A", got.Name)
	}
	if got.TotalSqft != 84 || got.ClaimedSqft != 112 {
		t.Errorf("totals = %+v", got.Totals)
	}
	if len(got.Rooms) != 1 || got.Rooms[0].Name != "Bedroom 1" {
		t.Errorf("rooms = %+v", got.Rooms)
	}
}

func TestAPISavePropertyOverwrites(t *testing.T) {
	srv := testServer(t)
	saveTestProperty(t, srv, "Flat A")

	in := oneBedroomInput()
	in.Categories[0].Rooms[0].Breadth = area.Dimension{Feet: 10}
	w := apiRequest(t, srv, "POST", "/api/properties", map[string]interface{}{"name": "Flat A", "input": in})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	p, ok := srv.store.Get("Flat A")
	if !ok {
		t.Fatal("expected Flat A")
	}
	if p.TotalSqft != 105 {
		t.Errorf("total_sqft = %v, want 105", p.TotalSqft)
	}
	if srv.store.Len() != 1 {
		t.Errorf("store has %d properties, want 1", srv.store.Len())
	}
}

func TestAPISavePropertyRejected(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"blank name", map[string]interface{}{"name": " ", "input": oneBedroomInput()}},
		{"no rooms", map[string]interface{}{"name": "Flat A", "input": area.Input{}}},
		{"slash in name", map[string]interface{}{"name": "Flat A/B", "input": oneBedroomInput()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testServer(t)
			w := apiRequest(t, srv, "POST", "/api/properties", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if srv.store.Len() != 0 {
				t.Errorf("store has %d properties, want 0", srv.store.Len())
			}
		})
	}
}

func TestAPISavePropertyOverflowingMeasurement(t *testing.T) {
	srv := testServer(t)
	body := `{"name":"Flat A","input":{"categories":[{"category":"Bedrooms","count":1,` +
		`"rooms":[{"length":{"ft":1e999},"breadth":{"ft":8}}]}]}}`
	r := httptest.NewRequest("POST", "/api/properties", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if srv.store.Len() != 0 {
		t.Errorf("store has %d properties, want 0", srv.store.Len())
	}
}

func TestAPIGetPropertyNotFound(t *testing.T) {
	srv := testServer(t)

	for _, path := range []string{
		"/api/properties/missing",
		"/api/properties/missing/summary.csv",
		"/api/properties/missing/summary.xlsx",
		"/api/properties/missing/layout.svg",
	} {
		w := apiRequest(t, srv, "GET", path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want %d", path, w.Code, http.StatusNotFound)
		}
	}
}

func TestAPIListProperties(t *testing.T) {
	srv := testServer(t)

	w := apiRequest(t, srv, "GET", "/api/properties", nil)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("empty list body = %q, want []", w.Body.String())
	}

	saveTestProperty(t, srv, "Flat B")
	saveTestProperty(t, srv, "Flat A")

	w = apiRequest(t, srv, "GET", "/api/properties", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var props []property.Named
	if err := json.NewDecoder(w.Body).Decode(&props); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(props) != 2 {
		t.Fatalf("got %d properties, want 2", len(props))
	}
	if props[0].Name != "Flat A" || props[1].Name != "Flat B" {
		t.Errorf("order = %s, %s; want Flat A, Flat B", props[0].Name, props[1].Name)
	}
}

func TestAPICompare(t *testing.T) {
	srv := testServer(t)
	saveTestProperty(t, srv, "Flat A")

	w := apiRequest(t, srv, "GET", "/api/compare", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var rows []property.Comparison
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || !rows[0].Largest || rows[0].RoomCount != 1 {
		t.Errorf("rows = %+v", rows)
	}
}

func TestAPIPropertyExports(t *testing.T) {
	srv := testServer(t)
	saveTestProperty(t, srv, "Flat A")

	w := apiRequest(t, srv, "GET", "/api/properties/Flat%20A/summary.csv", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("csv status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "flat-a_area_summary.csv") {
		t.Errorf("content-disposition = %q", cd)
	}
	if !strings.Contains(w.Body.String(), "Bedroom 1,Bedrooms,10.5,8,84") {
		t.Errorf("csv body = %q", w.Body.String())
	}

	w = apiRequest(t, srv, "GET", "/api/properties/Flat%20A/layout.svg", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("svg status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content-type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Bedroom 1 (84.0)") {
		t.Errorf("svg body missing room label")
	}

	w = apiRequest(t, srv, "GET", "/api/properties/Flat%20A/summary.xlsx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx status = %d", w.Code)
	}
	f, err := excelize.OpenReader(w.Body)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Errorf("close workbook: %v", err)
		}
	}()
	v, err := f.GetCellValue("Area Summary", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if v != "Bedroom 1" {
		t.Errorf("A2 = %q, want Bedroom 1", v)
	}
}

func TestAPINotFoundAndMethodNotAllowed(t *testing.T) {
	srv := testServer(t)

	w := apiRequest(t, srv, "GET", "/api/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	w = apiRequest(t, srv, "PUT", "/api/properties", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	if !strings.Contains(w.Body.String(), "method not allowed") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Flat A", "flat-a_area_summary.csv"},
		{"  Villa 12 ", "villa-12_area_summary.csv"},
		{"A/B", "a-b_area_summary.csv"},
	}
	for _, tt := range tests {
		if got := exportFilename(tt.name, "csv"); got != tt.want {
			t.Errorf("exportFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
