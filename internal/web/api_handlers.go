package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/evcraddock/carpet/internal/area"
	"github.com/evcraddock/carpet/internal/calc"
	"github.com/evcraddock/carpet/internal/layout"
	"github.com/evcraddock/carpet/internal/property"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// saveRequest is the body of POST /api/properties.
type saveRequest struct {
	Name  string     `json:"name"`
	Input area.Input `json:"input"`
}

// apiCalculate computes rooms, totals and layout for the posted input.
func (s *Server) apiCalculate(w http.ResponseWriter, r *http.Request) {
	var in area.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	res, err := calc.Run(in)
	if err != nil {
		apiCalcError(w, err)
		return
	}

	apiJSON(w, res, http.StatusOK)
}

// apiSummaryCSV returns the room summary of the posted input as CSV.
func (s *Server) apiSummaryCSV(w http.ResponseWriter, r *http.Request) {
	var in area.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	rooms, err := area.BuildRooms(in)
	if err != nil {
		apiCalcError(w, err)
		return
	}

	writeCSV(w, area.SummaryFilename, rooms)
}

// apiCompare returns the comparison rows for all stored properties.
func (s *Server) apiCompare(w http.ResponseWriter, r *http.Request) {
	rows := property.Compare(s.store.ListAll())
	if rows == nil {
		rows = []property.Comparison{}
	}
	apiJSON(w, rows, http.StatusOK)
}

// apiListProperties returns all stored properties sorted by name.
func (s *Server) apiListProperties(w http.ResponseWriter, r *http.Request) {
	props := s.store.ListAll()
	out := make([]property.Named, 0, len(props))
	for _, p := range props {
		out = append(out, p.WithName())
	}
	apiJSON(w, out, http.StatusOK)
}

// apiSaveProperty saves the posted input under the posted name.
// An existing property with the same name is replaced.
func (s *Server) apiSaveProperty(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	rooms, err := area.BuildRooms(req.Input)
	if err != nil {
		apiCalcError(w, err)
		return
	}

	p, err := property.New(req.Name, rooms)
	if err != nil {
		apiCalcError(w, err)
		return
	}

	if err := s.store.Save(p.Name, p); err != nil {
		slog.Error("saving property", "name", p.Name, "error", err)
		apiError(w, fmt.Sprintf("saving property: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, p.WithName(), http.StatusCreated)
}

// apiGetProperty returns a single stored property.
func (s *Server) apiGetProperty(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	apiJSON(w, p.WithName(), http.StatusOK)
}

// apiPropertyCSV returns the stored room summary as CSV.
func (s *Server) apiPropertyCSV(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeCSV(w, exportFilename(p.Name, "csv"), p.Rooms)
}

// apiPropertyXLSX returns the stored room summary and totals as a workbook.
func (s *Server) apiPropertyXLSX(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(p.Name, "xlsx")))
	if err := area.WriteXLSX(w, p.Rooms, p.Totals); err != nil {
		slog.Error("writing workbook", "name", p.Name, "error", err)
	}
}

// apiPropertySVG returns the diagrammatic floorplan of a stored property.
func (s *Server) apiPropertySVG(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	plan, err := layout.Generate(p.Rooms)
	if err != nil {
		apiError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write([]byte(plan.SVG())); err != nil {
		slog.Error("writing svg", "name", p.Name, "error", err)
	}
}

// lookup resolves the {name} route variable, writing a 404 when absent.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*property.Property, bool) {
	name := mux.Vars(r)["name"]
	p, ok := s.store.Get(name)
	if !ok {
		apiError(w, fmt.Sprintf("property %q not found", name), http.StatusNotFound)
		return nil, false
	}
	return p, true
}

// apiCalcError maps input errors to 400 and everything else to 500.
func apiCalcError(w http.ResponseWriter, err error) {
	switch {
	case isValidation(err):
		apiError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, area.ErrNoRooms):
		apiError(w, err.Error(), http.StatusBadRequest)
	default:
		apiError(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeCSV(w http.ResponseWriter, filename string, rooms []area.Room) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := area.WriteCSV(w, rooms); err != nil {
		slog.Error("writing csv", "error", err)
	}
}

// exportFilename builds a download name like "flat-a_area_summary.csv".
func exportFilename(name, ext string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(name))
	return slug + "_area_summary." + ext
}
