package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/evcraddock/carpet/internal/area"
	"github.com/evcraddock/carpet/internal/calc"
	"github.com/evcraddock/carpet/internal/property"
)

type formRoom struct {
	Index int
	Name  string
	Input area.RoomInput
}

type formCategory struct {
	Category area.Category
	Key      string
	Count    int
	Rooms    []formRoom
}

type pageData struct {
	Categories []formCategory
	Result     *calc.Result
	Name       string
	Flash      string
	Error      string
}

type compareData struct {
	Rows []property.Comparison
}

// handleForm renders the empty calculator form.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "index.html", pageData{Categories: formCategories(area.Input{})})
}

// handleFormPost recomputes everything from the submitted form.
func (s *Server) handleFormPost(w http.ResponseWriter, r *http.Request) {
	in, err := parseFormInput(r)
	if err != nil {
		s.render(w, http.StatusBadRequest, "index.html", pageData{Categories: formCategories(in), Error: err.Error()})
		return
	}

	data := pageData{Categories: formCategories(in), Name: strings.TrimSpace(r.FormValue("name"))}
	res, err := calc.Run(in)
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, "index.html", data)
		return
	}

	data.Result = res
	s.render(w, http.StatusOK, "index.html", data)
}

// handleSavePost saves the submitted rooms under the submitted name.
func (s *Server) handleSavePost(w http.ResponseWriter, r *http.Request) {
	in, err := parseFormInput(r)
	if err != nil {
		s.render(w, http.StatusBadRequest, "index.html", pageData{Categories: formCategories(in), Error: err.Error()})
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	data := pageData{Categories: formCategories(in), Name: name}

	res, err := calc.Run(in)
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, "index.html", data)
		return
	}
	data.Result = res

	p, err := property.New(name, res.Rooms)
	if err != nil {
		data.Error = fmt.Sprintf("Cannot save: %v", err)
		s.render(w, http.StatusBadRequest, "index.html", data)
		return
	}

	if err := s.store.Save(p.Name, p); err != nil {
		slog.Error("saving property", "name", p.Name, "error", err)
		data.Error = fmt.Sprintf("Could not save %q: %v", p.Name, err)
		s.render(w, http.StatusInternalServerError, "index.html", data)
		return
	}

	slog.Info("property saved", "name", p.Name, "rooms", len(p.Rooms), "total_sqft", p.TotalSqft)
	data.Flash = fmt.Sprintf("Saved %q.", p.Name)
	s.render(w, http.StatusOK, "index.html", data)
}

// handleSummaryCSVPost downloads the room table of the submitted form.
func (s *Server) handleSummaryCSVPost(w http.ResponseWriter, r *http.Request) {
	in, err := parseFormInput(r)
	if err != nil {
		s.render(w, http.StatusBadRequest, "index.html", pageData{Categories: formCategories(in), Error: err.Error()})
		return
	}

	rooms, err := area.BuildRooms(in)
	if err != nil {
		s.render(w, http.StatusBadRequest, "index.html", pageData{Categories: formCategories(in), Error: err.Error()})
		return
	}

	writeCSV(w, area.SummaryFilename, rooms)
}

// handleCompare renders every stored property side by side.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "compare.html", compareData{Rows: property.Compare(s.store.ListAll())})
}

// render executes a full page template.
func (s *Server) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("rendering template", "template", name, "error", err)
	}
}

// parseFormInput reads room counts and dimensions from form fields named
// count-{key} and {key}-{i}-{lft|lin|bft|bin}. Blank fields are zero.
func parseFormInput(r *http.Request) (area.Input, error) {
	var in area.Input
	if err := r.ParseForm(); err != nil {
		return in, &area.ValidationError{Field: "form", Reason: "could not be parsed"}
	}

	for _, cat := range area.Categories() {
		key := categoryKey(cat)
		count, err := formInt(r, "count-"+key)
		if err != nil {
			return in, err
		}

		ci := area.CategoryInput{Category: cat, Count: count}
		for i := 1; i <= count && i <= area.MaxRoomsPerCategory; i++ {
			var vals [4]float64
			for j, suffix := range []string{"lft", "lin", "bft", "bin"} {
				v, err := formFloat(r, fmt.Sprintf("%s-%d-%s", key, i, suffix))
				if err != nil {
					return in, err
				}
				vals[j] = v
			}
			ci.Rooms = append(ci.Rooms, area.RoomInput{
				Length:  area.Dimension{Feet: vals[0], Inches: vals[1]},
				Breadth: area.Dimension{Feet: vals[2], Inches: vals[3]},
			})
		}
		in.Categories = append(in.Categories, ci)
	}

	return in, nil
}

// formCategories shapes the input for the template, one block per category.
func formCategories(in area.Input) []formCategory {
	byCategory := make(map[area.Category]area.CategoryInput, len(in.Categories))
	for _, c := range in.Categories {
		byCategory[c.Category] = c
	}

	out := make([]formCategory, 0, len(area.Categories()))
	for _, cat := range area.Categories() {
		ci := byCategory[cat]
		fc := formCategory{Category: cat, Key: categoryKey(cat), Count: ci.Count}

		shown := ci.Count
		if shown > area.MaxRoomsPerCategory {
			shown = area.MaxRoomsPerCategory
		}
		for i := 1; i <= shown; i++ {
			var ri area.RoomInput
			if i <= len(ci.Rooms) {
				ri = ci.Rooms[i-1]
			}
			fc.Rooms = append(fc.Rooms, formRoom{
				Index: i,
				Name:  fmt.Sprintf("%s %d", cat.Prefix(), i),
				Input: ri,
			})
		}
		out = append(out, fc)
	}
	return out
}

func categoryKey(c area.Category) string {
	return strings.ToLower(c.Prefix())
}

func formInt(r *http.Request, field string) (int, error) {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &area.ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a whole number", v)}
	}
	return n, nil
}

func formFloat(r *http.Request, field string) (float64, error) {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !area.IsFinite(f) {
		return 0, &area.ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a number", v)}
	}
	return f, nil
}

// isValidation reports whether err was caused by bad user input.
func isValidation(err error) bool {
	var aerr *area.ValidationError
	var perr *property.ValidationError
	return errors.As(err, &aerr) || errors.As(err, &perr)
}
