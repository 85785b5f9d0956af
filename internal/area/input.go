package area

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MaxRoomsPerCategory is the largest room count accepted for one category.
const MaxRoomsPerCategory = 10

var validate = newValidator()

// newValidator returns a validator that also understands the "finite" tag
// for float fields.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return IsFinite(fl.Field().Float())
	}); err != nil {
		panic(fmt.Sprintf("registering finite validation: %v", err))
	}
	return v
}

// ValidationError reports an input value that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RoomInput is the pair of measurements entered for one room.
type RoomInput struct {
	Length  Dimension `json:"length" yaml:"length"`
	Breadth Dimension `json:"breadth" yaml:"breadth"`
}

// CategoryInput is the room count selected for one category and the
// measurements entered for those rooms. Rooms beyond len(Rooms) are unmeasured.
type CategoryInput struct {
	Category Category    `json:"category" yaml:"category"`
	Count    int         `json:"count" yaml:"count" validate:"gte=0,lte=10"`
	Rooms    []RoomInput `json:"rooms,omitempty" yaml:"rooms,omitempty" validate:"dive"`
}

// Input is everything the user entered on the form.
type Input struct {
	Categories []CategoryInput `json:"categories" yaml:"categories" validate:"dive"`
}

// Validate checks counts, categories and dimensions.
// Negative measurements are rejected; inches of 12 or more are accepted.
func (in Input) Validate() error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ValidationError{Field: fe.Namespace(), Reason: describeTag(fe)}
		}
		return fmt.Errorf("validating input: %w", err)
	}

	seen := make(map[Category]bool)
	for _, c := range in.Categories {
		if !c.Category.Valid() {
			return &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", c.Category)}
		}
		if seen[c.Category] {
			return &ValidationError{Field: "category", Reason: fmt.Sprintf("%s listed twice", c.Category)}
		}
		seen[c.Category] = true
		if len(c.Rooms) > c.Count {
			return &ValidationError{
				Field:  "rooms",
				Reason: fmt.Sprintf("%d measurements given for %d %s", len(c.Rooms), c.Count, c.Category),
			}
		}
	}

	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "finite":
		return "must be a finite number"
	case "gte":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	}
	return fmt.Sprintf("failed %s check", fe.Tag())
}

// BuildRooms validates the input and expands it into rooms, ordered by
// category display order and then by index.
func BuildRooms(in Input) ([]Room, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	byCategory := make(map[Category]CategoryInput, len(in.Categories))
	for _, c := range in.Categories {
		byCategory[c.Category] = c
	}

	var rooms []Room
	for _, cat := range Categories() {
		c, ok := byCategory[cat]
		if !ok {
			continue
		}
		for i := 1; i <= c.Count; i++ {
			var ri RoomInput
			if i <= len(c.Rooms) {
				ri = c.Rooms[i-1]
			}
			rooms = append(rooms, NewRoom(cat, i, ri.Length, ri.Breadth))
		}
	}

	return rooms, nil
}

// AddRoom appends a measured room to the input, raising the category count.
func (in *Input) AddRoom(category Category, length, breadth Dimension) {
	for i := range in.Categories {
		c := &in.Categories[i]
		if c.Category != category {
			continue
		}
		for len(c.Rooms) < c.Count {
			c.Rooms = append(c.Rooms, RoomInput{})
		}
		c.Rooms = append(c.Rooms, RoomInput{Length: length, Breadth: breadth})
		c.Count = len(c.Rooms)
		return
	}
	in.Categories = append(in.Categories, CategoryInput{
		Category: category,
		Count:    1,
		Rooms:    []RoomInput{{Length: length, Breadth: breadth}},
	})
}
