package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/carpet/internal/area"
)

// roomFlags holds the room input flags shared by calc and save.
type roomFlags struct {
	rooms []string
	file  string
}

func (f *roomFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.rooms, "room", "r", nil, "room as CATEGORY=LENGTHxBREADTH, e.g. bedroom=10'6x8 (repeatable)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML file with room counts and dimensions")
}

// input builds the form input from --file and then appends every --room.
func (f *roomFlags) input() (area.Input, error) {
	var in area.Input
	if f.file != "" {
		var err error
		in, err = readInputFile(f.file)
		if err != nil {
			return area.Input{}, err
		}
	}

	for _, spec := range f.rooms {
		cat, length, breadth, err := parseRoomSpec(spec)
		if err != nil {
			return area.Input{}, err
		}
		in.AddRoom(cat, length, breadth)
	}

	if err := in.Validate(); err != nil {
		return area.Input{}, err
	}
	return in, nil
}

// readInputFile parses a YAML document such as:
//
//	categories:
//	  - category: Bedrooms
//	    count: 2
//	    rooms:
//	      - length: {ft: 10, in: 6}
//	        breadth: {ft: 8}
func readInputFile(path string) (area.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return area.Input{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var in area.Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return area.Input{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i := range in.Categories {
		cat, err := area.ParseCategory(string(in.Categories[i].Category))
		if err != nil {
			return area.Input{}, fmt.Errorf("%s: %w", path, err)
		}
		in.Categories[i].Category = cat
	}
	return in, nil
}

// parseRoomSpec parses CATEGORY=LENGTHxBREADTH.
func parseRoomSpec(spec string) (area.Category, area.Dimension, area.Dimension, error) {
	catPart, dims, ok := strings.Cut(spec, "=")
	if !ok {
		return "", area.Dimension{}, area.Dimension{}, fmt.Errorf("invalid room %q: want CATEGORY=LENGTHxBREADTH", spec)
	}

	cat, err := area.ParseCategory(catPart)
	if err != nil {
		return "", area.Dimension{}, area.Dimension{}, fmt.Errorf("invalid room %q: %w", spec, err)
	}

	lengthPart, breadthPart, ok := strings.Cut(strings.ToLower(dims), "x")
	if !ok {
		return "", area.Dimension{}, area.Dimension{}, fmt.Errorf("invalid room %q: want LENGTHxBREADTH", spec)
	}

	length, err := area.ParseDimension(lengthPart)
	if err != nil {
		return "", area.Dimension{}, area.Dimension{}, fmt.Errorf("invalid length in %q: %w", spec, err)
	}
	breadth, err := area.ParseDimension(breadthPart)
	if err != nil {
		return "", area.Dimension{}, area.Dimension{}, fmt.Errorf("invalid breadth in %q: %w", spec, err)
	}

	return cat, length, breadth, nil
}
