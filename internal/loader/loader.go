// Package loader reads city coordinate files.
//
// The first line is a header. Every other line holds a name, a longitude and
// a latitude separated by whitespace that starts with a tab, so names may
// contain spaces:
//
//	City	Longitude	Latitude
//	New York	-73.94	40.67
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/atharv3903/citygraph/internal/model"
)

var fieldSep = regexp.MustCompile(`\t\s*`)

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadFile parses the coordinate file at path.
func ReadFile(path string) ([]model.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open coordinate file: %w", err)
	}
	defer f.Close()

	locs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return locs, nil
}

// Read parses records from r in file order.
func Read(r io.Reader) ([]model.Location, error) {
	sc := bufio.NewScanner(r)
	locs := []model.Location{}
	line := 0

	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		loc, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		locs = append(locs, loc)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return locs, nil
}

func parseLine(text string) (model.Location, error) {
	fields := fieldSep.Split(text, -1)
	if len(fields) < 3 {
		return model.Location{}, fmt.Errorf("want 3 tab-separated fields, got %d", len(fields))
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return model.Location{}, fmt.Errorf("longitude: %w", err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return model.Location{}, fmt.Errorf("latitude: %w", err)
	}
	return model.Location{Name: strings.TrimSpace(fields[0]), Lon: lon, Lat: lat}, nil
}
