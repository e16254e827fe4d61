package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv3903/citygraph/internal/model"
)

const sample = "City\tLongitude\tLatitude\n" +
	"New York\t-73.94\t40.67\n" +
	"Los Angeles\t  -118.41\t34.11\r\n" +
	"\n" +
	"Chicago\t\t-87.68\t41.84\n"

func TestRead(t *testing.T) {
	locs, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []model.Location{
		{Name: "New York", Lon: -73.94, Lat: 40.67},
		{Name: "Los Angeles", Lon: -118.41, Lat: 34.11},
		{Name: "Chicago", Lon: -87.68, Lat: 41.84},
	}, locs)
}

func TestReadHeaderOnly(t *testing.T) {
	locs, err := Read(strings.NewReader("City\tLongitude\tLatitude\n"))
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing field", "Boston\t-71.02"},
		{"space separated", "Boston -71.02 42.33"},
		{"bad longitude", "Boston\twest\t42.33"},
		{"bad latitude", "Boston\t-71.02\tnorth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader("header\n" + tt.line + "\n"))
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, 2, pe.Line)
			assert.Equal(t, tt.line, pe.Text)
		})
	}
}

func TestReadMalformedNumberUnwraps(t *testing.T) {
	_, err := Read(strings.NewReader("header\nBoston\tx\t42\n"))
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	locs, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, locs, 3)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
