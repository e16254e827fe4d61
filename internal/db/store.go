package db

import (
	"context"
	"database/sql"

	"github.com/atharv3903/citygraph/internal/model"
)

// Store reads locations from MySQL. The graph itself is never written back.
type Store struct {
	DB *sql.DB
}

// Locations returns every row of the locations table in insertion order,
// which is the order edges are discovered in.
func (s Store) Locations(ctx context.Context) ([]model.Location, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT name, longitude, latitude
        FROM locations
        ORDER BY id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locs := make([]model.Location, 0, 64)

	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.Name, &l.Lon, &l.Lat); err != nil {
			return nil, err
		}
		locs = append(locs, l)
	}

	return locs, rows.Err()
}

// Names returns location names only.
func (s Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT name FROM locations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
