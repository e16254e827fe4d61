package geo

import "math"

const (
	// sphereDiameter is twice the 6373 km sphere radius used for city distances.
	sphereDiameter = 12746
	// milesPerUnit converts sphere units to the miles reported to users.
	milesPerUnit = 0.612
)

// Coord is a point in degrees.
type Coord struct {
	Lon float64
	Lat float64
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Distance returns the haversine great-circle distance between a and b in miles.
func Distance(a, b Coord) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	d := sphereDiameter * math.Asin(math.Sqrt(h))
	return milesPerUnit * d
}
