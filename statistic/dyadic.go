package statistic

import (
	"math"

	"github.com/katalvlaran/ergm/graph"
)

const earthRadiusKm = 6371.0

// NewGeoDistance binds per-node latitude/longitude accessors (degrees) to
// the great-circle (haversine) distance statistic, in kilometres.
func NewGeoDistance(lat, lon func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return haversineKm(lat(i), lon(i), lat(j), lon(j))
	}
}

// NewLogGeoDistance is NewGeoDistance's log1p-transformed variant, used to
// temper the influence of long-range dyads on the estimator.
func NewLogGeoDistance(lat, lon func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return math.Log1p(haversineKm(lat(i), lon(i), lat(j), lon(j)))
	}
}

// NewEuclideanDistance binds per-node planar coordinates to the Euclidean
// distance statistic.
func NewEuclideanDistance(x, y func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		dx := x(i) - x(j)
		dy := y(i) - y(j)
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// haversineKm is the standard great-circle distance formula between two
// lat/lon pairs given in degrees.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	phi1, phi2 := toRad(lat1), toRad(lat2)
	dphi := toRad(lat2 - lat1)
	dlambda := toRad(lon2 - lon1)
	a := math.Sin(dphi/2)*math.Sin(dphi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dlambda/2)*math.Sin(dlambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
