/*
Copyright (C) 2019 Regents of the University of Minnesota.
This file is part of Proj.

Proj is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Proj is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Proj.  If not, see <http://www.gnu.org/licenses/>.
*/

package proj

// IOUnits describes the coordinate convention on one side of a
// pipeline.
type IOUnits int

const (
	// UnitsWhatever passes coordinates through without unit handling.
	UnitsWhatever IOUnits = iota
	// UnitsAngular is longitude/latitude in radians.
	UnitsAngular
	// UnitsCartesian is true 3D geocentric coordinates.
	UnitsCartesian
	// UnitsProjected is plane coordinates in SI units.
	UnitsProjected
	// UnitsClassic is pre-SI plane coordinates scaled by the
	// semimajor axis.
	UnitsClassic
)

// A Pipeline holds the long-lived setup of one transformation
// pipeline. All fields are read-only during transformation calls, so a
// Pipeline may be shared freely between goroutines once assembled.
//
// InputUnits and OutputUnits are named from the point of view of the
// inverse transformation implemented here: InputUnits is the
// convention of the projected side the caller supplies, OutputUnits
// the convention of the angular side handed back.
type Pipeline struct {
	InputUnits, OutputUnits IOUnits

	// Unit scale factors and false origin of the plane coordinates.
	// VToMeter applies to the vertical axis.
	ToMeter, VToMeter float64
	X0, Y0, Z0        float64

	// Lam0 is the central meridian and FromGreenwich the offset of
	// the system zero meridian, both in radians. Ra is the reciprocal
	// of the ellipsoid semimajor axis, used for classic plane units.
	Lam0          float64
	FromGreenwich float64
	Ra            float64

	// Over suppresses wrapping of longitudes into (-pi, pi].
	Over bool
	// Geoc marks pipelines whose angular latitudes are geocentric;
	// the GeocLat stage must be set when Geoc is.
	Geoc bool
	// IsGeocent marks true geocentric pipelines, whose cartesian
	// input is converted to angular coordinates through Cart.
	IsGeocent bool

	SkipPrepare  bool
	SkipFinalize bool

	// Optional sub-transformation stages. A nil stage is simply not
	// applied. Cart, Helmert and CartWGS84 form the datum-shift
	// triple: when Helmert is set all three must be.
	AxisSwap   Stage
	HGridShift Stage
	VGridShift Stage
	Cart       Stage
	Helmert    Stage
	CartWGS84  Stage
	GeocLat    Stage

	// The inverse operations, one per dimensionality. Any may be nil,
	// but at least one must be set for the pipeline to be usable.
	Inv   func(XY, *Pipeline) LP
	Inv3D func(XYZ, *Pipeline) LPZ
	Inv4D func(Coord, *Pipeline) Coord
}

// NewPipeline returns a Pipeline with unit scale factors initialized
// to one.
func NewPipeline() *Pipeline {
	return &Pipeline{
		ToMeter:  1,
		VToMeter: 1,
	}
}
