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

// Package proj implements the inverse leg of a coordinate
// transformation pipeline: it converts coordinates from a pipeline's
// projected, cartesian or legacy plane representation back to angular
// (longitude/latitude) coordinates, dispatching to whichever
// dimensionality of inverse operation the pipeline provides.
package proj

import "math"

// HugeVal marks a slot holding no valid value. Failed computations are
// signaled by storing HugeVal in the first coordinate slot; all stages
// test equality against this exact value rather than using a NaN
// predicate, so external sub-transforms must use it too.
var HugeVal = math.Inf(1)

// A Coord is a coordinate with four slots. The same four slots serve
// as (x, y, z, t) when the coordinate is cartesian or planar and as
// (lam, phi, z, t) when it is angular; the view accessors below all
// alias the underlying array.
type Coord [4]float64

// CoordError returns the error coordinate, with every slot set to
// HugeVal.
func CoordError() Coord {
	return Coord{HugeVal, HugeVal, HugeVal, HugeVal}
}

// An XY is a 2D planar view of a coordinate.
type XY struct {
	X, Y float64
}

// An LP is a 2D angular view of a coordinate: longitude and latitude
// in radians.
type LP struct {
	Lam, Phi float64
}

// An XYZ is a 3D cartesian view of a coordinate.
type XYZ struct {
	X, Y, Z float64
}

// An LPZ is a 3D angular view of a coordinate: longitude and latitude
// in radians plus height in meters.
type LPZ struct {
	Lam, Phi, Z float64
}

// An LPZT is a 4D angular view of a coordinate.
type LPZT struct {
	Lam, Phi, Z, T float64
}

func (c Coord) XY() XY     { return XY{X: c[0], Y: c[1]} }
func (c Coord) LP() LP     { return LP{Lam: c[0], Phi: c[1]} }
func (c Coord) XYZ() XYZ   { return XYZ{X: c[0], Y: c[1], Z: c[2]} }
func (c Coord) LPZ() LPZ   { return LPZ{Lam: c[0], Phi: c[1], Z: c[2]} }
func (c Coord) LPZT() LPZT { return LPZT{Lam: c[0], Phi: c[1], Z: c[2], T: c[3]} }

func (c *Coord) SetXY(v XY)   { c[0], c[1] = v.X, v.Y }
func (c *Coord) SetLP(v LP)   { c[0], c[1] = v.Lam, v.Phi }
func (c *Coord) SetXYZ(v XYZ) { c[0], c[1], c[2] = v.X, v.Y, v.Z }
func (c *Coord) SetLPZ(v LPZ) { c[0], c[1], c[2] = v.Lam, v.Phi, v.Z }

// Coord returns the view packed into a 4-slot coordinate, with the
// unused slots zeroed.
func (v XY) Coord() Coord { return Coord{v.X, v.Y, 0, 0} }

// Coord returns the view packed into a 4-slot coordinate, with the
// unused slots zeroed.
func (v XYZ) Coord() Coord { return Coord{v.X, v.Y, v.Z, 0} }
