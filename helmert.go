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

// secToRad converts arc seconds to radians.
const secToRad = 4.84813681109535993589914102357e-6

// A Helmert applies a 7-parameter datum shift in cartesian geocentric
// space. Fwd moves a coordinate from the local frame into the global
// (WGS84) frame, Inv moves it back. Parameters are stored ready to
// use: translations in meters, rotations in radians, scale as a
// factor.
type Helmert struct {
	Dx, Dy, Dz float64
	Rx, Ry, Rz float64
	S          float64
}

// NewHelmert builds a Helmert stage from parameters in their
// conventional units: translations in meters, rotations in arc
// seconds, scale in parts per million.
func NewHelmert(dx, dy, dz, rx, ry, rz, s float64) *Helmert {
	return &Helmert{
		Dx: dx, Dy: dy, Dz: dz,
		Rx: rx * secToRad, Ry: ry * secToRad, Rz: rz * secToRad,
		S: s/1e6 + 1,
	}
}

// Trans applies the shift. The time slot passes through untouched.
func (h *Helmert) Trans(dir Direction, c Coord) Coord {
	if c[0] == HugeVal {
		return c
	}
	x, y, z := c[0], c[1], c[2]
	out := c
	if dir == Fwd {
		out[0] = h.S*(x-h.Rz*y+h.Ry*z) + h.Dx
		out[1] = h.S*(h.Rz*x+y-h.Rx*z) + h.Dy
		out[2] = h.S*(-h.Ry*x+h.Rx*y+z) + h.Dz
		return out
	}
	xt := (x - h.Dx) / h.S
	yt := (y - h.Dy) / h.S
	zt := (z - h.Dz) / h.S
	out[0] = xt + h.Rz*yt - h.Ry*zt
	out[1] = -h.Rz*xt + yt + h.Rx*zt
	out[2] = h.Ry*xt - h.Rx*yt + zt
	return out
}
