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

import "math"

// A GeocLat converts between geographic (ellipsoid-normal) and
// geocentric latitude. Fwd converts geographic to geocentric, Inv
// geocentric to geographic. Longitude, height and time pass through
// untouched.
type GeocLat struct {
	Ellps Ellipsoid
}

func (g *GeocLat) Trans(dir Direction, c Coord) Coord {
	if c[0] == HugeVal {
		return c
	}
	oneEs := 1 - g.Ellps.Es
	out := c
	phi := c[1]
	// The poles are fixed points of the conversion; tan is unusable
	// there.
	if math.Abs(math.Abs(phi)-halfPi) <= epsLat {
		return out
	}
	if dir == Fwd {
		out[1] = math.Atan(oneEs * math.Tan(phi))
	} else {
		out[1] = math.Atan(math.Tan(phi) / oneEs)
	}
	return out
}
