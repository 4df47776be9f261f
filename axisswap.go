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

// An AxisSwap reorders and flips the first three coordinate slots
// between the internal easting/northing/up convention and an external
// axis convention given as a three character string, one of
// 'e', 'w', 'n', 's', 'u', 'd' per axis. "enu" is the identity.
type AxisSwap struct {
	Axis string
}

// axisSlot maps an axis character to the internal slot it draws from
// and the sign applied. ok is false for unknown characters.
func axisSlot(a byte) (slot int, sign float64, ok bool) {
	switch a {
	case 'e':
		return 0, 1, true
	case 'w':
		return 0, -1, true
	case 'n':
		return 1, 1, true
	case 's':
		return 1, -1, true
	case 'u':
		return 2, 1, true
	case 'd':
		return 2, -1, true
	}
	return 0, 0, false
}

// Trans applies the axis swap. Fwd converts internal enu order to the
// external convention; Inv converts external order back to enu.
func (a *AxisSwap) Trans(dir Direction, c Coord) Coord {
	if c[0] == HugeVal {
		return c
	}
	if len(a.Axis) != 3 {
		return CoordError()
	}
	out := c
	for i := 0; i < 3; i++ {
		slot, sign, ok := axisSlot(a.Axis[i])
		if !ok {
			return CoordError()
		}
		if dir == Fwd {
			out[i] = sign * c[slot]
		} else {
			out[slot] = sign * c[i]
		}
	}
	return out
}
