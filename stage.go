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

// A Direction selects which way a Stage transforms.
type Direction int

// Directions.
const (
	Fwd Direction = 1
	Inv Direction = -1
)

// A Stage is one named transformation step of a pipeline: an axis
// swap, a grid shift, an ellipsoidal-cartesian converter or a Helmert
// shift. Stages follow the sentinel convention: a coordinate whose
// first slot equals HugeVal passes through unchanged, and any internal
// failure is reported by returning CoordError() rather than panicking.
type Stage interface {
	Trans(dir Direction, c Coord) Coord
}
