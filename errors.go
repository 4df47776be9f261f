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

import "errors"

var (
	// ErrInvalidCoord is returned when the coordinate entering a
	// pipeline stage already holds the error sentinel.
	ErrInvalidCoord = errors.New("proj: invalid x or y coordinate")

	// ErrLatLonLimit is returned when an angular input coordinate
	// exceeds the latitude or longitude validity limits.
	ErrLatLonLimit = errors.New("proj: latitude or longitude exceeded limits")

	// ErrNoInverse is returned when a pipeline has no inverse
	// operation configured for any dimensionality.
	ErrNoInverse = errors.New("proj: no inverse operation")
)

// A StageError reports a sub-transformation or inverse operation that
// returned the error sentinel. The cause of the failure is internal to
// the stage and opaque to the pipeline.
type StageError struct {
	Stage string
}

func (e *StageError) Error() string {
	return "proj: " + e.Stage + " returned an invalid coordinate"
}
