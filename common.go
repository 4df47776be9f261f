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

import (
	"fmt"
	"math"
)

const (
	halfPi = math.Pi / 2
	twoPi  = math.Pi * 2
	fortPi = math.Pi / 4

	// epsLat is the tolerance for latitudes slightly beyond the poles.
	epsLat = 1.0e-12

	epsln = 1.0e-10
)

// adjlon wraps lon into (-pi, pi]. Longitudes already in range are
// returned unchanged.
func adjlon(lon float64) float64 {
	if math.Abs(lon) <= math.Pi {
		return lon
	}
	for lon > math.Pi {
		lon -= twoPi
	}
	for lon <= -math.Pi {
		lon += twoPi
	}
	return lon
}

// msfnz computes the constant small m for a latitude with the given
// sine and cosine.
func msfnz(eccent, sinphi, cosphi float64) float64 {
	con := eccent * sinphi
	return cosphi / math.Sqrt(1-con*con)
}

// tsfnz computes the constant small t for a latitude.
func tsfnz(eccent, phi, sinphi float64) float64 {
	con := eccent * sinphi
	com := 0.5 * eccent
	con = math.Pow((1-con)/(1+con), com)
	return math.Tan(0.5*(halfPi-phi)) / con
}

// phi2z computes the latitude angle from the isometric quantity ts by
// fixed-point iteration.
func phi2z(eccent, ts float64) (float64, error) {
	eccnth := 0.5 * eccent
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i <= 15; i++ {
		con := eccent * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= 1.0e-10 {
			return phi, nil
		}
	}
	return math.NaN(), fmt.Errorf("proj: phi2z has no convergence")
}
