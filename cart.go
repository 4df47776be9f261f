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

// A Cart converts between ellipsoidal (longitude, latitude, height)
// and cartesian geocentric (X, Y, Z) coordinates on one ellipsoid.
// Fwd is ellipsoidal to cartesian; Inv is cartesian to ellipsoidal.
type Cart struct {
	Ellps Ellipsoid
}

// Trans applies the conversion. The time slot passes through
// untouched.
func (ct *Cart) Trans(dir Direction, c Coord) Coord {
	if c[0] == HugeVal {
		return c
	}
	if dir == Fwd {
		return ct.geodeticToGeocentric(c)
	}
	return ct.geocentricToGeodetic(c)
}

func (ct *Cart) geodeticToGeocentric(c Coord) Coord {
	lam, phi, h := c[0], c[1], c[2]

	// Don't blow up if the latitude is slightly out of range, it may
	// just be a rounding issue.
	switch {
	case phi < -halfPi && phi > -1.001*halfPi:
		phi = -halfPi
	case phi > halfPi && phi < 1.001*halfPi:
		phi = halfPi
	case phi < -halfPi || phi > halfPi:
		return CoordError()
	}
	if lam > math.Pi {
		lam -= twoPi
	}

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	sin2Phi := sinPhi * sinPhi
	rn := ct.Ellps.A / math.Sqrt(1-ct.Ellps.Es*sin2Phi)

	out := c
	out[0] = (rn + h) * cosPhi * math.Cos(lam)
	out[1] = (rn + h) * cosPhi * math.Sin(lam)
	out[2] = (rn*(1-ct.Ellps.Es) + h) * sinPhi
	return out
}

// geocentricToGeodetic uses the iterative algorithm developed by the
// Institut fuer Erdmessung, University of Hannover.
func (ct *Cart) geocentricToGeodetic(c Coord) Coord {
	const (
		genau   = 1e-12
		genau2  = genau * genau
		maxiter = 30
	)
	x, y, z := c[0], c[1], c[2]
	a, b, es := ct.Ellps.A, ct.Ellps.B, ct.Ellps.Es

	out := c
	pd := math.Sqrt(x*x + y*y)   // distance from the minor axis
	rr := math.Sqrt(pd*pd + z*z) // distance from the center

	var lam float64
	if pd/a < genau {
		// On the axis: longitude is arbitrary.
		lam = 0
		if rr/a < genau {
			out[0] = 0
			out[1] = halfPi
			out[2] = -b
			return out
		}
	} else {
		lam = math.Atan2(y, x)
	}

	ctr := z / rr  // sin of the geocentric latitude
	str := pd / rr // cos of the geocentric latitude
	rx := 1 / math.Sqrt(1-es*(2-es)*str*str)
	cphi0 := str * (1 - es) * rx
	sphi0 := ctr * rx

	var cphi, sphi, h float64
	for iter := 0; ; iter++ {
		rn := a / math.Sqrt(1-es*sphi0*sphi0)
		h = pd*cphi0 + z*sphi0 - rn*(1-es*sphi0*sphi0)
		rk := es * rn / (rn + h)
		rx = 1 / math.Sqrt(1-rk*(2-rk)*str*str)
		cphi = str * (1 - rk) * rx
		sphi = ctr * rx
		sdphi := sphi*cphi0 - cphi*sphi0
		cphi0 = cphi
		sphi0 = sphi
		if !(sdphi*sdphi > genau2 && iter < maxiter) {
			break
		}
	}

	out[0] = lam
	out[1] = math.Atan(sphi / math.Abs(cphi))
	out[2] = h
	return out
}
