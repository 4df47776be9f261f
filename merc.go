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

// A Mercator holds the setup of a Mercator projection, spherical or
// ellipsoidal.
//
// The projection follows the pipeline operation convention: it works
// in raw plane meters with no false origin, and longitudes are
// relative to the central meridian. False origin, unit scaling and
// meridian handling belong to the pipeline's prepare and finalize
// steps.
type Mercator struct {
	Ellps Ellipsoid
	K0    float64
}

// NewMercator returns a Mercator projection on the given ellipsoid.
// A zero k0 defaults to one; to project with a latitude of true
// scale, pass k0 = msfnz for that latitude instead.
func NewMercator(e Ellipsoid, k0 float64) *Mercator {
	if k0 == 0 {
		k0 = 1
	}
	return &Mercator{Ellps: e, K0: k0}
}

// Forward maps an angular coordinate to plane meters. Latitudes at
// the poles have no image; the sentinel coordinate is returned.
func (m *Mercator) Forward(lp LP) XY {
	if math.Abs(math.Abs(lp.Phi)-halfPi) <= epsln {
		return XY{X: HugeVal, Y: HugeVal}
	}
	ak := m.Ellps.A * m.K0
	if m.Ellps.Spherical() {
		return XY{
			X: ak * lp.Lam,
			Y: ak * math.Log(math.Tan(fortPi+0.5*lp.Phi)),
		}
	}
	ts := tsfnz(m.Ellps.E, lp.Phi, math.Sin(lp.Phi))
	return XY{
		X: ak * lp.Lam,
		Y: -ak * math.Log(ts),
	}
}

// Inverse maps plane meters back to an angular coordinate. It matches
// the pipeline's 2D inverse operation slot.
func (m *Mercator) Inverse(xy XY, _ *Pipeline) LP {
	if xy.X == HugeVal {
		return LP{Lam: HugeVal, Phi: HugeVal}
	}
	ak := m.Ellps.A * m.K0
	var phi float64
	if m.Ellps.Spherical() {
		phi = halfPi - 2*math.Atan(math.Exp(-xy.Y/ak))
	} else {
		ts := math.Exp(-xy.Y / ak)
		var err error
		phi, err = phi2z(m.Ellps.E, ts)
		if err != nil {
			return LP{Lam: HugeVal, Phi: HugeVal}
		}
	}
	return LP{Lam: xy.X / ak, Phi: phi}
}
