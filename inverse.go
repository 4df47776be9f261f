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

// prepare validates an input coordinate and converts it from the
// pipeline's input unit convention to the internal angular/metric
// convention, applying axis handling and datum and meridian
// adjustments on the way.
func (p *Pipeline) prepare(c Coord) (Coord, error) {
	if c[0] == HugeVal {
		return CoordError(), ErrInvalidCoord
	}

	// Datum shifts choke unless they get a sensible 4D coordinate.
	if p.HGridShift != nil || p.Helmert != nil {
		if c[2] == HugeVal {
			c[2] = 0
		}
		if c[3] == HugeVal {
			c[3] = 0
		}
	}

	if p.AxisSwap != nil {
		c = p.AxisSwap.Trans(Inv, c)
	}

	if p.InputUnits == UnitsAngular {
		// Check for latitude or longitude over-range.
		t := math.Abs(c[1]) - halfPi
		if t > epsLat || c[0] > 10 || c[0] < -10 {
			return CoordError(), ErrLatLonLimit
		}

		// Clamp latitude to the -90..90 degree range.
		if c[1] > halfPi {
			c[1] = halfPi
		}
		if c[1] < -halfPi {
			c[1] = -halfPi
		}

		// If the input latitude is geocentric, convert to geographic.
		if p.Geoc && p.GeocLat != nil {
			c = p.GeocLat.Trans(Inv, c)
		}

		// Distance from the central meridian, taking the system zero
		// meridian into account.
		c[0] = (c[0] + p.FromGreenwich) - p.Lam0
		if !p.Over {
			c[0] = adjlon(c[0])
		}

		if p.HGridShift != nil {
			c = p.HGridShift.Trans(Fwd, c)
		} else if p.Helmert != nil {
			c = p.Cart.Trans(Fwd, c)      // Go cartesian in the local frame.
			c = p.Helmert.Trans(Fwd, c)   // Step into the global frame.
			c = p.CartWGS84.Trans(Inv, c) // Back to angular using the global ellipsoid.
		}
		if c[0] == HugeVal {
			return c, &StageError{Stage: "datum shift"}
		}
		if p.VGridShift != nil {
			c = p.VGridShift.Trans(Inv, c) // Go geometric from orthometric.
			if c[0] == HugeVal {
				return c, &StageError{Stage: "vertical grid shift"}
			}
		}
		return c, nil
	}

	switch p.InputUnits {
	case UnitsWhatever:
		return c, nil

	case UnitsCartesian:
		c[0] = p.ToMeter*c[0] - p.X0
		c[1] = p.ToMeter*c[1] - p.Y0
		c[2] = p.VToMeter*c[2] - p.Z0

		if p.IsGeocent && p.Cart != nil {
			c = p.Cart.Trans(Inv, c)
			if c[0] == HugeVal {
				return c, &StageError{Stage: "cartesian conversion"}
			}
		}
		return c, nil

	case UnitsProjected, UnitsClassic:
		c[0] = p.ToMeter*c[0] - p.X0
		c[1] = p.ToMeter*c[1] - p.Y0
		c[2] = p.VToMeter*c[2] - p.Z0
		if p.InputUnits == UnitsProjected {
			return c, nil
		}

		// Classic proj functions expect plane coordinates in units of
		// the semimajor axis. Multiplying by ra rather than dividing
		// by a: at least one legacy projection stomps on a and depends
		// on this exact multiplicative form to round-trip. Do not
		// rewrite as a division.
		c[0] *= p.Ra
		c[1] *= p.Ra
		return c, nil
	}

	// Unrecognized unit kind; indicates a misconfigured pipeline.
	return c, nil
}

// finalize mirrors prepare on the way out, completing meridian and
// datum adjustment and the geocentric latitude conversion for angular
// outputs.
func (p *Pipeline) finalize(c Coord) (Coord, error) {
	if c[0] == HugeVal {
		return CoordError(), ErrInvalidCoord
	}

	if p.OutputUnits == UnitsAngular {
		if p.InputUnits != UnitsAngular {
			// Re-add the central meridian and the system zero
			// meridian offset.
			c[0] = c[0] + p.FromGreenwich + p.Lam0
			if !p.Over {
				c[0] = adjlon(c[0])
			}

			if p.VGridShift != nil {
				c = p.VGridShift.Trans(Inv, c) // Go geometric from orthometric.
				if c[0] == HugeVal {
					return c, &StageError{Stage: "vertical grid shift"}
				}
			}
			if p.HGridShift != nil {
				c = p.HGridShift.Trans(Fwd, c)
			} else if p.Helmert != nil {
				c = p.Cart.Trans(Fwd, c)      // Go cartesian in the local frame.
				c = p.Helmert.Trans(Fwd, c)   // Step into the global frame.
				c = p.CartWGS84.Trans(Inv, c) // Back to angular using the global ellipsoid.
			}
			if c[0] == HugeVal {
				return c, &StageError{Stage: "datum shift"}
			}
		}

		// If the input latitude was geocentric, convert back.
		if p.Geoc && p.GeocLat != nil {
			c = p.GeocLat.Trans(Fwd, c)
		}
	}

	return c, nil
}

// invKind identifies one of the three inverse operation slots.
type invKind int

const (
	inv2D invKind = iota
	inv3D
	inv4D
)

// Preference orders for the three entry points. Each entry point
// prefers its own dimensionality and degrades to the nearest
// available one without fabricating precision: a lower-dimensional
// operation leaves the extra slots untouched.
var (
	invOrder2D = [3]invKind{inv2D, inv3D, inv4D}
	invOrder3D = [3]invKind{inv3D, inv4D, inv2D}
	invOrder4D = [3]invKind{inv4D, inv3D, inv2D}
)

// dispatch invokes the first configured inverse operation in the
// given preference order.
func (p *Pipeline) dispatch(c Coord, order [3]invKind) (Coord, error) {
	for _, k := range order {
		switch k {
		case inv2D:
			if p.Inv == nil {
				continue
			}
			c.SetLP(p.Inv(c.XY(), p))
		case inv3D:
			if p.Inv3D == nil {
				continue
			}
			c.SetLPZ(p.Inv3D(c.XYZ(), p))
		case inv4D:
			if p.Inv4D == nil {
				continue
			}
			c = p.Inv4D(c, p)
		}
		if c[0] == HugeVal {
			return CoordError(), &StageError{Stage: "inverse operation"}
		}
		return c, nil
	}
	return CoordError(), ErrNoInverse
}

// inverse runs the full inverse pipeline: prepare, dispatch to the
// best available inverse operation, finalize. The three public entry
// points differ only in coordinate shape and preference order.
func (p *Pipeline) inverse(c Coord, order [3]invKind) (Coord, error) {
	var err error
	if !p.SkipPrepare {
		c, err = p.prepare(c)
		if err != nil {
			return CoordError(), err
		}
	}
	if c[0] == HugeVal {
		return CoordError(), ErrInvalidCoord
	}

	c, err = p.dispatch(c, order)
	if err != nil {
		return CoordError(), err
	}

	if !p.SkipFinalize {
		c, err = p.finalize(c)
		if err != nil {
			return CoordError(), err
		}
	}
	return c, nil
}

// Inverse transforms a 2D plane coordinate to an angular coordinate.
// On failure the returned view holds HugeVal in every slot and the
// error identifies the failing check or stage.
func (p *Pipeline) Inverse(xy XY) (LP, error) {
	c, err := p.inverse(xy.Coord(), invOrder2D)
	if err != nil {
		return CoordError().LP(), err
	}
	return c.LP(), nil
}

// Inverse3D transforms a 3D coordinate to an angular coordinate with
// height. If only a 2D inverse operation is configured, the height
// passes through untouched.
func (p *Pipeline) Inverse3D(xyz XYZ) (LPZ, error) {
	c, err := p.inverse(xyz.Coord(), invOrder3D)
	if err != nil {
		return CoordError().LPZ(), err
	}
	return c.LPZ(), nil
}

// Inverse4D transforms a 4D coordinate. Slots not handled by the best
// available inverse operation pass through untouched.
func (p *Pipeline) Inverse4D(c Coord) (Coord, error) {
	out, err := p.inverse(c, invOrder4D)
	if err != nil {
		return CoordError(), err
	}
	return out, nil
}
