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
	"github.com/ctessum/geom"
)

// InverseTransformer adapts the pipeline's 2D inverse transformation
// to a point-wise transform function. The returned function is
// assignable to the github.com/ctessum/geom/proj Transformer type, so
// it can be passed directly to the Transform methods of
// github.com/ctessum/geom geometries.
func (p *Pipeline) InverseTransformer() func(x, y float64) (float64, float64, error) {
	return func(x, y float64) (float64, float64, error) {
		lp, err := p.Inverse(XY{X: x, Y: y})
		if err != nil {
			return HugeVal, HugeVal, err
		}
		return lp.Lam, lp.Phi, nil
	}
}

// TransformGeom applies the pipeline's inverse transformation to
// every vertex of g.
func (p *Pipeline) TransformGeom(g geom.Geom) (geom.Geom, error) {
	return g.Transform(p.InverseTransformer())
}
