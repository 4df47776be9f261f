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

// An Ellipsoid holds the defining and derived parameters of a
// reference ellipsoid.
type Ellipsoid struct {
	Name string
	A    float64 // semimajor axis [m]
	B    float64 // semiminor axis [m]
	Rf   float64 // reciprocal flattening
	Es   float64 // first eccentricity squared
	E    float64 // first eccentricity
	Ra   float64 // reciprocal of the semimajor axis
}

type ellipsoidDef struct {
	a, b, rf float64
	name     string
}

var ellipsoidDefs = map[string]ellipsoidDef{
	"WGS84":  {a: 6378137.0, rf: 298.257223563, name: "WGS 84"},
	"GRS80":  {a: 6378137.0, rf: 298.257222101, name: "GRS 1980(IUGG, 1980)"},
	"intl":   {a: 6378388.0, rf: 297., name: "International 1909 (Hayford)"},
	"clrk66": {a: 6378206.4, b: 6356583.8, name: "Clarke 1866"},
	"airy":   {a: 6377563.396, b: 6356256.910, name: "Airy 1830"},
	"bessel": {a: 6377397.155, rf: 299.1528128, name: "Bessel 1841"},
	"sphere": {a: 6370997.0, b: 6370997.0, name: "Normal Sphere (r=6370997)"},
}

// NewEllipsoid looks up a named ellipsoid and derives its constants.
func NewEllipsoid(name string) (Ellipsoid, error) {
	def, ok := ellipsoidDefs[name]
	if !ok {
		return Ellipsoid{}, fmt.Errorf("proj: unknown ellipsoid %q", name)
	}
	e := Ellipsoid{Name: def.name, A: def.a, B: def.b, Rf: def.rf}
	e.deriveConstants()
	return e, nil
}

// deriveConstants fills in the parameters not given by the
// definition.
func (e *Ellipsoid) deriveConstants() {
	if e.Rf != 0 && e.B == 0 {
		f := 1 / e.Rf
		e.B = e.A * (1 - f)
	}
	if e.Rf == 0 && e.B != 0 && e.A != e.B {
		e.Rf = e.A / (e.A - e.B)
	}
	e.Es = 1 - (e.B*e.B)/(e.A*e.A)
	e.E = math.Sqrt(e.Es)
	e.Ra = 1 / e.A
}

// Spherical reports whether the ellipsoid is a sphere.
func (e Ellipsoid) Spherical() bool {
	return e.Es == 0
}
