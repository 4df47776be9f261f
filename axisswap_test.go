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

import "testing"

func TestAxisSwap(t *testing.T) {
	in := Coord{1, 2, 3, 4}
	cases := []struct {
		axis string
		want Coord
	}{
		{"enu", Coord{1, 2, 3, 4}},
		{"neu", Coord{2, 1, 3, 4}},
		{"wsu", Coord{-1, -2, 3, 4}},
		{"end", Coord{1, 2, -3, 4}},
		{"nwu", Coord{2, -1, 3, 4}},
	}
	for _, c := range cases {
		a := &AxisSwap{Axis: c.axis}
		have := a.Trans(Fwd, in)
		if have != c.want {
			t.Errorf("%s forward: want %v but have %v", c.axis, c.want, have)
		}
		back := a.Trans(Inv, have)
		if back != in {
			t.Errorf("%s round trip: want %v but have %v", c.axis, in, back)
		}
	}
}

func TestAxisSwapUnknownAxis(t *testing.T) {
	a := &AxisSwap{Axis: "abc"}
	have := a.Trans(Fwd, Coord{1, 2, 3, 4})
	if have[0] != HugeVal {
		t.Errorf("want sentinel but have %v", have)
	}

	short := &AxisSwap{Axis: "en"}
	have = short.Trans(Fwd, Coord{1, 2, 3, 4})
	if have[0] != HugeVal {
		t.Errorf("short axis string: want sentinel but have %v", have)
	}
}

func TestAxisSwapSentinelPassThrough(t *testing.T) {
	a := &AxisSwap{Axis: "neu"}
	in := CoordError()
	if have := a.Trans(Fwd, in); have != in {
		t.Errorf("want sentinel passed through but have %v", have)
	}
}
