package geometry

import "testing"

func TestPlayerOtherAndString(t *testing.T) {
	if Light.Other() != Dark {
		t.Error("Light.Other() should be Dark")
	}
	if Dark.Other() != Light {
		t.Error("Dark.Other() should be Light")
	}
	if Light.String() != "Light" || Dark.String() != "Dark" {
		t.Errorf("unexpected Player.String() values: %q, %q", Light.String(), Dark.String())
	}
}

func TestBellPathsLength(t *testing.T) {
	light := BellPaths.Get(Light)
	dark := BellPaths.Get(Dark)
	if len(light) != 14 {
		t.Errorf("Bell light path length = %d, want 14", len(light))
	}
	if len(light) != len(dark) {
		t.Errorf("Bell light/dark path lengths differ: %d vs %d", len(light), len(dark))
	}
}

func TestPathPairStartEnd(t *testing.T) {
	start := BellPaths.Start(Light)
	end := BellPaths.End(Light)
	withEnds := BellPaths.GetWithEnds(Light)
	if start != withEnds[0] {
		t.Errorf("Start() = %s, want %s", start, withEnds[0])
	}
	if end != withEnds[len(withEnds)-1] {
		t.Errorf("End() = %s, want %s", end, withEnds[len(withEnds)-1])
	}
}

func TestPathPairIsEquivalent(t *testing.T) {
	if !BellPaths.IsEquivalent(BellPaths) {
		t.Error("a path pair should be equivalent to itself")
	}
	if BellPaths.IsEquivalent(MastersPaths) {
		t.Error("Bell and Masters paths diverge and should not be equivalent")
	}
}

func TestAllVariantPathsMirrorAcrossCenterColumn(t *testing.T) {
	variants := []PathPair{BellPaths, MastersPaths, MurrayPaths, SkiriukPaths, AsebPaths}
	for _, p := range variants {
		light := p.Get(Light)
		dark := p.Get(Dark)
		if len(light) != len(dark) {
			t.Errorf("%s: light/dark path lengths differ", p.Name())
			continue
		}
		for i := range light {
			if light[i].Y() != dark[i].Y() {
				t.Errorf("%s: path index %d rows differ: light %s vs dark %s", p.Name(), i, light[i], dark[i])
			}
		}
	}
}
