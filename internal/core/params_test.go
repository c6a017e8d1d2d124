package core

import "testing"

func TestParameterSnapshotLinesAndLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Raster", Params: []Parameter{{Key: "image_size", Type: ParamTypeInt, Value: "600"}}},
		{Name: "Radii", Params: []Parameter{{Key: "mean_radius", Type: ParamTypeFloat, Value: "3"}}},
	}}

	lines := snap.Lines()
	if len(lines) != 2 || lines[0] != "Raster: image_size=600" || lines[1] != "Radii: mean_radius=3" {
		t.Fatalf("unexpected lines %q", lines)
	}

	p, ok := snap.Lookup("mean_radius")
	if !ok || p.Value != "3" {
		t.Fatalf("Lookup(mean_radius) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup of unknown key should fail")
	}
}
