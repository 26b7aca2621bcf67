package config

import "testing"

func TestGeometry_Defaults(t *testing.T) {
	g, err := Geometry()
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	if g.MaxReach != 22 || g.MinReach != 2 {
		t.Errorf("default geometry: got %+v", g)
	}
}

func TestGeometry_FromEnv(t *testing.T) {
	t.Setenv("ARM_LOWER_LENGTH", "8")
	t.Setenv("ARM_UPPER_LENGTH", "6")

	g, err := Geometry()
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	if g.MaxReach != 14 || g.MinReach != 2 {
		t.Errorf("geometry from env: got %+v", g)
	}
}

func TestGeometry_RejectsMalformed(t *testing.T) {
	t.Setenv("ARM_BASE_HEIGHT", "tall")

	if _, err := Geometry(); err == nil {
		t.Error("expected error for non-numeric length")
	}
}

func TestGeometry_RejectsNegative(t *testing.T) {
	t.Setenv("ARM_UPPER_LENGTH", "-3")

	if _, err := Geometry(); err == nil {
		t.Error("expected error for negative length")
	}
}
