package shell

import "testing"

func TestResolveKey(t *testing.T) {
	tests := []struct {
		key    string
		ctrl   bool
		typing bool
		want   Action
		ok     bool
	}{
		{"ArrowRight", false, false, ActionNextPage, true},
		{"j", false, false, ActionNextPage, true},
		{"ArrowLeft", false, false, ActionPrevPage, true},
		{"k", false, false, ActionPrevPage, true},
		{"Enter", true, false, ActionApproveAndNext, true},
		{"Enter", false, false, "", false},
		{"+", false, false, ActionZoomIn, true},
		{"=", false, false, ActionZoomIn, true},
		{"-", false, false, ActionZoomOut, true},
		{"e", true, false, ActionOpenExport, true},
		{"e", false, false, "", false},
		{"j", false, true, "", false},
		{"x", false, false, "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveKey(tt.key, tt.ctrl, tt.typing)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ResolveKey(%q, ctrl=%v, typing=%v) = (%q, %v), want (%q, %v)",
				tt.key, tt.ctrl, tt.typing, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIntentFor(t *testing.T) {
	if in, ok := IntentFor(ActionApproveAndNext); !ok || in.Kind != IntentApproveAndNext {
		t.Errorf("IntentFor(approve) = %+v, %v", in, ok)
	}
	if _, ok := IntentFor(ActionZoomIn); ok {
		t.Error("zoom mapped to an intent")
	}
}

func TestKeymap_ReturnsCopy(t *testing.T) {
	km := Keymap()
	km[0].Action = "mutated"
	if Keymap()[0].Action == "mutated" {
		t.Error("Keymap() exposes internal slice")
	}
}

func TestZoom(t *testing.T) {
	z := NewZoom()
	if z.Level() != 100 || z.Scale() != 1 {
		t.Fatalf("initial zoom = %d", z.Level())
	}
	for i := 0; i < 10; i++ {
		z.In()
	}
	if z.Level() != ZoomMax {
		t.Errorf("zoom after many In() = %d, want %d", z.Level(), ZoomMax)
	}
	for i := 0; i < 10; i++ {
		z.Out()
	}
	if z.Level() != ZoomMin {
		t.Errorf("zoom after many Out() = %d, want %d", z.Level(), ZoomMin)
	}
	if z.Reset() != ZoomDefault {
		t.Error("Reset() did not return to 100")
	}
	if !z.Apply(ActionZoomOut) || z.Level() != 75 {
		t.Errorf("Apply(zoomOut) level = %d", z.Level())
	}
	if z.Apply(ActionNextPage) {
		t.Error("Apply(nextPage) reported a zoom action")
	}
}

func TestZoomAt(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{0, ZoomDefault},
		{125, 125},
		{10, ZoomMin},
		{900, ZoomMax},
	}
	for _, tt := range tests {
		if got := ZoomAt(tt.level).Level(); got != tt.want {
			t.Errorf("ZoomAt(%d).Level() = %d, want %d", tt.level, got, tt.want)
		}
	}
	z := ZoomAt(ZoomMax)
	if !z.Apply(ActionZoomIn) || z.Level() != ZoomMax {
		t.Errorf("zoom in at max = %d, want %d", z.Level(), ZoomMax)
	}
}
