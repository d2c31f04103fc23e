package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(800, 600, 800, 600)

	// Should be centered on world
	if cam.X != 400 || cam.Y != 300 {
		t.Errorf("expected camera at (400, 300), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestIdentityAtUnitZoom(t *testing.T) {
	cam := New(800, 600, 800, 600)

	// A window-sized world at zoom 1 maps pixels to world units directly
	sx, sy := cam.WorldToScreen(123, 456)
	if sx != 123 || sy != 456 {
		t.Errorf("expected (123, 456), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	cam.SetZoom(2.5)
	cam.Pan(40, -30)

	testCases := []struct{ sx, sy float32 }{
		{640, 360}, // center
		{100, 100}, // top-left
		{1200, 600},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPanClampsToWorld(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.Pan(-5000, 5000)

	if cam.X != 0 || cam.Y != 600 {
		t.Errorf("expected camera clamped to (0, 600), got (%f, %f)", cam.X, cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(800, 600, 800, 600)

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}
}

func TestResizeFollowsWorld(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.Resize(400, 300, true)

	if cam.WorldW != 400 || cam.WorldH != 300 {
		t.Errorf("expected world 400x300, got %fx%f", cam.WorldW, cam.WorldH)
	}
	if cam.X > 400 || cam.Y > 300 {
		t.Errorf("camera center (%f, %f) outside resized world", cam.X, cam.Y)
	}

	cam.Resize(1000, 1000, false)
	if cam.WorldW != 400 {
		t.Error("world changed without followWorld")
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(800, 600, 800, 600)

	if !cam.IsVisible(400, 300, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(2000, 2000, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(-50, 300, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.X = 100
	cam.Y = 500
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 400 || cam.Y != 300 {
		t.Errorf("expected position (400, 300), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}
