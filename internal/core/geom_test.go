package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if a.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", a.Len())
	}
	if a.Dist(V(0, 0)) != 5 {
		t.Errorf("Dist() = %f, expected 5", a.Dist(V(0, 0)))
	}
	if a.Dot(b) != -5 {
		t.Errorf("Dot() = %f, expected -5", a.Dot(b))
	}
	if (Vec2{}).Normalized() != (Vec2{}) {
		t.Error("Normalized() of zero vector should be zero")
	}
}

func TestHeadings(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		dir     Vec2
	}{
		{"north", 0, V(0, 1)},
		{"east", 90, V(1, 0)},
		{"south", 180, V(0, -1)},
		{"west", 270, V(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromHeading(tc.heading)
			if got.Dist(tc.dir) > 1e-9 {
				t.Errorf("FromHeading(%f) = %v, expected %v", tc.heading, got, tc.dir)
			}
			if h := tc.dir.Heading(); math.Abs(h-tc.heading) > 1e-9 {
				t.Errorf("Heading() = %f, expected %f", h, tc.heading)
			}
		})
	}
}

func TestAngleHelpers(t *testing.T) {
	if WrapDegrees(-90) != 270 {
		t.Errorf("WrapDegrees(-90) = %f, expected 270", WrapDegrees(-90))
	}
	if WrapDegrees(725) != 5 {
		t.Errorf("WrapDegrees(725) = %f, expected 5", WrapDegrees(725))
	}
	if AngleDelta(350, 10) != 20 {
		t.Errorf("AngleDelta(350, 10) = %f, expected 20", AngleDelta(350, 10))
	}
	if AngleDelta(10, 350) != -20 {
		t.Errorf("AngleDelta(10, 350) = %f, expected -20", AngleDelta(10, 350))
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	c := r.Centered(10, 5)
	if c.X != 10 || c.Y != 15 {
		t.Errorf("Centered() = (%d, %d), expected (10, 15)", c.X, c.Y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{2, 1},
		{math.NaN(), 0},
	}

	for _, tc := range tests {
		if got := Clamp01(tc.val); got != tc.expected {
			t.Errorf("Clamp01(%f) = %f, expected %f", tc.val, got, tc.expected)
		}
	}
	if NonNeg(-3) != 0 || NonNeg(3) != 3 {
		t.Error("NonNeg should floor negatives at zero")
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
