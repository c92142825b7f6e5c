package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 1)

	if got := a.Add(b); got != V(4, 5) {
		t.Errorf("Add() = %v, expected (4,5)", got)
	}
	if got := a.Sub(b); got != V(2, 3) {
		t.Errorf("Sub() = %v, expected (2,3)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6,8)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq() = %f, expected 25", got)
	}
	if got := V(0, 0).Dist(a); math.Abs(got-5) > 1e-9 {
		t.Errorf("Dist() = %f, expected 5", got)
	}
}

func TestRectCircleOverlaps(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"center inside", V(20, 20), 1, true},
		{"near left edge", V(8, 20), 3, true},
		{"touching left edge", V(7, 20), 3, false},
		{"far away", V(100, 100), 5, false},
		{"diagonal outside corner", V(7, 7), 4, false},
		{"diagonal overlapping corner", V(8, 8), 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.CircleOverlaps(tc.center, tc.radius); got != tc.expected {
				t.Errorf("CircleOverlaps(%v, %f) = %v, expected %v", tc.center, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestRectInsetAndCenter(t *testing.T) {
	r := NewRect(0, 0, 60, 60).Inset(1)

	if r.X != 1 || r.Y != 1 || r.W != 58 || r.H != 58 {
		t.Errorf("Inset(1) = %+v, expected {1 1 58 58}", r)
	}
	if r.Right() != 59 || r.Bottom() != 59 {
		t.Errorf("edges = (%f, %f), expected (59, 59)", r.Right(), r.Bottom())
	}
	if c := r.Center(); c != V(30, 30) {
		t.Errorf("Center() = %v, expected (30,30)", c)
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(V(0, 0), 2, V(3, 0), 2) {
		t.Error("circles 3 apart with radii 2+2 should overlap")
	}
	if CirclesOverlap(V(0, 0), 1, V(2, 0), 1) {
		t.Error("touching circles should not overlap")
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

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
