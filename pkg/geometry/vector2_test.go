package geometry

import (
	"math"
	"testing"
)

func TestVector2Add(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, 5)
	result := v1.Add(v2)

	expected := NewVector2(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Sub(t *testing.T) {
	v1 := NewVector2(5, 7)
	v2 := NewVector2(1, 2)
	result := v1.Sub(v2)

	expected := NewVector2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Length(t *testing.T) {
	v := NewVector2(3, 4)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector2Distance(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(3, 3)
	distance := v1.Distance(v2)

	expected := math.Sqrt(18)
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector2MinMax(t *testing.T) {
	v1 := NewVector2(10, 0)
	v2 := NewVector2(0, 10)

	if got := v1.Min(v2); got != NewVector2(0, 0) {
		t.Errorf("Min failed: got %v", got)
	}
	if got := v1.Max(v2); got != NewVector2(10, 10) {
		t.Errorf("Max failed: got %v", got)
	}
}

func TestVector2Ints(t *testing.T) {
	x, y := NewVector2(12.9, -3.7).Ints()
	if x != 12 || y != -3 {
		t.Errorf("Ints failed: got (%d, %d)", x, y)
	}
}
