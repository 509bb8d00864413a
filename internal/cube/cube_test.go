package cube

import (
	"testing"
)

func TestNewCube(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"2x2x2 cube", 2, 2},
		{"3x3x3 cube", 3, 3},
		{"4x4x4 cube", 4, 4},
		{"5x5x5 cube", 5, 5},
		{"Invalid size should default to 2", 1, 2},
		{"Invalid size should default to 2", 0, 2},
		{"Invalid size should default to 2", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cube := NewCube(tt.size)
			if cube.Size != tt.want {
				t.Errorf("NewCube(%d).Size = %d, want %d", tt.size, cube.Size, tt.want)
			}

			if !cube.IsSolved() {
				t.Errorf("NewCube(%d) should be solved initially", tt.size)
			}
		})
	}
}

func TestCubeIsSolved(t *testing.T) {
	cube := NewCube(3)
	if !cube.IsSolved() {
		t.Error("New 3x3x3 cube should be solved")
	}

	cube.Faces[Right][0][0] = Yellow
	if cube.IsSolved() {
		t.Error("cube with a mismatched sticker should not report solved")
	}
}

func TestStringWithColorMatchesPlainSize(t *testing.T) {
	cube := NewCube(3)
	plain := cube.String()
	colored := cube.StringWithColor(true)

	if len(plain) == 0 || len(colored) == 0 {
		t.Fatal("expected non-empty output from both String and StringWithColor")
	}
	if plain == colored {
		t.Error("colored output should differ from plain output")
	}
}
