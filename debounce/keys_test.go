package debounce

import "testing"

func TestAccepts(t *testing.T) {
	tests := []struct {
		name string
		code int
		want bool
	}{
		{"backspace", 8, true},
		{"space", 32, true},
		{"digit zero", 48, true},
		{"letter", 65, true},
		{"high code", 190, true},
		{"escape", 27, false},
		{"arrow left", 37, false},
		{"arrow up", 38, false},
		{"arrow right", 39, false},
		{"arrow down", 40, false},
		{"shift", 16, false},
		{"end", 35, false},
		{"delete", 46, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accepts(tt.code); got != tt.want {
				t.Errorf("Accepts(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
