package validator

import "testing"

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+375 29 123 45 67", true},
		{"+375 33 777 00 11", true},
		{"123456", false},
		{"+375291234567", false},
		{"+375 9 123 45 67", false},
		{" +375 29 123 45 67", false},
		{"+375 29 123 45 67 ", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
