package arguments

import "testing"

func TestNormalizePort(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"numeric", "8080", 8080},
		{"leading zeros", "0080", 80},
		{"zero", "0", 0},
		{"letters", "abc", DefaultRemotePort},
		{"empty", "", DefaultRemotePort},
		{"mixed", "80a", DefaultRemotePort},
		{"negative", "-1", DefaultRemotePort},
		{"whitespace", " 8080", DefaultRemotePort},
		{"decimal", "80.5", DefaultRemotePort},
		{"overflow", "99999999999999999999999", DefaultRemotePort},
		{"placeholder", PortPlaceholder, DefaultRemotePort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePort(tt.raw); got != tt.want {
				t.Errorf("NormalizePort(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "localhost"},
		{"10.0.0.5", "10.0.0.5"},
		{"localhost", "localhost"},
		{" ", " "},
		{"my-board.local", "my-board.local"},
	}

	for _, tt := range tests {
		if got := NormalizeAddress(tt.raw); got != tt.want {
			t.Errorf("NormalizeAddress(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
