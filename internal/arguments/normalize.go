package arguments

import "strconv"

// DefaultRemotePort is stored whenever port input is not a plain number.
const DefaultRemotePort = 32264

// DefaultRemoteAddress is stored whenever address input is empty.
const DefaultRemoteAddress = "localhost"

// NormalizePort converts raw port input into a port number.
//
// Input made only of ASCII digits is parsed as an integer. Empty input,
// anything containing a non-digit (signs and whitespace included), and digit
// strings too large for an int all fall back to DefaultRemotePort.
func NormalizePort(raw string) int {
	if !isDigits(raw) {
		return DefaultRemotePort
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultRemotePort
	}
	return n
}

// NormalizeAddress maps empty input to DefaultRemoteAddress and keeps
// everything else verbatim.
func NormalizeAddress(raw string) string {
	if raw == "" {
		return DefaultRemoteAddress
	}
	return raw
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
