package game

// Pseudorandom returns (a + b) modulo the modulus. The only source of entropy
// on the board is the position of the paddles, which are moved by people and
// are therefore unpredictable enough for choosing where to serve.
//
// A negative sum gives a negative Go remainder, which is moved into the range
// [0, modulus). The modulus must be positive
func Pseudorandom(a, b, modulus int) int {
	v := (a + b) % modulus
	if v < 0 {
		v += modulus
	}
	return v
}
