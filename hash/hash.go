// Package hash implements the fast modular hash used for feature hashing and the stand-in classifier
package hash

func Hash(n uint32, s uint32, max uint32) uint32 {
	// mixing stage, mix input with salt using subtraction
	var m = n - s

	// hashing stage, use xor shift with prime coefficients
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	// mixing stage 2, mix input with salt using addition
	m += s

	// modular stage, multiply shift instead of modulo
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	return uint32((uint64(m) * uint64(max)) >> 32)
}

// StringHash hashes a token into the full uint32 range under salt s
func StringHash(s uint32, str string) (ret uint32) {
	ret = s
	for i := 0; i < len(str); i++ {
		ret = Hash(ret, uint32(str[i]), 0xFFFFFFFF)
	}
	return
}

// Fold chains a sequence of values through Hash, reducing the result to [0, max)
func Fold(values []uint32, s uint32, max uint32) uint32 {
	var acc = s
	for _, v := range values {
		acc = Hash(v, acc, 0xFFFFFFFF)
	}
	return Hash(acc, s, max)
}
