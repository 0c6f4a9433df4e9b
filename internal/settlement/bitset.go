package settlement

// unsetBitIndices returns the indices in [0, validatorCount) whose bit is not set.
// Bits are read least significant first within each byte; bits past the end of
// bitset count as unset.
func unsetBitIndices(bitset []byte, validatorCount int) []int {
	var out []int
	for i := 0; i < validatorCount; i++ {
		byteIndex := i / 8
		if byteIndex >= len(bitset) || bitset[byteIndex]&(1<<(uint(i)%8)) == 0 {
			out = append(out, i)
		}
	}
	return out
}
