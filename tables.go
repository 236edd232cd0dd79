package zinflate

// Constant tables from RFC 1951 §3.2.5-§3.2.7, transcribed verbatim.

// lengthBase and lengthExtraBits are indexed by (length symbol - 257).
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3,
	3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distanceBase and distanceExtraBits are indexed by the decoded
// distance symbol (0..29).
var distanceBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129,
	193, 257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193,
	12289, 16385, 24577,
}

var distanceExtraBits = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7,
	7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthOrder is the permutation used to place the HCLEN code-length
// code lengths into the 19-entry code-length alphabet vector (RFC 1951
// §3.2.7).
var codeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

const (
	// numLitLenSymbols counts symbols 286 and 287 too: they never occur
	// in valid data, but the fixed code of RFC 1951 §3.2.6 gives them
	// 8-bit codes, and the codes of all 9-bit symbols depend on that.
	numLitLenSymbols  = 288
	numDistSymbols    = 30
	numCodeLenSymbols = 19
	endOfBlockSymbol  = 256
)

// fixedLitLenLengths and fixedDistLengths are the RFC 1951 §3.2.6 fixed
// Huffman code lengths for BTYPE == 1 blocks.
func fixedLitLenLengths() []int {
	lengths := make([]int, numLitLenSymbols)
	for i := 0; i < 144; i++ {
		lengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		lengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		lengths[i] = 7
	}
	for i := 280; i < numLitLenSymbols; i++ {
		lengths[i] = 8
	}
	return lengths
}

func fixedDistLengths() []int {
	lengths := make([]int, numDistSymbols)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}

// identityAlphabet returns {0, 1, ..., n-1}, the alphabet shared by all
// three Huffman tables this package builds (literal/length, distance,
// and code-length symbols are all small non-negative integers).
func identityAlphabet(n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	return a
}
