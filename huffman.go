package zinflate

// maxHuffmanBits is the longest code length RFC 1951 permits for any of
// the three alphabets this decoder builds tables for (literal/length,
// distance, and the code-length meta-alphabet all fit within 15 bits).
const maxHuffmanBits = 15

// HuffmanDecoder is a canonical prefix-code table over an alphabet of
// non-negative integer symbols. It is built once from a vector of
// per-symbol bit lengths (0 meaning the symbol is absent) and then
// consulted once per decoded symbol.
//
// The representation is a length-indexed canonical decoder: count holds
// the number of codes of each length, and symbol holds the symbols
// themselves sorted by (length, original alphabet order). No code
// values or tree nodes are materialized.
type HuffmanDecoder struct {
	count  [maxHuffmanBits + 1]int
	symbol []int
}

// NewHuffmanDecoder builds a canonical Huffman table from alphabet (the
// symbols, in order) and bitLengths (bitLengths[i] is the code length in
// bits for alphabet[i], or 0 if alphabet[i] does not appear in the
// code). len(alphabet) must equal len(bitLengths).
//
// This follows RFC 1951 §3.2.2's code/length relationship but never
// materializes an actual code value: count per length plus symbols
// sorted by length is enough for Decode to resolve a symbol by
// comparing against how many same-or-shorter codes precede it.
func NewHuffmanDecoder(alphabet []int, bitLengths []int) (*HuffmanDecoder, error) {
	if len(alphabet) != len(bitLengths) {
		return nil, malformed("huffman: alphabet/length size mismatch (%d vs %d)", len(alphabet), len(bitLengths))
	}

	h := &HuffmanDecoder{symbol: make([]int, 0, len(alphabet))}

	maxBits := 0
	for _, bl := range bitLengths {
		if bl > maxHuffmanBits {
			return nil, malformed("huffman: code length %d exceeds maximum %d", bl, maxHuffmanBits)
		}
		if bl > maxBits {
			maxBits = bl
		}
	}
	if maxBits == 0 {
		// An empty table. Not expected in well-formed input; Decode on
		// it fails the first time it is used.
		return h, nil
	}

	for _, bl := range bitLengths {
		if bl > 0 {
			h.count[bl]++
		}
	}

	// offs[l] is the index into the sorted symbol table where codes of
	// length l begin. Decode never needs the actual code values —
	// only, for a given length, how many shorter-or-equal-length codes
	// precede a candidate — so unlike the textbook RFC 1951 §3.2.2
	// description this construction never computes next_code.
	var offs [maxHuffmanBits + 2]int
	for l := 1; l <= maxBits; l++ {
		offs[l+1] = offs[l] + h.count[l]
	}
	total := offs[maxBits+1]
	h.symbol = make([]int, total)

	cursor := offs
	for i, bl := range bitLengths {
		if bl == 0 {
			continue
		}
		h.symbol[cursor[bl]] = alphabet[i]
		cursor[bl]++
	}

	return h, nil
}

// Decode consumes exactly one symbol's worth of code bits from s and
// returns the symbol. Codes are read MSB-first even though BitStream
// yields individual bits LSB-first within each byte; that is the
// DEFLATE convention (RFC 1951 §3.1.1). Each new bit read extends the
// candidate code on the low end in code-space, which is equivalent to
// MSB-first accumulation when compared against the length-ordered
// count table.
func (h *HuffmanDecoder) Decode(s *BitStream) (int, error) {
	code := 0
	first := 0
	index := 0
	for length := 1; length <= maxHuffmanBits; length++ {
		bit, err := s.ReadBit()
		if err != nil {
			return 0, err
		}
		code |= int(bit)
		count := h.count[length]
		if code-first < count {
			if index+(code-first) >= len(h.symbol) {
				return 0, malformed("huffman: code resolves outside symbol table")
			}
			return h.symbol[index+(code-first)], nil
		}
		index += count
		first += count
		first <<= 1
		code <<= 1
	}
	return 0, malformed("huffman: no matching code after %d bits", maxHuffmanBits)
}
