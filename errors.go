package zinflate

import (
	"github.com/pkg/errors"
)

// ErrMalformedInput is returned for any structural violation of RFC
// 1950/1951: a truncated stream, BTYPE == 3, a stored-block LEN/NLEN
// mismatch, an out-of-range back-reference distance, a bad header
// checksum, an unterminated block, or an invalid dynamic-Huffman
// code-length meta-symbol.
var ErrMalformedInput = errors.New("zinflate: malformed input")

// ErrUnsupportedInput is returned for a well-formed zlib stream that
// falls outside the implemented subset: CM != 8, CINFO > 7, or a
// preset dictionary (FDICT == 1).
var ErrUnsupportedInput = errors.New("zinflate: unsupported input")

// malformed wraps ErrMalformedInput with call-site detail. errors.Is
// still matches ErrMalformedInput through the wrap.
func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedInput, format, args...)
}

// unsupported wraps ErrUnsupportedInput with call-site detail.
func unsupported(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnsupportedInput, format, args...)
}
