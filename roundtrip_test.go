package zinflate

import (
	"bytes"
	"compress/zlib"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// rfc1951Excerpt is long and repetitive enough that a default-level
// encoder compresses it with a dynamic-Huffman block full of
// back-references.
const rfc1951Excerpt = `As noted above, encoded data blocks in the "deflate" format
consist of sequences of symbols drawn from three conceptually
distinct alphabets: either literal bytes, from the alphabet of
byte values (0..255), or <length, backward distance> pairs,
where the length is drawn from (3..258) and the distance is
drawn from (1..32,768).  In fact, the literal and length
alphabets are merged into a single alphabet (0..285), where
values 0..255 represent literal bytes, the value 256 indicates
end-of-block, and values 257..285 represent length codes
(possibly in conjunction with extra bits following the symbol
code) as follows:`

// compressWith produces a zlib stream for payload with the standard
// library's encoder at the given level.
func compressWith(t *testing.T, payload []byte, level int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	require.NoError(t, err)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// TestRoundTripAgainstStdlibEncoder checks that any stream a conforming
// encoder emits decodes back to its input. The level selection forces
// all three block types: NoCompression emits stored blocks, HuffmanOnly
// leans on fixed/dynamic Huffman coding without matches, and the
// default and best levels emit dynamic blocks with back-references.
func TestRoundTripAgainstStdlibEncoder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	random64k := make([]byte, 64<<10)
	_, err := rng.Read(random64k)
	require.NoError(t, err)

	allByteValues := make([]byte, 256)
	for i := range allByteValues {
		allByteValues[i] = byte(i)
	}

	payloads := map[string][]byte{
		"empty":            nil,
		"single byte":      {0x41},
		"long run":         bytes.Repeat([]byte{0x5A}, 1000),
		"all byte values":  allByteValues,
		"rfc1951 excerpt":  []byte(rfc1951Excerpt),
		"random 64k":       random64k,
		"repeated excerpt": bytes.Repeat([]byte(rfc1951Excerpt), 40),
	}
	levels := map[string]int{
		"stored":       zlib.NoCompression,
		"huffman only": zlib.HuffmanOnly,
		"default":      zlib.DefaultCompression,
		"best":         zlib.BestCompression,
	}

	for payloadName, payload := range payloads {
		for levelName, level := range levels {
			t.Run(payloadName+"/"+levelName, func(t *testing.T) {
				stream := compressWith(t, payload, level)
				out, err := Decompress(stream)
				require.NoError(t, err)
				if len(payload) == 0 {
					require.Empty(t, out)
					return
				}
				require.Equal(t, payload, out)
			})
		}
	}
}

// TestRoundTripDynamicBlockText pins the common case by itself: the
// default encoder on English prose produces a dynamic-Huffman block,
// exercising the code-length meta-alphabet and the full
// literal/length/distance loop in one stream.
func TestRoundTripDynamicBlockText(t *testing.T) {
	payload := []byte(rfc1951Excerpt)
	stream := compressWith(t, payload, zlib.DefaultCompression)
	out, err := Decompress(stream)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}
