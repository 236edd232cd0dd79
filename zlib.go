// Package zinflate implements a zlib-wrapped DEFLATE decompressor:
// given a complete zlib stream (RFC 1950 framing around an RFC 1951
// DEFLATE payload), it reconstructs the original uncompressed bytes.
//
// Unlike compress/flate in the standard library, this package does not
// stream: the whole input is buffer-resident and the whole output is
// built and returned in one call. NewReader is convenience sugar over
// that model, not an incremental decoder.
package zinflate

import "io"

const (
	cmDeflate    = 8
	maxCINFO     = 7
	fdictMask    = 1 << 5
	adler32Bytes = 4
)

// Decompress takes a complete zlib stream and returns the decompressed
// bytes, or ErrMalformedInput / ErrUnsupportedInput on failure.
func Decompress(data []byte) ([]byte, error) {
	s := NewBitStream(data)

	cmf, err := s.ReadByte()
	if err != nil {
		return nil, malformed("reading CMF byte: %v", err)
	}
	cm := cmf & 0x0F
	cinfo := cmf >> 4
	if cm != cmDeflate {
		return nil, unsupported("compression method %d is not DEFLATE (8)", cm)
	}
	if cinfo > maxCINFO {
		return nil, unsupported("CINFO %d exceeds the maximum window size exponent 7", cinfo)
	}

	flg, err := s.ReadByte()
	if err != nil {
		return nil, malformed("reading FLG byte: %v", err)
	}
	if (int(cmf)*256+int(flg))%31 != 0 {
		return nil, malformed("zlib header checksum failed for CMF=%#02x FLG=%#02x", cmf, flg)
	}
	if flg&fdictMask != 0 {
		return nil, unsupported("preset dictionaries (FDICT=1) are not supported")
	}

	out, err := inflate(s)
	if err != nil {
		return nil, err
	}

	// The Adler-32 trailer is consumed but not checked against the
	// output. A truncated trailer is still an error.
	if _, err := s.ReadBytes(adler32Bytes); err != nil {
		return nil, malformed("reading Adler-32 trailer: %v", err)
	}

	return out, nil
}

// Header is the parsed, but not fully decoded, zlib wrapper: the CMF/FLG
// fields and the unverified Adler-32 trailer. It backs the zinflate
// inspect subcommand.
type Header struct {
	CM      byte
	CINFO   byte
	FDICT   bool
	Adler32 uint32
}

// InspectHeader parses and validates only the zlib header (CMF/FLG), then
// decodes the DEFLATE body to locate the trailing Adler-32 — it does not
// return the decompressed bytes. Used by the `inspect` CLI subcommand to
// report header fields even when the caller only wants metadata.
func InspectHeader(data []byte) (*Header, error) {
	s := NewBitStream(data)

	cmf, err := s.ReadByte()
	if err != nil {
		return nil, malformed("reading CMF byte: %v", err)
	}
	cm := cmf & 0x0F
	cinfo := cmf >> 4

	flg, err := s.ReadByte()
	if err != nil {
		return nil, malformed("reading FLG byte: %v", err)
	}
	if (int(cmf)*256+int(flg))%31 != 0 {
		return nil, malformed("zlib header checksum failed for CMF=%#02x FLG=%#02x", cmf, flg)
	}
	fdict := flg&fdictMask != 0

	h := &Header{CM: cm, CINFO: cinfo, FDICT: fdict}
	if cm != cmDeflate || cinfo > maxCINFO || fdict {
		return h, nil
	}

	if _, err := inflate(s); err != nil {
		return h, err
	}
	// RFC 1950 stores the checksum big-endian, most significant byte
	// first. It is reported, never verified.
	for i := 0; i < adler32Bytes; i++ {
		b, err := s.ReadByte()
		if err != nil {
			return h, malformed("reading Adler-32 trailer: %v", err)
		}
		h.Adler32 = h.Adler32<<8 | uint32(b)
	}
	return h, nil
}

type reader struct {
	data []byte
	pos  int
}

// NewReader decompresses all of r's contents up front and returns an
// io.ReadCloser over the result. There is no incremental mode: r is
// drained before the first Read.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data, err := Decompress(compressed)
	if err != nil {
		return nil, err
	}
	return &reader{data: data}, nil
}

func (r *reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *reader) Close() error {
	return nil
}
