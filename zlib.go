package tinf

import (
	"bytes"
	"encoding/binary"
	"hash/adler32"
	"io"
)

const zlibDeflateMethod = 8

// UncompressZlib decompresses a complete zlib (RFC 1950) stream from src
// into dst, validating the trailing big-endian Adler-32 checksum against
// the decompressed output.
//
// Per spec.md's non-goals, a preset dictionary (FDICT=1) is not supported
// and is rejected as a data error rather than silently mishandled.
func UncompressZlib(dst, src []byte) (int, error) {
	if len(src) < 6 {
		return 0, dataErrorf("zlib: input too small to contain header and trailer")
	}

	cmf, flg := src[0], src[1]
	if cmf&0x0f != zlibDeflateMethod {
		return 0, dataErrorf("zlib: unsupported compression method %d", cmf&0x0f)
	}
	if (uint16(cmf)<<8|uint16(flg))%31 != 0 {
		return 0, dataErrorf("zlib: bad FCHECK")
	}
	if flg&0x20 != 0 {
		return 0, dataErrorf("zlib: preset dictionary (FDICT) not supported")
	}

	payload := src[2 : len(src)-4]
	trailer := src[len(src)-4:]

	n, err := Uncompress(dst, payload)
	if err != nil {
		return 0, err
	}

	wantAdler := binary.BigEndian.Uint32(trailer)
	gotAdler := adler32.Checksum(dst[:n])
	if gotAdler != wantAdler {
		return 0, dataErrorf("zlib: Adler-32 mismatch: got %#x want %#x", gotAdler, wantAdler)
	}

	return n, nil
}

// NewZlibReader decompresses all of r as a zlib stream and returns an
// io.Reader over the result, buffering internally exactly as
// NewGzipReader does. Because zlib carries no length trailer, the
// destination buffer is grown geometrically until Uncompress stops
// reporting ErrBufError.
func NewZlibReader(r io.Reader) (io.Reader, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	size := len(compressed) * 4
	if size < 512 {
		size = 512
	}
	for {
		dst := make([]byte, size)
		n, err := UncompressZlib(dst, compressed)
		if err == nil {
			return bytes.NewReader(dst[:n]), nil
		}
		if !isBufError(err) {
			return nil, err
		}
		size *= 2
	}
}
