package tinf

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
)

const (
	gzipMagic0  = 0x1f
	gzipMagic1  = 0x8b
	gzipDeflate = 8

	flagText    = 1 << 0
	flagHCRC    = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4
)

// gzipHeaderLen finds the offset of the DEFLATE payload within a gzip
// stream, skipping the fixed 10-byte header and any optional
// FEXTRA/FNAME/FCOMMENT/FHCRC fields the flags byte announces. Grounded
// on RFC 1952 §2.3 and tgunzip.c's much simpler "no optional fields"
// assumption, generalized to the full header shape.
func gzipHeaderLen(src []byte) (int, error) {
	if len(src) < 10 {
		return 0, dataErrorf("gzip: input shorter than fixed header")
	}
	if src[0] != gzipMagic0 || src[1] != gzipMagic1 {
		return 0, dataErrorf("gzip: bad magic bytes %#x %#x", src[0], src[1])
	}
	if src[2] != gzipDeflate {
		return 0, dataErrorf("gzip: unsupported compression method %d", src[2])
	}
	flags := src[3]

	pos := 10
	if flags&flagExtra != 0 {
		if pos+2 > len(src) {
			return 0, dataErrorf("gzip: truncated FEXTRA length")
		}
		xlen := int(binary.LittleEndian.Uint16(src[pos:]))
		pos += 2 + xlen
		if pos > len(src) {
			return 0, dataErrorf("gzip: truncated FEXTRA field")
		}
	}
	if flags&flagName != 0 {
		i := bytes.IndexByte(src[pos:], 0)
		if i < 0 {
			return 0, dataErrorf("gzip: unterminated FNAME")
		}
		pos += i + 1
	}
	if flags&flagComment != 0 {
		i := bytes.IndexByte(src[pos:], 0)
		if i < 0 {
			return 0, dataErrorf("gzip: unterminated FCOMMENT")
		}
		pos += i + 1
	}
	if flags&flagHCRC != 0 {
		pos += 2
	}
	if pos > len(src) {
		return 0, dataErrorf("gzip: header fields overrun input")
	}
	return pos, nil
}

// GzipUncompressedSize reads the trailing ISIZE field of a gzip stream —
// the decompressed length modulo 2^32 — without decompressing anything.
// tgunzip.c uses this same trailer field to size its destination buffer
// before calling into the core decoder; this is the same length oracle,
// exposed directly instead of folded into a combined read-and-allocate
// helper, since this module doesn't do its own allocation.
func GzipUncompressedSize(src []byte) (uint32, error) {
	if len(src) < 18 {
		return 0, dataErrorf("gzip: input too small to contain a trailer")
	}
	return binary.LittleEndian.Uint32(src[len(src)-4:]), nil
}

// UncompressGzip decompresses a complete gzip (RFC 1952) stream from src
// into dst, validating the trailing CRC-32 and ISIZE against the
// decompressed output.
func UncompressGzip(dst, src []byte) (int, error) {
	payloadStart, err := gzipHeaderLen(src)
	if err != nil {
		return 0, err
	}
	if len(src)-payloadStart < 8 {
		return 0, dataErrorf("gzip: input too small to contain a trailer")
	}
	payload := src[payloadStart : len(src)-8]
	trailer := src[len(src)-8:]

	n, err := Uncompress(dst, payload)
	if err != nil {
		return 0, err
	}

	wantCRC := binary.LittleEndian.Uint32(trailer[0:4])
	wantISize := binary.LittleEndian.Uint32(trailer[4:8])

	gotCRC := crc32.ChecksumIEEE(dst[:n])
	if gotCRC != wantCRC {
		return 0, dataErrorf("gzip: CRC-32 mismatch: got %#x want %#x", gotCRC, wantCRC)
	}
	if uint32(n) != wantISize {
		return 0, dataErrorf("gzip: ISIZE mismatch: got %d want %d", n, wantISize)
	}

	return n, nil
}

// NewGzipReader decompresses all of r as a gzip stream and returns an
// io.Reader over the result. It exists for callers who want the familiar
// io.Reader shape; internally it still buffers all of r and drives the
// one-shot core decoder in a single call, the way andybalholm/brotli's
// Reader drives BrotliDecoderDecompressStream from reader.go, except
// without the incremental resumption brotli's Reader supports (this
// package's core has no incremental API to resume).
func NewGzipReader(r io.Reader) (io.Reader, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	size, err := GzipUncompressedSize(compressed)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, size)
	n, err := UncompressGzip(dst, compressed)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(dst[:n]), nil
}
