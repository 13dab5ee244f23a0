// Package tinf implements a DEFLATE (RFC 1951) decompressor, along with
// gzip (RFC 1952) and zlib (RFC 1950) container adapters.
//
// The core decoder is one-shot: it consumes a complete compressed buffer
// and writes to a single caller-sized output buffer. There is no
// incremental or streaming decode API and no compressor. Callers who want
// an io.Reader can use NewGzipReader or NewZlibReader, which buffer their
// input and drive the one-shot core underneath.
package tinf
