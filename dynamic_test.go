package tinf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testBitWriter is a minimal LSB-first bit packer used only to synthesize
// DEFLATE bit streams for tests. It is the inverse of decoder's bit
// reader: numeric fields (BFINAL, BTYPE, HLIT, HDIST, HCLEN, extra-bits
// fields) are written least-significant-bit first, while Huffman codes
// are written most-significant-bit first, per RFC 1951 §3.1.1.
type testBitWriter struct {
	out  []byte
	cur  uint32
	nbit uint
}

func (w *testBitWriter) writeBits(v uint32, n uint) {
	for i := uint(0); i < n; i++ {
		bit := (v >> i) & 1
		w.cur |= bit << w.nbit
		w.nbit++
		if w.nbit == 8 {
			w.out = append(w.out, byte(w.cur))
			w.cur, w.nbit = 0, 0
		}
	}
}

func (w *testBitWriter) writeCode(code uint32, length uint) {
	for i := length; i > 0; i-- {
		w.writeBits((code>>(i-1))&1, 1)
	}
}

func (w *testBitWriter) bytes() []byte {
	if w.nbit > 0 {
		return append(append([]byte{}, w.out...), byte(w.cur))
	}
	return w.out
}

// TestUncompressDynamicBlockEmpty builds, bit by bit, the smallest
// non-degenerate dynamic Huffman block: a code-length alphabet with two
// codes (symbol 1 "one literal length" and symbol 18 "repeat zero 11-138
// times"), used to describe a literal/length tree whose only code word is
// the end-of-block symbol and a one-entry distance tree. The block body
// then immediately decodes EOB, producing empty output.
func TestUncompressDynamicBlockEmpty(t *testing.T) {
	var w testBitWriter

	w.writeBits(1, 1) // BFINAL
	w.writeBits(2, 2) // BTYPE = dynamic

	w.writeBits(0, 5)  // HLIT = 257 + 0
	w.writeBits(0, 5)  // HDIST = 1 + 0
	w.writeBits(15, 4) // HCLEN = 4 + 15 = 19

	// Code-length-alphabet lengths, in codeLengthOrder: symbol 18 and
	// symbol 1 each get length 1, everything else length 0.
	clOrderLengths := [19]uint32{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0}
	for _, l := range clOrderLengths {
		w.writeBits(l, 3)
	}

	// With only symbols {1, 18} present at length 1, canonical order
	// (ascending symbol index) assigns code "0" to symbol 1 and code "1"
	// to symbol 18.
	const clCodeSym1 = 0
	const clCodeSym18 = 1

	// Repeat zero (symbol 18) for 138, then 118, more times: covers all
	// 256 literal/length codes below EOB.
	w.writeCode(clCodeSym18, 1)
	w.writeBits(138-11, 7)
	w.writeCode(clCodeSym18, 1)
	w.writeBits(118-11, 7)

	// Two literal code-length entries of value 1: lengths[256] (EOB) and
	// lengths[257] (the lone distance code).
	w.writeCode(clCodeSym1, 1)
	w.writeCode(clCodeSym1, 1)

	// Literal/length tree now has a single code, "0", for EOB (256); its
	// canonical code is always 0.
	w.writeCode(0, 1)

	src := w.bytes()
	dst := make([]byte, 16)
	n, err := Uncompress(dst, src)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestUncompressDynamicBlockRejectsBadHLit(t *testing.T) {
	var w testBitWriter
	w.writeBits(1, 1)  // BFINAL
	w.writeBits(2, 2)  // BTYPE = dynamic
	w.writeBits(30, 5) // HLIT = 257 + 30 = 287, out of range
	w.writeBits(0, 5)
	w.writeBits(0, 4)

	dst := make([]byte, 16)
	_, err := Uncompress(dst, w.bytes())
	require.ErrorIs(t, err, ErrDataError)
}
