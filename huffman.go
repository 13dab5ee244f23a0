package tinf

// maxCodeLength is the largest code length RFC 1951 allows in any of the
// three Huffman alphabets (literal/length, distance, code-length).
const maxCodeLength = 15

// maxLiteralSymbols bounds the literal/length alphabet (0..287, with
// 286/287 reserved but present so trans stays densely packed).
const maxLiteralSymbols = 288

// tree is a canonical Huffman decode table, value-typed so the two
// instances a decoder owns (ltree, dtree) can be rebuilt in place block
// after block without allocating. Grounded on tinflate.c's struct
// tinf_tree.
type tree struct {
	// table[l] counts how many symbols have a code of length l. table[0]
	// is always 0 (no symbol should have a zero-length code).
	table [maxCodeLength + 1]uint16
	// trans holds symbols sorted first by code length, then by symbol
	// index — the canonical order. Only trans[:sum(table)] is meaningful.
	trans [maxLiteralSymbols]uint16
	// maxSym is the largest symbol index with a non-zero code length, or
	// -1 if the tree has no codes at all.
	maxSym int
}

// buildTree turns a vector of code lengths (each 0..maxCodeLength) into a
// canonical Huffman decode table. Ported from tinflate.c's
// tinf_build_tree.
func (t *tree) buildTree(lengths []byte) error {
	assert(len(lengths) <= maxLiteralSymbols, "buildTree: too many symbols")

	for i := range t.table {
		t.table[i] = 0
	}
	t.maxSym = -1

	for i, l := range lengths {
		assert(l <= maxCodeLength, "buildTree: code length out of range")
		if l != 0 {
			t.maxSym = i
			t.table[l]++
		}
	}
	t.table[0] = 0

	// Walk the length classes, tracking how many codes of the current
	// length are still assignable (assignable) and where each length's symbols
	// begin in the distribution sort (offs). A length with more codes
	// than are assignable is an over-subscribed tree.
	var offs [maxCodeLength + 1]uint16
	var sum, assignable uint32 = 0, 1
	for l := 0; l <= maxCodeLength; l++ {
		if uint32(t.table[l]) > assignable {
			return dataErrorf("huffman: length %d has %d codes, only %d assignable", l, t.table[l], assignable)
		}
		assignable = 2 * (assignable - uint32(t.table[l]))

		offs[l] = uint16(sum)
		sum += uint32(t.table[l])
	}

	// A complete code exhausts every assignable slot. The one documented
	// exception is a tree with exactly one code, of length 1.
	if (sum > 1 && assignable > 0) || (sum == 1 && t.table[1] != 1) {
		return dataErrorf("huffman: incomplete or over-subscribed code (sum=%d assignable=%d)", sum, assignable)
	}

	for i, l := range lengths {
		if l != 0 {
			t.trans[offs[l]] = uint16(i)
			offs[l]++
		}
	}

	// Single-code trees only ever produce a single one-bit code (0). The
	// alternate one-bit code (1) is unused by the encoder but must still
	// decode to *something*; plant a sentinel one past maxSym so the
	// caller's max-symbol check rejects it.
	if sum == 1 {
		t.table[1] = 2
		t.trans[1] = uint16(t.maxSym + 1)
	}

	return nil
}

// decodeSymbol reads one symbol from the bit stream against t, by
// canonical-code bit-by-bit descent. Ported from tinflate.c's
// tinf_decode_symbol. len is bounded by maxCodeLength for any tree that
// passed buildTree; that's asserted, not checked, since buildTree already
// guarantees it for a validly constructed tree.
func (d *decoder) decodeSymbol(t *tree) uint16 {
	var sum, cur int32
	var length uint

	for {
		cur = 2*cur + int32(d.getBits(1))
		length++
		assert(length <= maxCodeLength, "decodeSymbol: code length exceeded 15 bits")
		sum += int32(t.table[length])
		cur -= int32(t.table[length])
		if cur < 0 {
			break
		}
	}

	assert(sum+cur >= 0 && int(sum+cur) < maxLiteralSymbols, "decodeSymbol: trans index out of range")
	return t.trans[sum+cur]
}
