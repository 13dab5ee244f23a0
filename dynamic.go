package tinf

// codeLengthOrder is the order in which the 19 code-length-alphabet
// lengths appear in a dynamic block header (RFC 1951 §3.2.7).
var codeLengthOrder = [19]byte{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5,
	11, 4, 12, 3, 13, 2, 14, 1, 15,
}

const (
	maxHLit  = 286
	maxHDist = 30
)

// decodeTrees reads a dynamic block header (HLIT, HDIST, HCLEN, the
// code-length alphabet, then the literal/length and distance code
// lengths) and builds lt and dt from it. Ported from tinflate.c's
// tinf_decode_trees.
func (d *decoder) decodeTrees(lt, dt *tree) error {
	hlit := uint(d.getBitsBase(5, 257))
	hdist := uint(d.getBitsBase(5, 1))
	hclen := uint(d.getBitsBase(4, 4))

	// RFC 1951 allows HLIT up to 287 and HDIST up to 31, but distance
	// codes 30/31 and literal/length codes 286/287 carry no meaning; per
	// spec.md this is treated defensively as an error rather than
	// accepted and left unreachable. See DESIGN.md for the conformance
	// tradeoff this makes against strict RFC 1951 compliance.
	if hlit > maxHLit || hdist > maxHDist {
		return dataErrorf("dynamic header: HLIT=%d HDIST=%d out of range", hlit, hdist)
	}

	var clLengths [19]byte
	for i := uint(0); i < hclen; i++ {
		clLengths[codeLengthOrder[i]] = byte(d.getBits(3))
	}

	// The code-length tree is built into lt to avoid a third scratch
	// tree, exactly as tinflate.c does; it gets overwritten below once
	// the literal/length lengths have been decoded.
	if err := lt.buildTree(clLengths[:]); err != nil {
		return err
	}
	if lt.maxSym == -1 {
		return dataErrorf("dynamic header: empty code-length tree")
	}

	var lengths [maxLiteralSymbols + 32]byte
	total := hlit + hdist
	for num := uint(0); num < total; {
		sym := d.decodeSymbol(lt)
		if int(sym) > lt.maxSym {
			return dataErrorf("dynamic header: code-length symbol %d exceeds max %d", sym, lt.maxSym)
		}

		var length uint
		var value byte
		switch sym {
		case 16:
			if num == 0 {
				return dataErrorf("dynamic header: repeat-previous with no previous length")
			}
			value = lengths[num-1]
			length = uint(d.getBitsBase(2, 3))
		case 17:
			value = 0
			length = uint(d.getBitsBase(3, 3))
		case 18:
			value = 0
			length = uint(d.getBitsBase(7, 11))
		default:
			value = byte(sym)
			length = 1
		}

		if length > total-num {
			return dataErrorf("dynamic header: repeat run overshoots HLIT+HDIST")
		}
		for ; length > 0; length-- {
			lengths[num] = value
			num++
		}
	}

	if lengths[256] == 0 {
		return dataErrorf("dynamic header: missing end-of-block code")
	}

	if err := lt.buildTree(lengths[:hlit]); err != nil {
		return err
	}
	if err := dt.buildTree(lengths[hlit : hlit+hdist]); err != nil {
		return err
	}
	return nil
}
