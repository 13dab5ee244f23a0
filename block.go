package tinf

// Extra-bits and base tables for length codes 257..285 (RFC 1951 §3.2.5),
// indexed by symbol - 257.
var lengthBase = [29]uint32{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
	15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthBits = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// Extra-bits and base tables for distance codes 0..29.
var distBase = [30]uint32{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distBits = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// inflateBlockData drives the literal/length symbol loop for one block
// (fixed or dynamic), writing literals and expanding LZ77 back-references
// directly into d.dest. Ported from tinflate.c's tinf_inflate_block_data.
func (d *decoder) inflateBlockData(lt, dt *tree) error {
	for {
		sym := d.decodeSymbol(lt)
		if d.overflow {
			return dataErrorf("block data: unexpected end of input")
		}

		if sym == 256 {
			return nil
		}

		if sym < 256 {
			if d.destPos == len(d.dest) {
				return bufErrorf("block data: no room for literal byte")
			}
			d.dest[d.destPos] = byte(sym)
			d.destPos++
			d.destLen++
			continue
		}

		if int(sym) > lt.maxSym || int(sym)-257 > 28 || dt.maxSym == -1 {
			return dataErrorf("block data: length symbol %d invalid or no distance codes", sym)
		}
		lidx := int(sym) - 257

		length := int(d.getBitsBase(lengthBits[lidx], lengthBase[lidx]))

		dsym := d.decodeSymbol(dt)
		if int(dsym) > dt.maxSym || int(dsym) > 29 {
			return dataErrorf("block data: distance symbol %d invalid", dsym)
		}

		dist := int(d.getBitsBase(distBits[dsym], distBase[dsym]))
		if dist > d.destLen {
			return dataErrorf("block data: distance %d exceeds %d bytes produced so far", dist, d.destLen)
		}
		if len(d.dest)-d.destPos < length {
			return bufErrorf("block data: no room for match of length %d", length)
		}

		// LZ77 overlap: copy byte by byte so a match with dist < length
		// replicates the pattern it is reading from its own output, as
		// RFC 1951 requires. A block memcpy over [destPos-dist,
		// destPos-dist+length) would be wrong whenever the ranges
		// overlap.
		for i := 0; i < length; i++ {
			d.dest[d.destPos+i] = d.dest[d.destPos+i-dist]
		}
		d.destPos += length
		d.destLen += length
	}
}

// inflateUncompressedBlock handles BTYPE==0. Ported from tinflate.c's
// tinf_inflate_uncompressed_block.
func (d *decoder) inflateUncompressedBlock() error {
	d.alignToByte()

	if len(d.source)-d.cursor < 4 {
		return dataErrorf("uncompressed block: truncated LEN/NLEN header")
	}

	length := uint16(d.source[d.cursor]) | uint16(d.source[d.cursor+1])<<8
	invLength := uint16(d.source[d.cursor+2]) | uint16(d.source[d.cursor+3])<<8
	if length != ^invLength {
		return dataErrorf("uncompressed block: LEN %#x != ~NLEN %#x", length, invLength)
	}
	d.cursor += 4

	if len(d.source)-d.cursor < int(length) {
		return dataErrorf("uncompressed block: source truncated before %d data bytes", length)
	}
	if len(d.dest)-d.destPos < int(length) {
		return bufErrorf("uncompressed block: no room for %d data bytes", length)
	}

	copy(d.dest[d.destPos:], d.source[d.cursor:d.cursor+int(length)])
	d.cursor += int(length)
	d.destPos += int(length)
	d.destLen += int(length)

	return nil
}

func (d *decoder) inflateFixedBlock() error {
	buildFixedTrees(&d.ltree, &d.dtree)
	return d.inflateBlockData(&d.ltree, &d.dtree)
}

func (d *decoder) inflateDynamicBlock() error {
	if err := d.decodeTrees(&d.ltree, &d.dtree); err != nil {
		return err
	}
	return d.inflateBlockData(&d.ltree, &d.dtree)
}
