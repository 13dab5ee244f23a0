package tinf

// Uncompress decompresses a complete DEFLATE (RFC 1951) stream from src
// into dst, returning the number of bytes written.
//
// dst must be large enough to hold the entire decompressed output; if it
// is not, Uncompress returns a wrapped ErrBufError. Any other violation of
// the DEFLATE format returns a wrapped ErrDataError. On either error the
// returned length is 0 and the contents of dst are undefined, even though
// in practice a valid prefix may have already been written.
//
// This mirrors the C ancestor's tinf_uncompress(dest, *destLen, source,
// sourceLen) signature, reshaped for Go: len(dst) plays the role of the
// input *destLen, and the returned int plays the role of its output value.
func Uncompress(dst, src []byte) (int, error) {
	d := newDecoder(dst, src)

	for {
		final := d.getBits(1)
		btype := d.getBits(2)

		var err error
		switch btype {
		case 0:
			err = d.inflateUncompressedBlock()
		case 1:
			err = d.inflateFixedBlock()
		case 2:
			err = d.inflateDynamicBlock()
		default:
			err = dataErrorf("block header: reserved BTYPE 3")
		}
		if err != nil {
			return 0, err
		}

		if final != 0 {
			break
		}
	}

	if d.overflow {
		return 0, dataErrorf("unexpected end of input")
	}

	return d.destLen, nil
}
