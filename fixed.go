package tinf

// buildFixedTrees materializes the RFC 1951 §3.2.6 fixed literal/length
// and distance trees directly, without going through buildTree, because
// their code-length counts are compile-time constants. Ported from
// tinflate.c's tinf_build_fixed_trees.
func buildFixedTrees(lt, dt *tree) {
	for i := range lt.table {
		lt.table[i] = 0
	}
	lt.table[7] = 24
	lt.table[8] = 152
	lt.table[9] = 112

	i := 0
	for n := 0; n < 24; n++ {
		lt.trans[i] = uint16(256 + n)
		i++
	}
	for n := 0; n < 144; n++ {
		lt.trans[i] = uint16(n)
		i++
	}
	for n := 0; n < 8; n++ {
		lt.trans[i] = uint16(280 + n)
		i++
	}
	for n := 0; n < 112; n++ {
		lt.trans[i] = uint16(144 + n)
		i++
	}
	lt.maxSym = 285

	for i := range dt.table {
		dt.table[i] = 0
	}
	dt.table[5] = 32
	for i := 0; i < 32; i++ {
		dt.trans[i] = uint16(i)
	}
	dt.maxSym = 29
}
