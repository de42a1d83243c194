package argon2core

// addressGenerator produces the pseudo-random 64-bit words Argon2i needs
// for one segment's worth of blocks. Argon2i never looks at the content
// of the blocks it is filling — only at this synthetic counter block —
// so memory access patterns are independent of the secret being hashed.
type addressGenerator struct {
	input   Block
	address Block
	counter uint32
}

// newAddressGenerator seeds the synthetic input block for one segment:
// I[0..5] = (pass, lane, slice, memoryBlocks, timeCost, addressingFlag),
// I[6] is a counter starting at 0, and the remaining words are zero.
func newAddressGenerator(pos Position, p Params) *addressGenerator {
	g := &addressGenerator{}
	g.input[0] = uint64(pos.Pass)
	g.input[1] = uint64(pos.Lane)
	g.input[2] = uint64(pos.Slice)
	g.input[3] = uint64(p.MemoryBlocks)
	g.input[4] = uint64(p.TimeCost)
	g.input[5] = uint64(p.Addressing)
	return g
}

// next refreshes the address block on its first call and then every 128
// words (i.e. at the start of every new block-sized group) by
// compressing the counter block twice through the zero block, then
// returns the pseudo-random word for index i within the segment. A
// segment whose fill starts past index 0 (pass 0, slice 0 starts at 2)
// still reads word i of the segment's first address block.
func (g *addressGenerator) next(i uint32) uint64 {
	if i%QWordsInBlock == 0 || g.counter == 0 {
		g.counter++
		g.input[6] = uint64(g.counter)

		var zero, t Block
		FillBlock(&zero, &g.input, &t)
		FillBlock(&zero, &t, &g.address)
	}
	return g.address[i%QWordsInBlock]
}
