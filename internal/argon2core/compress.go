package argon2core

// blamka is the Argon2 variant of the BLAKE2b mixing function G. Unlike
// plain BLAKE2b, each addition folds in twice the product of the two
// operands' low 32 bits; this extra multiplication is what makes Argon2's
// compression function cheap to evaluate on a CPU register file but
// unfriendly to bit-sliced or GPU-style wide SIMD evaluation.
func blamka(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a += b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 32)
	c += d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 24)

	a += b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 16)
	c += d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 63)

	return a, b, c, d
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// round applies blamka to the four columns and then the four diagonals
// of a 16-word group, matching the BLAKE2b round structure.
func round(v *[16]uint64) {
	v[0], v[4], v[8], v[12] = blamka(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = blamka(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = blamka(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = blamka(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = blamka(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = blamka(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = blamka(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = blamka(v[3], v[4], v[9], v[14])
}

// permute applies the Argon2 permutation P to an entire block: one
// blamka round over each of the 8 contiguous 16-word column groups,
// then one blamka round over each of the 8 strided 16-word row groups.
// The row-group index set matches the Argon2 reference implementation's
// "transpose" access pattern: words {2i, 2i+1} taken from each of the
// eight 16-word groups.
func permute(r *Block) {
	for i := 0; i < QWordsInBlock; i += 16 {
		var v [16]uint64
		copy(v[:], r[i:i+16])
		round(&v)
		copy(r[i:i+16], v[:])
	}

	for i := 0; i < 16; i += 2 {
		var v [16]uint64
		for g := 0; g < 8; g++ {
			v[2*g] = r[16*g+i]
			v[2*g+1] = r[16*g+i+1]
		}
		round(&v)
		for g := 0; g < 8; g++ {
			r[16*g+i] = v[2*g]
			r[16*g+i+1] = v[2*g+1]
		}
	}
}

// FillBlock computes the Argon2 compression function G(prev, ref) and
// writes the result into out. The algorithm:
//
//  1. R = ref XOR prev
//  2. Q = R (saved copy)
//  3. Apply the Argon2 permutation P to R (column groups, then row groups)
//  4. out = Q XOR R
//
// This is the first-pass form; every target block on pass 0 is written
// fully from the compression output. Reference: Argon2 specification
// section 3.4 (the "G" / "GB" compression function built from 16
// applications of an unkeyed BLAKE2b-like round: 8 over the column
// groups, then 8 over the row groups).
func FillBlock(prev, ref, out *Block) {
	var r, q Block
	r.CopyXOR(prev, ref)
	q = r

	permute(&r)

	out.CopyXOR(&q, &r)
}

// FillBlockXOR computes the same compression as FillBlock but additionally
// XORs the result into out's existing contents, which is the rule for
// every pass after the first: out = out_old XOR (Q XOR R).
func FillBlockXOR(prev, ref, out *Block) {
	var r, q Block
	r.CopyXOR(prev, ref)
	q = r

	permute(&r)

	var fresh Block
	fresh.CopyXOR(&q, &r)
	out.XOR(&fresh)
}

// Compress dispatches to FillBlock or FillBlockXOR depending on xorOut,
// matching the pass-0-vs-later-passes rule from the Argon2 specification.
func Compress(prev, ref, out *Block, xorOut bool) {
	if xorOut {
		FillBlockXOR(prev, ref, out)
	} else {
		FillBlock(prev, ref, out)
	}
}
