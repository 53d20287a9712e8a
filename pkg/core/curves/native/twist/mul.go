/*
 * Copyright (c) 2012-2020 MIRACL UK Ltd.
 *
 * This file is part of MIRACL Core
 * (see https://github.com/miracl/core).
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/* Constant time point multiplication */

package twist

// number of signed 4-bit windows, fixed by SCALAR_BITS plus the parity carry
const mulWindows = 1 + (SCALAR_BITS+1+3)/4

/* 1 if b==c, without branching */
func teq(b int32, c int32) int {
	x := uint32(b ^ c)
	// top bit of x|-x is set iff x != 0
	return int(1 ^ ((x | -x) >> 31))
}

/* Constant time select from pre-computed table */
func (E *ECP2) selector(W []*ECP2, b int32) {
	MP := NewECP2(E.c)
	m := b >> 31
	babs := (b ^ m) - m

	babs = (babs - 1) / 2

	for i := int32(0); i < 8; i++ {
		E.cmove(W[i], teq(babs, i)) // conditional move
	}

	MP.Copy(E)
	MP.Neg()
	E.cmove(MP, int(m&1))
}

/* P*=e */
func (E *ECP2) mul(e *Scalar) *ECP2 {
	/* fixed size windows */
	mt := new(Scalar)
	t := new(Scalar)
	P := NewECP2(E.c)
	Q := NewECP2(E.c)
	C := NewECP2(E.c)

	if E.Is_infinity() {
		return P
	}

	var W [8]*ECP2
	var w [mulWindows + 1]int8

	/* precompute table */
	Q.Copy(E)
	Q.Dbl()

	W[0] = NewECP2(E.c)
	W[0].Copy(E)

	for i := 1; i < 8; i++ {
		W[i] = NewECP2(E.c)
		W[i].Copy(W[i-1])
		W[i].Add(Q)
	}

	/* make exponent odd - Add 2P if even, P if odd */
	t.copy(e)
	s := t.parity()
	t.inc(1)
	ns := t.parity()
	mt.copy(t)
	mt.inc(1)
	t.cmove(mt, s)
	Q.cmove(E, ns)
	C.Copy(Q)

	/* convert exponent to signed 4-bit window */
	for i := 0; i < mulWindows; i++ {
		w[i] = int8(t.lastbits(5) - 16)
		t.dec(int(w[i]))
		t.fshr(4)
	}
	w[mulWindows] = int8(t.lastbits(5))

	P.selector(W[:], int32(w[mulWindows]))
	for i := mulWindows - 1; i >= 0; i-- {
		Q.selector(W[:], int32(w[i]))
		P.Dbl()
		P.Dbl()
		P.Dbl()
		P.Dbl()
		P.Add(Q)
	}
	P.Sub(C)
	P.Affine()
	return P
}

// Mul returns [e]P as a new affine point. The sequence of doublings, additions
// and table scans is the same for every e.
func (E *ECP2) Mul(e *Scalar) *ECP2 {
	return E.mul(e)
}

/* P=u0.Q0+u1*Q1+u2*Q2+u3*Q3 */
// Bos & Costello https://eprint.iacr.org/2013/458.pdf
// Faz-Hernandez & Longa & Sanchez  https://eprint.iacr.org/2013/158.pdf
// Side channel attack secure
func Mul4(Q *[4]*ECP2, u *[4]*Scalar) *ECP2 {
	c := Q[0].c
	W := NewECP2(c)
	P := NewECP2(c)
	var T [8]*ECP2
	var t [4]*Scalar
	var bt int8
	var k int8

	var w [SCALAR_BITS + 1]int8
	var s [SCALAR_BITS + 1]int8

	for i := 0; i < 4; i++ {
		t[i] = NewScalarCopy(u[i])
	}

	T[0] = NewECP2(c)
	T[0].Copy(Q[0]) // Q[0]
	T[1] = NewECP2(c)
	T[1].Copy(T[0])
	T[1].Add(Q[1]) // Q[0]+Q[1]
	T[2] = NewECP2(c)
	T[2].Copy(T[0])
	T[2].Add(Q[2]) // Q[0]+Q[2]
	T[3] = NewECP2(c)
	T[3].Copy(T[1])
	T[3].Add(Q[2]) // Q[0]+Q[1]+Q[2]
	T[4] = NewECP2(c)
	T[4].Copy(T[0])
	T[4].Add(Q[3]) // Q[0]+Q[3]
	T[5] = NewECP2(c)
	T[5].Copy(T[1])
	T[5].Add(Q[3]) // Q[0]+Q[1]+Q[3]
	T[6] = NewECP2(c)
	T[6].Copy(T[2])
	T[6].Add(Q[3]) // Q[0]+Q[2]+Q[3]
	T[7] = NewECP2(c)
	T[7].Copy(T[3])
	T[7].Add(Q[3]) // Q[0]+Q[1]+Q[2]+Q[3]

	// Make it odd
	pb := 1 - t[0].parity()
	t[0].inc(pb)

	// fixed bound: the widest scalar plus the parity carry
	nb := 1 + SCALAR_BITS

	// Sign pivot
	s[nb-1] = 1
	for i := 0; i < nb-1; i++ {
		t[0].fshr(1)
		s[i] = 2*int8(t[0].parity()) - 1
	}

	// Recoded exponent
	for i := 0; i < nb; i++ {
		w[i] = 0
		k = 1
		for j := 1; j < 4; j++ {
			bt = s[i] * int8(t[j].parity())
			t[j].fshr(1)
			t[j].dec(int(bt) >> 1)
			w[i] += bt * k
			k *= 2
		}
	}

	// Main loop
	P.selector(T[:], int32(2*w[nb-1]+1))
	for i := nb - 2; i >= 0; i-- {
		P.Dbl()
		W.selector(T[:], int32(2*w[i]+s[i]))
		P.Add(W)
	}

	// apply correction
	W.Copy(P)
	W.Sub(Q[0])
	P.cmove(W, pb)

	P.Affine()
	return P
}
