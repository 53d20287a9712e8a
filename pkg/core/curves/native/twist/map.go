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

/* Mapping field elements and octet strings to the twist */

package twist

import "math/big"

// ECP2_hap2point tries x = 1 + h.i, 1 + (h+1).i, ... until x^3+B' is a square.
// NOT constant time: the number of trials depends on h. Never use it on
// secret input.
func ECP2_hap2point(c *Curve, h *big.Int) *ECP2 {
	one := big.NewInt(1)
	x := new(big.Int).Set(h)
	var Q *ECP2
	for {
		X := NewFP2bigs(c.field, one, x)
		Q = NewECP2fp2(c, X, 0)
		if !Q.Is_infinity() {
			break
		}
		x.Add(x, one)
	}
	return Q
}

/* Deterministic mapping of Fp2 to point on curve */
// The result is on the twist but not yet in the order r subgroup; callers
// follow it with Cfp.
func ECP2_map2point(c *Curve, H *FP2) *ECP2 {
	// Shallue and van de Woestijne
	f := c.field
	NY := NewFP2ints(f, 1, 0)
	T := NewFP2copy(H)
	sgn := T.sign()

	Z := NewFPint(f, c.riadz)
	X1 := NewFP2fp(Z)
	X3 := NewFP2copy(X1)
	A := RHS2(c, X1)
	W := NewFP2copy(c.w)

	Z.Mul(c.sqrtm3)

	T.Sqr()
	Y := NewFP2copy(A)
	Y.Mul(T)
	T.copy(NY)
	T.Add(Y)
	Y.rsub(NY)
	NY.copy(T)
	NY.Mul(Y)

	NY.pmul(Z)
	NY.Invert()

	W.pmul(Z)
	nw := NewFP2copy(W)
	nw.Neg()
	W.cmove(nw, W.sign())
	W.pmul(Z)
	W.Mul(H)
	W.Mul(Y)
	W.Mul(NY)

	X1.Neg()
	X1.div2()
	X2 := NewFP2copy(X1)
	X1.Sub(W)
	X2.Add(W)
	A.Add(A)
	A.Add(A)
	T.Sqr()
	T.Mul(NY)
	T.Sqr()
	A.Mul(T)
	X3.Add(A)

	Y.copy(RHS2(c, X2))
	X3.cmove(X2, Y.qr())
	Y.copy(RHS2(c, X1))
	X3.cmove(X1, Y.qr())
	Y.copy(RHS2(c, X3))
	Y.Sqrt()

	ne := Y.sign() ^ sgn
	W.copy(Y)
	W.Neg()
	Y.cmove(W, ne)

	return NewECP2fp2s(c, X3, Y)
}

/* Map octet string to curve point */
// Legacy path through ECP2_hap2point, so NOT constant time. h is read as a
// big-endian integer of any length and reduced mod p.
func ECP2_mapit(c *Curve, h []byte) *ECP2 {
	x := new(big.Int).SetBytes(h)
	x.Mod(x, c.modulus)

	Q := ECP2_hap2point(c, x)
	Q.Cfp()
	return Q
}
