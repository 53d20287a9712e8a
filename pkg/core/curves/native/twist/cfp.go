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

/* Cofactor clearing on the twist */

package twist

/* BN curves: ψ³(P) + [x]P + ψ([3x]P) + ψ²([x]P) */
func cfpBN(E *ECP2) {
	c := E.c
	T := E.mul(c.bnx)
	if c.negx {
		T.Neg()
	}
	K := NewECP2(c)
	K.Copy(T)
	K.Dbl()
	K.Add(T)

	K.frob(c.frb)
	E.frob(c.frb)
	E.frob(c.frb)
	E.frob(c.frb)
	E.Add(T)
	E.Add(K)
	T.frob(c.frb)
	T.frob(c.frb)
	E.Add(T)
}

/* BLS12 curves: [x^2-x-1]P + ψ([x-1]P) + ψ²(2P) */
func cfpBLS(E *ECP2) {
	c := E.c
	xQ := E.mul(c.bnx)
	x2Q := xQ.mul(c.bnx)

	if c.negx {
		xQ.Neg()
	}

	x2Q.Sub(xQ)
	x2Q.Sub(E)

	xQ.Sub(E)
	xQ.frob(c.frb)

	E.Dbl()
	E.frob(c.frb)
	E.frob(c.frb)

	E.Add(x2Q)
	E.Add(xQ)
}

// Cfp maps any point of the twist into the order r subgroup, using the
// endomorphism formula of the curve's family.
func (E *ECP2) Cfp() {
	E.c.cfp(E)
	E.Affine()
}
