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

/* Finite Field arithmetic  Fp^2 functions */

/* FP2 elements are of the form a+ib, where i is sqrt(-1) */

package twist

import "math/big"

type FP2 struct {
	a *FP
	b *FP
}

/* Constructors */
func NewFP2(f *Field) *FP2 {
	return &FP2{a: NewFP(f), b: NewFP(f)}
}

func NewFP2ints(f *Field, a int, b int) *FP2 {
	return &FP2{a: NewFPint(f, a), b: NewFPint(f, b)}
}

func NewFP2copy(x *FP2) *FP2 {
	return &FP2{a: NewFPcopy(x.a), b: NewFPcopy(x.b)}
}

func NewFP2fps(c *FP, d *FP) *FP2 {
	return &FP2{a: NewFPcopy(c), b: NewFPcopy(d)}
}

func NewFP2fp(c *FP) *FP2 {
	return &FP2{a: NewFPcopy(c), b: NewFP(c.f)}
}

func NewFP2bigs(f *Field, c *big.Int, d *big.Int) *FP2 {
	return &FP2{a: NewFPbig(f, c), b: NewFPbig(f, d)}
}

/* test this=0 ? */
func (F *FP2) IsZero() bool {
	return F.iszilch() == 1
}

func (F *FP2) iszilch() int {
	return F.a.iszilch() & F.b.iszilch()
}

func (F *FP2) islarger() int {
	if F.IsZero() {
		return 0
	}
	cmp := F.b.islarger()
	if cmp != 0 {
		return cmp
	}
	return F.a.islarger()
}

// ToBytes writes b then a, each modBytes wide.
func (F *FP2) ToBytes(bf []byte) {
	MB := F.a.f.modBytes
	F.b.ToBytes(bf[:MB])
	F.a.ToBytes(bf[MB : 2*MB])
}

// FP2_fromBytes is the inverse of ToBytes. The second result reports whether
// both halves were canonical.
func FP2_fromBytes(f *Field, bf []byte) (*FP2, bool) {
	MB := f.modBytes
	tb, okb := FP_fromBytes(f, bf[:MB])
	ta, oka := FP_fromBytes(f, bf[MB:2*MB])
	return &FP2{a: ta, b: tb}, oka && okb
}

func (F *FP2) cmove(g *FP2, d int) {
	F.a.cmove(g.a, d)
	F.b.cmove(g.b, d)
}

/* test this=1 ? */
func (F *FP2) isunity() bool {
	return F.a.isunity() && F.b.IsZero()
}

/* test this=x */
func (F *FP2) Equals(x *FP2) bool {
	return F.a.Equals(x.a) && F.b.Equals(x.b)
}

// GetA returns the real part.
func (F *FP2) GetA() *big.Int {
	return F.a.Big()
}

// GetB returns the imaginary part.
func (F *FP2) GetB() *big.Int {
	return F.b.Big()
}

/* copy this=x */
func (F *FP2) copy(x *FP2) {
	F.a.copy(x.a)
	F.b.copy(x.b)
}

/* set this=0 */
func (F *FP2) zero() {
	F.a.zero()
	F.b.zero()
}

/* set this=1 */
func (F *FP2) one() {
	F.a.one()
	F.b.zero()
}

/* sgn0: parity of a, or of b when a is zero */
func (F *FP2) sign() int {
	p1 := F.a.sign()
	p2 := F.b.sign()
	u := F.a.iszilch()
	p1 ^= (p1 ^ p2) & u
	return p1
}

/* negate this mod Modulus */
func (F *FP2) Neg() {
	F.a.Neg()
	F.b.Neg()
}

/* set to a-ib */
func (F *FP2) conj() {
	F.b.Neg()
}

/* this+=a */
func (F *FP2) Add(x *FP2) {
	F.a.Add(x.a)
	F.b.Add(x.b)
}

/* this-=a */
func (F *FP2) Sub(x *FP2) {
	F.a.Sub(x.a)
	F.b.Sub(x.b)
}

/* this=x-this */
func (F *FP2) rsub(x *FP2) {
	F.a.rsub(x.a)
	F.b.rsub(x.b)
}

/* this*=s, where s is an FP */
func (F *FP2) pmul(s *FP) {
	F.a.Mul(s)
	F.b.Mul(s)
}

/* this*=i, where i is an int */
func (F *FP2) imul(c int) {
	k := NewFPint(F.a.f, c)
	F.a.Mul(k)
	F.b.Mul(k)
}

/* this*=this */
func (F *FP2) Sqr() {
	w1 := NewFPcopy(F.a)
	w3 := NewFPcopy(F.a)
	mb := NewFPcopy(F.b)
	w1.Add(F.b)

	w3.Add(F.a)
	F.b.Mul(w3)

	mb.Neg()
	F.a.Add(mb)

	F.a.Mul(w1)
}

/* this*=y */
func (F *FP2) Mul(y *FP2) {
	A := NewFPcopy(F.a)
	A.Mul(y.a)
	B := NewFPcopy(F.b)
	B.Mul(y.b)

	C := NewFPcopy(F.a)
	C.Add(F.b)
	D := NewFPcopy(y.a)
	D.Add(y.b)
	C.Mul(D)
	C.Sub(A)
	C.Sub(B)

	F.a.copy(A)
	F.a.Sub(B)
	F.b.copy(C)
}

/* this^e for a public big-endian exponent */
func (F *FP2) pow(e []byte) *FP2 {
	r := NewFP2(F.a.f)
	r.one()
	for _, v := range e {
		for i := 7; i >= 0; i-- {
			r.Sqr()
			if (v>>uint(i))&1 == 1 {
				r.Mul(F)
			}
		}
	}
	return r
}

/* 1 if this is a square in Fp2 (zero included) */
func (F *FP2) qr() int {
	c := NewFP2copy(F)
	c.conj()
	c.Mul(F)
	return c.a.qr()
}

/* square root for p = 3 mod 4, result normalised to sign 0 */
func (F *FP2) Sqrt() {
	f := F.a.f
	a1 := F.pow(f.pm3d4)
	alpha := NewFP2copy(a1)
	alpha.Sqr()
	alpha.Mul(F)
	x0 := NewFP2copy(a1)
	x0.Mul(F)

	m1 := NewFP2ints(f, -1, 0)
	neg1 := alpha.a.teq(m1.a) & alpha.b.iszilch()

	c1 := NewFP2copy(x0)
	c1.times_i()

	b := NewFP2copy(alpha)
	b.a.Add(NewFPint(f, 1))
	b = b.pow(f.pm1d2)
	b.Mul(x0)

	b.cmove(c1, neg1)
	F.copy(b)

	sgn := F.sign()
	nr := NewFP2copy(F)
	nr.Neg()
	F.cmove(nr, sgn)
}

/* this=1/this */
func (F *FP2) Invert() {
	w1 := NewFPcopy(F.a)
	w2 := NewFPcopy(F.b)

	w1.Sqr()
	w2.Sqr()
	w1.Add(w2)
	w1.Invert()
	F.a.Mul(w1)
	w1.Neg()
	F.b.Mul(w1)
}

/* this/=2 */
func (F *FP2) div2() {
	F.a.div2()
	F.b.div2()
}

/* this*=sqrt(-1) */
func (F *FP2) times_i() {
	z := NewFPcopy(F.a)
	F.a.copy(F.b)
	F.a.Neg()
	F.b.copy(z)
}

/* w*=(xi0+sqrt(-1)) */
func (F *FP2) Mul_ip() {
	t := NewFP2copy(F)
	t.imul(F.a.f.xi0)
	F.times_i()
	F.Add(t)
}

/* w/=(xi0+sqrt(-1)) */
func (F *FP2) div_ip() {
	z := NewFP2ints(F.a.f, F.a.f.xi0, 1)
	z.Invert()
	F.Mul(z)
}

func (F *FP2) String() string {
	return "[" + F.a.Big().Text(16) + "," + F.b.Big().Text(16) + "]"
}
