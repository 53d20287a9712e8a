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

/* Finite Field arithmetic */
/* Montgomery mod p functions over a runtime modulus */

package twist

import (
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
)

// NLEN is the number of 64-bit words in a field element.
const NLEN = 6

type limbs [NLEN]uint64

// Field carries every constant that depends on the modulus. A Field is built
// once per curve and never modified.
type Field struct {
	p        limbs
	inv      uint64 // -p^-1 mod 2^64
	one      limbs  // R mod p
	r2       limbs  // R^2 mod p
	half     limbs  // 1/2, Montgomery form
	pm2      []byte // p-2
	sqrtExp  []byte // (p+1)/4
	pm3d4    []byte // (p-3)/4
	pm1d2    []byte // (p-1)/2
	modulus  *big.Int
	modBits  int
	modBytes int
	xi0      int // twist non-residue is xi0 + i
}

// NewField prepares Montgomery arithmetic modulo p, with Fp2 = Fp[i]/(i^2+1)
// and xi0 + i as the quadratic non-residue used by the twist. Only primes with
// p = 3 mod 4 below 2^382 are supported.
func NewField(p *big.Int, xi0 int) (*Field, error) {
	if p == nil || p.Sign() <= 0 || p.BitLen() > 64*NLEN-2 || xi0 < 0 {
		return nil, errors.New("modulus out of range")
	}
	if p.Bit(0) != 1 || p.Bit(1) != 1 {
		return nil, errors.New("modulus must be 3 mod 4")
	}

	f := &Field{
		modulus:  new(big.Int).Set(p),
		modBits:  p.BitLen(),
		modBytes: (p.BitLen() + 7) / 8,
		xi0:      xi0,
	}
	f.p = toLimbs(p)

	inv := uint64(1)
	for i := 0; i < 6; i++ {
		inv *= 2 - f.p[0]*inv
	}
	f.inv = -inv

	R := new(big.Int).Lsh(big.NewInt(1), 64*NLEN)
	f.one = toLimbs(new(big.Int).Mod(R, p))
	f.r2 = toLimbs(new(big.Int).Mod(new(big.Int).Mul(R, R), p))

	h := new(big.Int).ModInverse(big.NewInt(2), p)
	f.half = toLimbs(new(big.Int).Mod(new(big.Int).Mul(h, R), p))

	f.pm2 = new(big.Int).Sub(p, big.NewInt(2)).Bytes()
	f.sqrtExp = new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2).Bytes()
	f.pm3d4 = new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(3)), 2).Bytes()
	f.pm1d2 = new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1).Bytes()
	return f, nil
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int { return new(big.Int).Set(f.modulus) }

// ModBits is the bit length of p.
func (f *Field) ModBits() int { return f.modBits }

// ModBytes is the byte length of p.
func (f *Field) ModBytes() int { return f.modBytes }

func toLimbs(v *big.Int) limbs {
	var l limbs
	words := v.Bits()
	if bits.UintSize == 64 {
		for i := 0; i < len(words) && i < NLEN; i++ {
			l[i] = uint64(words[i])
		}
		return l
	}
	b := v.Bytes()
	var buf [8 * NLEN]byte
	copy(buf[len(buf)-len(b):], b)
	for i := 0; i < NLEN; i++ {
		for j := 0; j < 8; j++ {
			l[i] |= uint64(buf[len(buf)-1-8*i-j]) << (8 * j)
		}
	}
	return l
}

/* z = x*y*R^-1 mod p, CIOS with a masked final subtraction */
func (f *Field) montMul(z, x, y *limbs) {
	var t [NLEN + 2]uint64
	var c, cc, hi, lo uint64
	for i := 0; i < NLEN; i++ {
		c = 0
		for j := 0; j < NLEN; j++ {
			hi, lo = bits.Mul64(x[j], y[i])
			lo, cc = bits.Add64(lo, t[j], 0)
			hi += cc
			lo, cc = bits.Add64(lo, c, 0)
			hi += cc
			t[j] = lo
			c = hi
		}
		t[NLEN], cc = bits.Add64(t[NLEN], c, 0)
		t[NLEN+1] = cc

		m := t[0] * f.inv
		hi, lo = bits.Mul64(m, f.p[0])
		_, cc = bits.Add64(lo, t[0], 0)
		c = hi + cc
		for j := 1; j < NLEN; j++ {
			hi, lo = bits.Mul64(m, f.p[j])
			lo, cc = bits.Add64(lo, t[j], 0)
			hi += cc
			lo, cc = bits.Add64(lo, c, 0)
			hi += cc
			t[j-1] = lo
			c = hi
		}
		t[NLEN-1], cc = bits.Add64(t[NLEN], c, 0)
		t[NLEN] = t[NLEN+1] + cc
	}

	var d limbs
	var b uint64
	for j := 0; j < NLEN; j++ {
		d[j], b = bits.Sub64(t[j], f.p[j], b)
	}
	_, b = bits.Sub64(t[NLEN], 0, b)
	mask := -b
	for j := 0; j < NLEN; j++ {
		z[j] = (t[j] & mask) | (d[j] &^ mask)
	}
}

func (f *Field) modAdd(z, x, y *limbs) {
	var s, d limbs
	var c, b uint64
	for j := 0; j < NLEN; j++ {
		s[j], c = bits.Add64(x[j], y[j], c)
	}
	for j := 0; j < NLEN; j++ {
		d[j], b = bits.Sub64(s[j], f.p[j], b)
	}
	_, b = bits.Sub64(c, 0, b)
	mask := -b
	for j := 0; j < NLEN; j++ {
		z[j] = (s[j] & mask) | (d[j] &^ mask)
	}
}

func (f *Field) modSub(z, x, y *limbs) {
	var d limbs
	var b, c uint64
	for j := 0; j < NLEN; j++ {
		d[j], b = bits.Sub64(x[j], y[j], b)
	}
	mask := -b
	for j := 0; j < NLEN; j++ {
		d[j], c = bits.Add64(d[j], f.p[j]&mask, c)
	}
	*z = d
}

type FP struct {
	f *Field
	x limbs
}

/* Constructors */

func NewFP(f *Field) *FP {
	return &FP{f: f}
}

func NewFPint(f *Field, a int) *FP {
	F := NewFP(f)
	if a < 0 {
		F.x[0] = uint64(-a)
		F.nres()
		F.Neg()
	} else {
		F.x[0] = uint64(a)
		F.nres()
	}
	return F
}

// NewFPbig reduces a modulo p.
func NewFPbig(f *Field, a *big.Int) *FP {
	F := NewFP(f)
	F.x = toLimbs(new(big.Int).Mod(a, f.modulus))
	F.nres()
	return F
}

func NewFPcopy(a *FP) *FP {
	return &FP{f: a.f, x: a.x}
}

/* convert to Montgomery n-residue form */
func (F *FP) nres() {
	F.f.montMul(&F.x, &F.x, &F.f.r2)
}

/* convert back to regular form */
func (F *FP) redc() limbs {
	var one, r limbs
	one[0] = 1
	F.f.montMul(&r, &F.x, &one)
	return r
}

// Big returns the canonical value as a *big.Int.
func (F *FP) Big() *big.Int {
	b := make([]byte, F.f.modBytes)
	F.ToBytes(b)
	return new(big.Int).SetBytes(b)
}

/* 1 if acc is zero, without branching */
func zilch(acc uint64) int {
	return int(1 ^ ((acc | -acc) >> 63))
}

func (F *FP) iszilch() int {
	var acc uint64
	for _, w := range F.x {
		acc |= w
	}
	return zilch(acc)
}

func (F *FP) IsZero() bool {
	return F.iszilch() == 1
}

func (F *FP) isunity() bool {
	var acc uint64
	for j := range F.x {
		acc |= F.x[j] ^ F.f.one[j]
	}
	return zilch(acc) == 1
}

/* 1 if F==a, 0 otherwise */
func (F *FP) teq(a *FP) int {
	var acc uint64
	for j := range F.x {
		acc |= F.x[j] ^ a.x[j]
	}
	return zilch(acc)
}

func (F *FP) Equals(a *FP) bool {
	return F.teq(a) == 1
}

func (F *FP) copy(b *FP) {
	F.f = b.f
	F.x = b.x
}

func (F *FP) zero() {
	F.x = limbs{}
}

func (F *FP) one() {
	F.x = F.f.one
}

/* set F=b if d==1, d must be 0 or 1 */
func (F *FP) cmove(b *FP, d int) {
	mask := -uint64(d & 1)
	for j := range F.x {
		F.x[j] ^= (F.x[j] ^ b.x[j]) & mask
	}
}

/* parity of the canonical value */
func (F *FP) sign() int {
	r := F.redc()
	return int(r[0] & 1)
}

/* 1 if F is lexically larger than -F, -1 if smaller, 0 for zero */
func (F *FP) islarger() int {
	if F.IsZero() {
		return 0
	}
	fx := F.redc()
	var sx limbs
	var b uint64
	for j := 0; j < NLEN; j++ {
		sx[j], b = bits.Sub64(F.f.p[j], fx[j], b)
	}
	b = 0
	for j := 0; j < NLEN; j++ {
		_, b = bits.Sub64(sx[j], fx[j], b)
	}
	if b == 1 {
		return 1
	}
	return -1
}

func (F *FP) Mul(b *FP) {
	F.f.montMul(&F.x, &F.x, &b.x)
}

func (F *FP) Sqr() {
	F.f.montMul(&F.x, &F.x, &F.x)
}

func (F *FP) Add(b *FP) {
	F.f.modAdd(&F.x, &F.x, &b.x)
}

func (F *FP) Sub(b *FP) {
	F.f.modSub(&F.x, &F.x, &b.x)
}

/* F=b-F */
func (F *FP) rsub(b *FP) {
	F.f.modSub(&F.x, &b.x, &F.x)
}

func (F *FP) Neg() {
	var z limbs
	F.f.modSub(&F.x, &z, &F.x)
}

func (F *FP) imul(c int) {
	F.Mul(NewFPint(F.f, c))
}

func (F *FP) div2() {
	F.f.montMul(&F.x, &F.x, &F.f.half)
}

/* F^e for a public big-endian exponent */
func (F *FP) pow(e []byte) *FP {
	r := NewFP(F.f)
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

/* F=1/F, zero maps to zero */
func (F *FP) Invert() {
	F.copy(F.pow(F.f.pm2))
}

/* 1 if F is a square (zero included), 0 otherwise */
func (F *FP) qr() int {
	r := F.pow(F.f.pm1d2)
	m := NewFPint(F.f, -1)
	return 1 - r.teq(m)
}

/* a square root of F, valid only when qr()==1 */
func (F *FP) Sqrt() *FP {
	return F.pow(F.f.sqrtExp)
}

func (F *FP) ToBytes(b []byte) {
	r := F.redc()
	n := F.f.modBytes
	for i := 0; i < n; i++ {
		b[n-1-i] = byte(r[i/8] >> (8 * uint(i%8)))
	}
}

// FP_fromBytes reads modBytes big-endian bytes. The second result is false when
// the value is not below p.
func FP_fromBytes(f *Field, b []byte) (*FP, bool) {
	var x limbs
	n := f.modBytes
	for i := 0; i < n; i++ {
		x[i/8] |= uint64(b[n-1-i]) << (8 * uint(i%8))
	}
	var bw uint64
	for j := 0; j < NLEN; j++ {
		_, bw = bits.Sub64(x[j], f.p[j], bw)
	}
	F := &FP{f: f, x: x}
	F.nres()
	return F, bw == 1
}
