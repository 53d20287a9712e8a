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

package twist

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Pairing Friendly?
type CurveFamily int

const (
	BN CurveFamily = iota + 1
	BLS12
)

func (f CurveFamily) String() string {
	switch f {
	case BN:
		return "BN"
	case BLS12:
		return "BLS12"
	}
	return fmt.Sprintf("CurveFamily(%d)", int(f))
}

// Sextic twist type
type SexticTwist int

const (
	D_TYPE SexticTwist = iota
	M_TYPE
)

func (t SexticTwist) String() string {
	if t == M_TYPE {
		return "M"
	}
	return "D"
}

// smallest |Z| tried for the SvdW map
const maxRiadZ = 16

// CurveParams describes a curve by its seed. Everything else is derived by
// NewCurve.
type CurveParams struct {
	Name   string
	Family CurveFamily
	Twist  SexticTwist
	Seed   *big.Int // signed curve parameter u
	B      int      // E: y^2 = x^3 + B
	Xi0    int      // twist non-residue xi = Xi0 + i
	// Affine generator as {real, imaginary} parts. When nil the generator is
	// Cfp(hap2point(1)).
	Gx, Gy           *[2]*big.Int
	AllowAltCompress bool
}

// Curve is the immutable, validated form of CurveParams.
type Curve struct {
	name    string
	family  CurveFamily
	twist   SexticTwist
	b       int
	negx    bool
	bnx     *Scalar // |u|
	field   *Field
	modulus *big.Int
	order   *big.Int
	r       *Scalar
	bt      *FP2 // B/xi or B*xi
	frb     *FP2 // Frobenius constant
	riadz   int
	sqrtm3  *FP
	w       *FP2 // sqrt(RHS(Z))
	gx, gy  *FP2
	alt     bool
	cfp     func(*ECP2)
}

func bnPrimes(u *big.Int) (p, r *big.Int) {
	u2 := new(big.Int).Mul(u, u)
	u3 := new(big.Int).Mul(u2, u)
	u4 := new(big.Int).Mul(u3, u)

	t := new(big.Int).Mul(big.NewInt(36), u4)
	t.Add(t, new(big.Int).Mul(big.NewInt(36), u3))
	t.Add(t, new(big.Int).Mul(big.NewInt(6), u))
	t.Add(t, big.NewInt(1))

	p = new(big.Int).Add(t, new(big.Int).Mul(big.NewInt(24), u2))
	r = new(big.Int).Add(t, new(big.Int).Mul(big.NewInt(18), u2))
	return p, r
}

func bls12Primes(u *big.Int) (p, r *big.Int) {
	u2 := new(big.Int).Mul(u, u)
	r = new(big.Int).Mul(u2, u2)
	r.Sub(r, u2)
	r.Add(r, big.NewInt(1))

	um1 := new(big.Int).Sub(u, big.NewInt(1))
	p = new(big.Int).Mul(um1, um1)
	p.Mul(p, r)
	p.Quo(p, big.NewInt(3))
	p.Add(p, u)
	return p, r
}

// NewCurve derives and checks every constant the G2 routines need.
func NewCurve(params CurveParams) (*Curve, error) {
	if params.Seed == nil || params.Seed.Sign() == 0 {
		return nil, errors.New("missing curve seed")
	}
	if params.B <= 0 {
		return nil, errors.New("curve coefficient must be positive")
	}

	c := &Curve{
		name:   params.Name,
		family: params.Family,
		twist:  params.Twist,
		b:      params.B,
		negx:   params.Seed.Sign() < 0,
	}

	switch params.Family {
	case BN:
		c.modulus, c.order = bnPrimes(params.Seed)
		c.cfp = cfpBN
	case BLS12:
		c.modulus, c.order = bls12Primes(params.Seed)
		c.cfp = cfpBLS
	default:
		return nil, errors.Errorf("unsupported curve family %v", params.Family)
	}
	if !c.modulus.ProbablyPrime(20) || !c.order.ProbablyPrime(20) {
		return nil, errors.New("seed does not give prime modulus and order")
	}
	if new(big.Int).Mod(c.modulus, big.NewInt(3)).Int64() != 1 {
		return nil, errors.New("modulus must be 1 mod 3")
	}

	var err error
	if c.bnx, err = NewScalar(new(big.Int).Abs(params.Seed)); err != nil {
		return nil, errors.Wrap(err, "seed")
	}
	if c.r, err = NewScalar(c.order); err != nil {
		return nil, errors.Wrap(err, "order")
	}
	if c.field, err = NewField(c.modulus, params.Xi0); err != nil {
		return nil, errors.Wrap(err, "field")
	}
	f := c.field

	xi := NewFP2ints(f, params.Xi0, 1)
	if xi.qr() == 1 {
		return nil, errors.New("twist element is a square")
	}

	c.bt = NewFP2ints(f, params.B, 0)
	if c.twist == D_TYPE {
		c.bt.div_ip()
	} else {
		c.bt.Mul_ip()
	}

	// X = xi^((p-1)/6), inverted for the M-type twist
	e := new(big.Int).Sub(c.modulus, big.NewInt(1))
	e.Quo(e, big.NewInt(6))
	c.frb = xi.pow(e.Bytes())
	if c.twist == M_TYPE {
		c.frb.Invert()
	}

	c.sqrtm3 = NewFPint(f, -3).Sqrt()
	chk := NewFPcopy(c.sqrtm3)
	chk.Sqr()
	if !chk.Equals(NewFPint(f, -3)) {
		return nil, errors.New("no square root of -3")
	}

	for i := 1; i <= 2*maxRiadZ && c.riadz == 0; i++ {
		z := (i + 1) / 2
		if i%2 == 0 {
			z = -z
		}
		gz := RHS2(c, NewFP2ints(f, z, 0))
		if !gz.IsZero() && gz.qr() == 1 {
			c.riadz = z
			c.w = gz
		}
	}
	if c.riadz == 0 {
		return nil, errors.New("no suitable SvdW constant")
	}
	if c.riadz == -1 && c.twist == M_TYPE && c.b == 4 {
		c.w = NewFP2ints(f, 2, 1)
	} else {
		c.w.Sqrt()
	}

	c.alt = params.AllowAltCompress && (f.modBits-1)%8 <= 4

	if params.Gx != nil && params.Gy != nil {
		gx := NewFP2bigs(f, params.Gx[0], params.Gx[1])
		gy := NewFP2bigs(f, params.Gy[0], params.Gy[1])
		G, err := ECP2_fromAffine(c, gx, gy)
		if err != nil {
			return nil, errors.Wrap(err, "generator")
		}
		c.gx, c.gy = G.x, G.y
	} else {
		G := ECP2_hap2point(c, big.NewInt(1))
		G.Cfp()
		G.Affine()
		c.gx, c.gy = G.x, G.y
	}

	G := ECP2_generator(c)
	if G.Is_infinity() || !G.InSubgroup() {
		return nil, errors.New("generator is not in the order r subgroup")
	}
	return c, nil
}

func (c *Curve) Name() string { return c.name }

func (c *Curve) Family() CurveFamily { return c.family }

func (c *Curve) Twist() SexticTwist { return c.twist }

func (c *Curve) Field() *Field { return c.field }

// Modulus returns a copy of p.
func (c *Curve) Modulus() *big.Int { return new(big.Int).Set(c.modulus) }

// Order returns a copy of the prime subgroup order r.
func (c *Curve) Order() *big.Int { return new(big.Int).Set(c.order) }

// Seed returns the signed curve parameter u.
func (c *Curve) Seed() *big.Int {
	x := c.bnx.Big()
	if c.negx {
		x.Neg(x)
	}
	return x
}

// AltCompress reports whether points use the flag-bit layout instead of a
// leading tag byte.
func (c *Curve) AltCompress() bool { return c.alt }

// SvdWZ is the constant Z used by ECP2_map2point.
func (c *Curve) SvdWZ() int { return c.riadz }

// FP2FromBigs builds a field element a + b*i for this curve.
func (c *Curve) FP2FromBigs(a, b *big.Int) *FP2 {
	return NewFP2bigs(c.field, a, b)
}
