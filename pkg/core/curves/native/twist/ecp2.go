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

/* Weierstrass elliptic curve functions over FP2 */

package twist

import "github.com/pkg/errors"

var (
	ErrInvalidLength   = errors.New("invalid point encoding length")
	ErrInvalidEncoding = errors.New("invalid point encoding")
	ErrNotOnCurve      = errors.New("point is not on the curve")
)

// ECP2 is a point on the twist in homogeneous projective coordinates.
type ECP2 struct {
	c *Curve
	x *FP2
	y *FP2
	z *FP2
}

// NewECP2 returns the point at infinity (0, 1, 0).
func NewECP2(c *Curve) *ECP2 {
	E := new(ECP2)
	E.c = c
	E.x = NewFP2(c.field)
	E.y = NewFP2ints(c.field, 1, 0)
	E.z = NewFP2(c.field)
	return E
}

func (E *ECP2) Curve() *Curve {
	return E.c
}

/* Test this=O? */
func (E *ECP2) Is_infinity() bool {
	return E.x.iszilch()&E.z.iszilch() == 1
}

/* copy this=P */
func (E *ECP2) Copy(P *ECP2) {
	E.c = P.c
	E.x.copy(P.x)
	E.y.copy(P.y)
	E.z.copy(P.z)
}

/* set this=O */
func (E *ECP2) inf() {
	E.x.zero()
	E.y.one()
	E.z.zero()
}

/* set this=-this */
func (E *ECP2) Neg() {
	E.y.Neg()
}

/* Conditional move of Q to P dependant on d */
func (E *ECP2) cmove(Q *ECP2, d int) {
	E.x.cmove(Q.x, d)
	E.y.cmove(Q.y, d)
	E.z.cmove(Q.z, d)
}

/* Test if P == Q */
func (E *ECP2) Equals(Q *ECP2) bool {
	a := NewFP2copy(E.x)
	b := NewFP2copy(Q.x)
	a.Mul(Q.z)
	b.Mul(E.z)

	if !a.Equals(b) {
		return false
	}
	a.copy(E.y)
	b.copy(Q.y)
	a.Mul(Q.z)
	b.Mul(E.z)
	return a.Equals(b)
}

/* set to Affine - (x,y,z) to (x,y) */
func (E *ECP2) Affine() {
	if E.Is_infinity() {
		return
	}
	if E.z.isunity() {
		return
	}
	E.z.Invert()
	E.x.Mul(E.z)
	E.y.Mul(E.z)
	E.z.one()
}

/* extract affine x as FP2 */
func (E *ECP2) GetX() *FP2 {
	W := NewECP2(E.c)
	W.Copy(E)
	W.Affine()
	return W.x
}

/* extract affine y as FP2 */
func (E *ECP2) GetY() *FP2 {
	W := NewECP2(E.c)
	W.Copy(E)
	W.Affine()
	return W.y
}

func (E *ECP2) String() string {
	W := NewECP2(E.c)
	W.Copy(E)
	W.Affine()
	if W.Is_infinity() {
		return "infinity"
	}
	return "(" + W.x.String() + "," + W.y.String() + ")"
}

/* Calculate RHS of twisted curve equation x^3+B' */
func RHS2(c *Curve, x *FP2) *FP2 {
	r := NewFP2copy(x)
	r.Sqr()
	r.Mul(x)
	r.Add(c.bt)
	return r
}

/* construct this from (x,y) - but set to O if not on curve */
func NewECP2fp2s(c *Curve, ix *FP2, iy *FP2) *ECP2 {
	E := NewECP2(c)
	E.x.copy(ix)
	E.y.copy(iy)
	E.z.one()
	rhs := RHS2(c, E.x)
	y2 := NewFP2copy(E.y)
	y2.Sqr()
	if !y2.Equals(rhs) {
		E.inf()
	}
	return E
}

/* construct this from x - but set to O if not on curve */
func NewECP2fp2(c *Curve, ix *FP2, s int) *ECP2 {
	E := NewECP2(c)
	E.x.copy(ix)
	E.y.one()
	E.z.one()
	rhs := RHS2(c, E.x)
	if rhs.qr() == 1 {
		rhs.Sqrt()
		ny := NewFP2copy(rhs)
		ny.Neg()
		rhs.cmove(ny, rhs.sign()^(s&1))
		E.y.copy(rhs)
	} else {
		E.inf()
	}
	return E
}

// ECP2_fromAffine is NewECP2fp2s, reporting ErrNotOnCurve instead of
// silently returning the identity.
func ECP2_fromAffine(c *Curve, ix *FP2, iy *FP2) (*ECP2, error) {
	E := NewECP2fp2s(c, ix, iy)
	if E.Is_infinity() {
		return nil, ErrNotOnCurve
	}
	return E, nil
}

// ECP2_fromX is NewECP2fp2, reporting ErrNotOnCurve when x^3+B' has no root.
func ECP2_fromX(c *Curve, ix *FP2, s int) (*ECP2, error) {
	E := NewECP2fp2(c, ix, s)
	if E.Is_infinity() {
		return nil, ErrNotOnCurve
	}
	return E, nil
}

func ECP2_generator(c *Curve) *ECP2 {
	G := NewECP2(c)
	G.x.copy(c.gx)
	G.y.copy(c.gy)
	G.z.one()
	return G
}

/* this+=this */
func (E *ECP2) Dbl() int {
	D := E.c.twist == D_TYPE
	iy := NewFP2copy(E.y)
	if D {
		iy.Mul_ip()
	}

	t0 := NewFP2copy(E.y)
	t0.Sqr()
	if D {
		t0.Mul_ip()
	}
	t1 := NewFP2copy(iy)
	t1.Mul(E.z)
	t2 := NewFP2copy(E.z)
	t2.Sqr()

	E.z.copy(t0)
	E.z.Add(t0)
	E.z.Add(E.z)
	E.z.Add(E.z)

	t2.imul(3 * E.c.b)
	if !D {
		t2.Mul_ip()
	}
	x3 := NewFP2copy(t2)
	x3.Mul(E.z)

	y3 := NewFP2copy(t0)

	y3.Add(t2)
	E.z.Mul(t1)
	t1.copy(t2)
	t1.Add(t2)
	t2.Add(t1)
	t0.Sub(t2) //y^2-9bz^2
	y3.Mul(t0)
	y3.Add(x3) //(y^2+3z*2)(y^2-9z^2)+3b.z^2.8y^2
	t1.copy(E.x)
	t1.Mul(iy)
	E.x.copy(t0)
	E.x.Mul(t1)
	E.x.Add(E.x) //(y^2-9bz^2)xy2

	E.y.copy(y3)
	return 1
}

/* this+=Q - return 0 for Add, 1 for double, -1 for O */
func (E *ECP2) Add(Q *ECP2) int {
	D := E.c.twist == D_TYPE
	b := 3 * E.c.b
	t0 := NewFP2copy(E.x)
	t0.Mul(Q.x) // x.Q.x
	t1 := NewFP2copy(E.y)
	t1.Mul(Q.y) // y.Q.y

	t2 := NewFP2copy(E.z)
	t2.Mul(Q.z)
	t3 := NewFP2copy(E.x)
	t3.Add(E.y) //t3=X1+Y1
	t4 := NewFP2copy(Q.x)
	t4.Add(Q.y) //t4=X2+Y2
	t3.Mul(t4)  //t3=(X1+Y1)(X2+Y2)
	t4.copy(t0)
	t4.Add(t1) //t4=X1.X2+Y1.Y2

	t3.Sub(t4)
	if D {
		t3.Mul_ip() //t3=(X1+Y1)(X2+Y2)-(X1.X2+Y1.Y2) = X1.Y2+X2.Y1
	}
	t4.copy(E.y)
	t4.Add(E.z) //t4=Y1+Z1
	x3 := NewFP2copy(Q.y)
	x3.Add(Q.z) //x3=Y2+Z2

	t4.Mul(x3)  //t4=(Y1+Z1)(Y2+Z2)
	x3.copy(t1) //
	x3.Add(t2)  //X3=Y1.Y2+Z1.Z2

	t4.Sub(x3)
	if D {
		t4.Mul_ip() //t4=(Y1+Z1)(Y2+Z2) - (Y1.Y2+Z1.Z2) = Y1.Z2+Y2.Z1
	}
	x3.copy(E.x)
	x3.Add(E.z) // x3=X1+Z1
	y3 := NewFP2copy(Q.x)
	y3.Add(Q.z) // y3=X2+Z2
	x3.Mul(y3)  // x3=(X1+Z1)(X2+Z2)
	y3.copy(t0)
	y3.Add(t2)  // y3=X1.X2+Z1+Z2
	y3.rsub(x3) // y3=(X1+Z1)(X2+Z2) - (X1.X2+Z1.Z2) = X1.Z2+X2.Z1

	if D {
		t0.Mul_ip() // x.Q.x
		t1.Mul_ip() // y.Q.y
	}
	x3.copy(t0)
	x3.Add(t0)
	t0.Add(x3)
	t2.imul(b)
	if !D {
		t2.Mul_ip()
	}
	z3 := NewFP2copy(t1)
	z3.Add(t2)
	t1.Sub(t2)
	y3.imul(b)
	if !D {
		y3.Mul_ip()
	}
	x3.copy(y3)
	x3.Mul(t4)
	t2.copy(t3)
	t2.Mul(t1)
	x3.rsub(t2)
	y3.Mul(t0)
	t1.Mul(z3)
	y3.Add(t1)
	t0.Mul(t3)
	z3.Mul(t4)
	z3.Add(t0)

	E.x.copy(x3)
	E.y.copy(y3)
	E.z.copy(z3)
	return 0
}

/* set this-=Q */
func (E *ECP2) Sub(Q *ECP2) int {
	NQ := NewECP2(Q.c)
	NQ.Copy(Q)
	NQ.Neg()
	return E.Add(NQ)
}

/* set this*=q, where q is Modulus, using Frobenius */
func (E *ECP2) frob(X *FP2) {
	X2 := NewFP2copy(X)
	X2.Sqr()
	E.x.conj()
	E.y.conj()
	E.z.conj()

	E.x.Mul(X2)
	E.y.Mul(X2)
	E.y.Mul(X)
}

// IsOnCurve checks y^2.z = x^3 + B'.z^3. The identity passes.
func (E *ECP2) IsOnCurve() bool {
	lhs := NewFP2copy(E.y)
	lhs.Sqr()
	lhs.Mul(E.z)

	z3 := NewFP2copy(E.z)
	z3.Sqr()
	z3.Mul(E.z)
	z3.Mul(E.c.bt)

	rhs := NewFP2copy(E.x)
	rhs.Sqr()
	rhs.Mul(E.x)
	rhs.Add(z3)

	nonzero := 1 ^ (E.x.iszilch() & E.y.iszilch() & E.z.iszilch())
	return lhs.Equals(rhs) && nonzero == 1
}

// InSubgroup reports whether [r]P is the identity.
func (E *ECP2) InSubgroup() bool {
	if !E.IsOnCurve() {
		return false
	}
	return E.mul(E.c.r).Is_infinity()
}
