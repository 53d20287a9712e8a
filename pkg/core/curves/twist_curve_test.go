//
// Copyright Quilibrium, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package curves

import (
	"bytes"
	crand "crypto/rand"
	"encoding/json"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"source.quilibrium.com/quilibrium/g2engine/pkg/core/curves/native/twist"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func forEachG2(t *testing.T, fn func(t *testing.T, curve *Curve)) {
	for _, name := range []string{BN254G2Name, ALTBN128G2Name, FP256BNG2Name, BLS12381G2Name} {
		curve := GetCurveByName(name)
		require.NotNil(t, curve, name)
		t.Run(name, func(t *testing.T) {
			fn(t, curve)
		})
	}
}

func TestGetCurveByName(t *testing.T) {
	require.Same(t, BLS12381G2(), GetCurveByName("bls12381g2"))
	require.Same(t, BN254G2(), GetCurveByName(BN254G2Name))
	require.Same(t, ALTBN128G2(), TwistG2(twist.ALTBN128()))
	require.NotNil(t, FP256BNG2())
	require.Nil(t, GetCurveByName("secp256k1"))
	require.Equal(t, BLS12381G2Name, BLS12381G2().Point.CurveName())
}

func TestScalarG2Random(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		a := curve.Scalar.Random(testRng())
		b := curve.Scalar.Random(testRng())
		require.Equal(t, 0, a.Cmp(b))
		for i := 0; i < 10; i++ {
			sc := curve.Scalar.Random(crand.Reader)
			_, ok := sc.(*ScalarG2)
			require.True(t, ok)
			require.False(t, sc.IsZero())
		}
		require.Nil(t, curve.Scalar.Random(nil))
	})
}

func TestScalarG2Hash(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		var b [32]byte
		sc := curve.Scalar.Hash(b[:])
		require.Equal(t, 0, sc.Cmp(curve.Scalar.Hash(b[:])))
		b[0] = 1
		require.NotEqual(t, 0, sc.Cmp(curve.Scalar.Hash(b[:])))
	})
	var b [32]byte
	require.NotEqual(t, BN254G2().Scalar.Hash(b[:]).BigInt(), ALTBN128G2().Scalar.Hash(b[:]).BigInt())
}

func TestScalarG2Arithmetic(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		sc := curve.Scalar
		require.True(t, sc.Zero().IsZero())
		require.True(t, sc.Zero().IsEven())
		require.True(t, sc.One().IsOne())
		require.True(t, sc.One().IsOdd())

		three := sc.New(3)
		nine := sc.New(9)
		require.Equal(t, 0, three.Square().Cmp(nine))
		require.Equal(t, 0, three.Cube().Cmp(sc.New(27)))
		require.Equal(t, 0, three.Double().Cmp(sc.New(6)))
		require.Equal(t, 0, three.Add(nine).Cmp(sc.New(12)))
		require.Equal(t, 0, nine.Sub(three).Cmp(sc.New(6)))
		require.Equal(t, 0, three.Mul(nine).Cmp(sc.New(27)))
		require.Equal(t, 0, nine.Div(three).Cmp(three))
		require.Equal(t, 0, three.MulAdd(three, sc.One()).Cmp(sc.New(10)))

		neg1 := sc.New(-1)
		require.Equal(t, 0, neg1.Add(sc.One()).Cmp(sc.Zero()))
		require.Equal(t, 0, three.Neg().Add(three).Cmp(sc.Zero()))
		// r is odd so -1 = r-1 is even
		require.True(t, neg1.IsEven())

		inv, err := three.Invert()
		require.NoError(t, err)
		require.True(t, inv.Mul(three).IsOne())
		_, err = sc.Zero().Invert()
		require.Error(t, err)
		require.Nil(t, sc.One().Div(sc.Zero()))

		root, err := nine.Sqrt()
		require.NoError(t, err)
		require.Equal(t, 0, root.Square().Cmp(nine))

		v, err := sc.SetBigInt(big.NewInt(-2))
		require.NoError(t, err)
		require.Equal(t, 0, v.Cmp(sc.New(-2)))
		require.Equal(t, new(big.Int).Sub(curve.Point.(*PointG2).Value.Curve().Order(), big.NewInt(2)), v.BigInt())

		c := three.Clone()
		require.Equal(t, 0, c.Cmp(three))
		c.(*ScalarG2).Value.SetInt64(5)
		require.Equal(t, 0, three.Cmp(sc.New(3)))
	})
}

func TestScalarG2Bytes(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		sc := curve.Scalar.Random(testRng())
		b := sc.Bytes()
		require.Len(t, b, 32)
		back, err := curve.Scalar.SetBytes(b)
		require.NoError(t, err)
		require.Equal(t, 0, back.Cmp(sc))

		_, err = curve.Scalar.SetBytes(b[1:])
		require.ErrorIs(t, err, ErrInvalidScalar)
		r := curve.Point.(*PointG2).Value.Curve().Order()
		_, err = curve.Scalar.SetBytes(r.FillBytes(make([]byte, 32)))
		require.ErrorIs(t, err, ErrInvalidScalar)

		wide := make([]byte, 64)
		r.FillBytes(wide)
		wide[63]++
		w, err := curve.Scalar.SetBytesWide(wide)
		require.NoError(t, err)
		require.True(t, w.IsOne())
	})
}

func TestScalarG2Serialize(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		sc := curve.Scalar.New(255).(*ScalarG2)

		seq, err := sc.MarshalBinary()
		require.NoError(t, err)
		var b ScalarG2
		require.NoError(t, b.UnmarshalBinary(seq))
		require.Equal(t, 0, sc.Cmp(&b))

		txt, err := sc.MarshalText()
		require.NoError(t, err)
		var x ScalarG2
		require.NoError(t, x.UnmarshalText(txt))
		require.Equal(t, 0, sc.Cmp(&x))

		js, err := json.Marshal(sc)
		require.NoError(t, err)
		var j ScalarG2
		require.NoError(t, json.Unmarshal(js, &j))
		require.Equal(t, 0, sc.Cmp(&j))

		require.Error(t, j.UnmarshalBinary([]byte("nocolon")))
		require.ErrorIs(t, j.UnmarshalText([]byte("P-256:00")), ErrUnknownCurve)
	})
}

func TestScalarG2CrossCurve(t *testing.T) {
	a := BN254G2().Scalar.New(3)
	b := BLS12381G2().Scalar.New(3)
	require.Equal(t, -2, a.Cmp(b))
	require.Nil(t, a.Add(b))
	require.Nil(t, BN254G2().Point.Generator().Mul(b))
	require.False(t, BN254G2().Point.Generator().Equal(BLS12381G2().Point.Generator()))
}

func TestPointG2Random(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		a := curve.Point.Random(testRng())
		require.True(t, a.IsOnCurve())
		require.False(t, a.IsIdentity())
		require.True(t, a.Equal(curve.Point.Random(testRng())))
		require.False(t, a.Equal(curve.Point.Random(crand.Reader)))
		require.Nil(t, curve.Point.Random(nil))
		require.Nil(t, curve.Point.Random(bytes.NewReader(make([]byte, 63))))
	})
}

func TestPointG2Hash(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		var b [32]byte
		h := curve.Point.Hash(b[:])
		require.True(t, h.IsOnCurve())
		require.True(t, h.Equal(curve.Point.Hash(b[:])))
	})
}

func TestPointG2Identity(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		id := curve.NewIdentityPoint()
		require.True(t, id.IsIdentity())
		require.True(t, id.IsOnCurve())
		g := curve.NewGeneratorPoint()
		require.True(t, g.Add(id).Equal(g))
		require.True(t, g.Sub(g).IsIdentity())

		out, err := curve.Point.FromAffineCompressed(id.ToAffineCompressed())
		require.NoError(t, err)
		require.True(t, out.IsIdentity())
	})
}

func TestPointG2Generator(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		g := curve.NewGeneratorPoint()
		require.True(t, g.IsOnCurve())
		require.False(t, g.IsIdentity())
		require.True(t, curve.ScalarBaseMult(curve.Scalar.One()).Equal(g))
		require.True(t, curve.ScalarBaseMult(curve.NewScalar()).IsIdentity())
	})
}

func TestPointG2Set(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		g := curve.NewGeneratorPoint().(*PointG2)
		p, err := curve.Point.Set(g.X(), g.Y())
		require.NoError(t, err)
		require.True(t, p.Equal(g))

		_, err = curve.Point.Set(g.X(), new(big.Int).Add(g.Y(), big.NewInt(1)))
		require.ErrorIs(t, err, twist.ErrNotOnCurve)
		_, err = curve.Point.Set(nil, g.Y())
		require.ErrorIs(t, err, ErrInvalidPoint)
		require.Equal(t, 0, g.Modulus().Cmp(g.Value.Curve().Modulus()))
	})
}

func TestPointG2GroupOps(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		g := curve.NewGeneratorPoint()
		two := curve.Scalar.New(2)
		three := curve.Scalar.New(3)
		require.True(t, g.Double().Equal(g.Mul(two)))
		require.True(t, g.Double().Add(g).Equal(g.Mul(three)))
		require.True(t, g.Mul(three).Sub(g).Equal(g.Mul(two)))
		require.True(t, g.Neg().Add(g).IsIdentity())
		require.True(t, g.Neg().Equal(g.Mul(curve.Scalar.New(-1))))
		require.NotEqual(t, g.IsNegative(), g.Neg().IsNegative())
		require.Nil(t, g.Add(nil))
		require.Nil(t, g.Mul(nil))
	})
}

func TestPointG2Serialize(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		ss := curve.Scalar.Random(testRng())
		g := curve.NewGeneratorPoint()
		ppt := g.Mul(ss).(*PointG2)

		out, err := curve.Point.FromAffineCompressed(ppt.ToAffineCompressed())
		require.NoError(t, err)
		require.True(t, ppt.Equal(out))
		out, err = curve.Point.FromAffineUncompressed(ppt.ToAffineUncompressed())
		require.NoError(t, err)
		require.True(t, ppt.Equal(out))

		_, err = curve.Point.FromAffineCompressed(ppt.ToAffineUncompressed())
		require.ErrorIs(t, err, twist.ErrInvalidLength)
		_, err = curve.Point.FromAffineUncompressed([]byte{})
		require.ErrorIs(t, err, twist.ErrInvalidLength)

		seq, err := ppt.MarshalBinary()
		require.NoError(t, err)
		var b PointG2
		require.NoError(t, b.UnmarshalBinary(seq))
		require.True(t, ppt.Equal(&b))

		txt, err := ppt.MarshalText()
		require.NoError(t, err)
		var x PointG2
		require.NoError(t, x.UnmarshalText(txt))
		require.True(t, ppt.Equal(&x))

		js, err := json.Marshal(ppt)
		require.NoError(t, err)
		var j PointG2
		require.NoError(t, json.Unmarshal(js, &j))
		require.True(t, ppt.Equal(&j))
	})
}

func TestPointG2RejectsTwistPoints(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		c := curve.Point.(*PointG2).Value.Curve()
		raw := twist.ECP2_hap2point(c, big.NewInt(5))
		b := make([]byte, c.SerializedSize(true))
		require.NoError(t, raw.ToBytes(b, true))
		_, err := curve.Point.FromAffineCompressed(b)
		require.ErrorIs(t, err, ErrInvalidPoint)
	})
}

func TestPointG2SumOfProducts(t *testing.T) {
	forEachG2(t, func(t *testing.T, curve *Curve) {
		rng := testRng()
		for _, n := range []int{1, 4, 6} {
			points := make([]Point, n)
			scalars := make([]Scalar, n)
			want := curve.NewIdentityPoint()
			for i := 0; i < n; i++ {
				points[i] = curve.Point.Random(rng)
				scalars[i] = curve.Scalar.Random(rng)
				want = want.Add(points[i].Mul(scalars[i]))
			}
			got := curve.Point.SumOfProducts(points, scalars)
			require.NotNil(t, got)
			require.True(t, got.Equal(want), "n=%d", n)
		}
		require.Nil(t, curve.Point.SumOfProducts([]Point{curve.NewGeneratorPoint()}, nil))
	})
}
