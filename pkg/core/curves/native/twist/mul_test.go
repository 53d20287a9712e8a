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
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTeq(t *testing.T) {
	for b := int32(-8); b < 8; b++ {
		for c := int32(-8); c < 8; c++ {
			want := 0
			if b == c {
				want = 1
			}
			require.Equal(t, want, teq(b, c), "teq(%d, %d)", b, c)
		}
	}

	extremes := []int32{math.MinInt32, math.MinInt32 + 1, -1, 0, 1, math.MaxInt32 - 1, math.MaxInt32}
	for _, b := range extremes {
		for _, c := range extremes {
			want := 0
			if b == c {
				want = 1
			}
			require.Equal(t, want, teq(b, c), "teq(%d, %d)", b, c)
		}
	}

	rapid.Check(t, func(rt *rapid.T) {
		b := rapid.Int32().Draw(rt, "b")
		c := rapid.Int32().Draw(rt, "c")
		if got := teq(b, c); got != teq(c, b) || (got == 1) != (b == c) {
			rt.Fatalf("teq(%d, %d) = %d", b, c, got)
		}
	})
}

func TestSelector(t *testing.T) {
	c := BN254()
	G := ECP2_generator(c)
	var W [8]*ECP2
	for i := range W {
		W[i] = G.Mul(NewScalarInt(uint64(2*i + 1)))
	}
	for d := int32(-15); d <= 15; d += 2 {
		P := NewECP2(c)
		P.selector(W[:], d)
		k := int64(d)
		want := G.Mul(NewScalarInt(uint64(abs64(k))))
		if k < 0 {
			want.Neg()
		}
		require.True(t, P.Equals(want), "digit %d", d)
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestMulSmall(t *testing.T) {
	forEachCurve(t, func(t *testing.T, c *Curve) {
		G := ECP2_generator(c)
		require.True(t, G.Mul(NewScalarInt(0)).Is_infinity())
		require.True(t, G.Mul(NewScalarInt(1)).Equals(G))

		D := NewECP2(c)
		D.Copy(G)
		D.Dbl()
		require.True(t, G.Mul(NewScalarInt(2)).Equals(D))

		T := NewECP2(c)
		T.Copy(D)
		T.Add(G)
		require.True(t, G.Mul(NewScalarInt(3)).Equals(T))

		require.True(t, NewECP2(c).Mul(NewScalarInt(12345)).Is_infinity())
		require.True(t, G.Mul(c.r).Is_infinity())

		rm1 := new(big.Int).Sub(c.order, big.NewInt(1))
		N := G.Mul(mustScalar(t, rm1))
		N.Neg()
		require.True(t, N.Equals(G))
	})
}

func TestMulFullWidth(t *testing.T) {
	rng := testRng()
	top := new(big.Int).Lsh(big.NewInt(1), SCALAR_BITS)
	forEachCurve(t, func(t *testing.T, c *Curve) {
		P := randomTwistPoint(c, rng)
		for _, k := range []*big.Int{
			new(big.Int).Sub(top, big.NewInt(1)),
			new(big.Int).Sub(top, big.NewInt(2)),
			new(big.Int).Sub(top, big.NewInt(3)),
			new(big.Int).Rsh(top, 1),
			randomBelow(rng, top),
		} {
			require.True(t, P.Mul(mustScalar(t, k)).Equals(naiveMul(P, k)), "k=%x", k)
		}
	})
}

func TestMulLinearity(t *testing.T) {
	forEachCurve(t, func(t *testing.T, c *Curve) {
		G := ECP2_generator(c)
		bound := new(big.Int).Rsh(new(big.Int).Lsh(big.NewInt(1), SCALAR_BITS), 1)
		rapid.Check(t, func(rt *rapid.T) {
			ab := rapid.SliceOfN(rapid.Byte(), 2*SCALAR_BYTES, 2*SCALAR_BYTES).Draw(rt, "a||b")
			a := new(big.Int).SetBytes(ab[:SCALAR_BYTES])
			b := new(big.Int).SetBytes(ab[SCALAR_BYTES:])
			a.Mod(a, bound)
			b.Mod(b, bound)

			sa, _ := NewScalar(a)
			sb, _ := NewScalar(b)
			sab, _ := NewScalar(new(big.Int).Add(a, b))

			L := G.Mul(sab)
			R := G.Mul(sa)
			R.Add(G.Mul(sb))
			if !L.Equals(R) {
				rt.Fatalf("[a+b]G != [a]G + [b]G for a=%x b=%x", a, b)
			}
		})
	})
}

func TestMul4(t *testing.T) {
	rng := testRng()
	forEachCurve(t, func(t *testing.T, c *Curve) {
		var Q [4]*ECP2
		for i := range Q {
			Q[i] = randomG2(t, c, rng)
		}
		top := new(big.Int).Lsh(big.NewInt(1), SCALAR_BITS)
		max := new(big.Int).Sub(top, big.NewInt(1))
		cases := [][4]*big.Int{
			{big.NewInt(0), big.NewInt(0), big.NewInt(0), big.NewInt(0)},
			{big.NewInt(2), big.NewInt(0), big.NewInt(5), big.NewInt(1)},
			{big.NewInt(1), big.NewInt(1), big.NewInt(1), big.NewInt(1)},
			{max, max, max, max},
			{new(big.Int).Sub(top, big.NewInt(2)), max, big.NewInt(0), max},
			{big.NewInt(0), max, max, max},
			{randomBelow(rng, c.order), randomBelow(rng, c.order), randomBelow(rng, c.order), randomBelow(rng, c.order)},
		}
		for _, u := range cases {
			var us [4]*Scalar
			want := NewECP2(c)
			for i := range us {
				us[i] = mustScalar(t, u[i])
				want.Add(Q[i].Mul(us[i]))
			}
			got := Mul4(&Q, &us)
			require.True(t, got.Equals(want), "u=%v", u)
		}

		// identity in any slot contributes nothing
		for j := range Q {
			R := Q
			R[j] = NewECP2(c)
			us := [4]*Scalar{mustScalar(t, max), mustScalar(t, big.NewInt(3)), mustScalar(t, big.NewInt(7)), mustScalar(t, c.order)}
			want := NewECP2(c)
			for i := range us {
				want.Add(R[i].Mul(us[i]))
			}
			require.True(t, Mul4(&R, &us).Equals(want), "identity at %d", j)
			require.True(t, R[j].Is_infinity())
		}
	})
}

func TestMul4Property(t *testing.T) {
	c := BLS12381()
	rng := testRng()
	var Q [4]*ECP2
	for i := range Q {
		Q[i] = randomG2(t, c, rng)
	}
	rapid.Check(t, func(rt *rapid.T) {
		var us [4]*Scalar
		want := NewECP2(c)
		for i := range us {
			b := rapid.SliceOfN(rapid.Byte(), 0, SCALAR_BYTES).Draw(rt, "u")
			us[i], _ = NewScalarBytes(b)
			want.Add(Q[i].Mul(us[i]))
		}
		if !Mul4(&Q, &us).Equals(want) {
			rt.Fatalf("Mul4 disagrees with four Mul calls")
		}
	})
}
