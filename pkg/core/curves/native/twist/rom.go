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

/* Built-in curves */

package twist

import (
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var ErrUnknownCurve = errors.New("unknown curve")

func bigHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("twist: bad constant " + s)
	}
	return v
}

func bigDec(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("twist: bad constant " + s)
	}
	return v
}

func mustCurve(params CurveParams) *Curve {
	c, err := NewCurve(params)
	if err != nil {
		panic(errors.Wrap(err, params.Name))
	}
	return c
}

var (
	bn254Once     sync.Once
	bn254Curve    *Curve
	altbn128Once  sync.Once
	altbn128Curve *Curve
	fp256bnOnce   sync.Once
	fp256bnCurve  *Curve
	bls12381Once  sync.Once
	bls12381Curve *Curve
)

// BN254 is the MIRACL BN254 curve, u = -0x4080000000000001.
func BN254() *Curve {
	bn254Once.Do(func() {
		bn254Curve = mustCurve(CurveParams{
			Name:   "BN254",
			Family: BN,
			Twist:  D_TYPE,
			Seed:   new(big.Int).Neg(bigHex("4080000000000001")),
			B:      2,
			Xi0:    1,
			Gx: &[2]*big.Int{
				bigHex("061A10BB519EB62FEB8D8C7E8C61EDB6A4648BBB4898BF0D91EE4224C803FB2B"),
				bigHex("0516AAF9BA737833310AA78C5982AA5B1F4D746BAE3784B70D8C34C1E7D54CF3"),
			},
			Gy: &[2]*big.Int{
				bigHex("021897A06BAF93439A90E096698C822329BD0AE6BDBE09BD19F0E07891CD2B9A"),
				bigHex("0EBB2B0E7C8B15268F6D4456F5F38D37B09006FFD739C9578A2D1AEC6B3ACE9B"),
			},
		})
	})
	return bn254Curve
}

// ALTBN128 is the alt_bn128 curve of EIP-196/197.
func ALTBN128() *Curve {
	altbn128Once.Do(func() {
		altbn128Curve = mustCurve(CurveParams{
			Name:   "ALTBN128",
			Family: BN,
			Twist:  D_TYPE,
			Seed:   bigHex("44E992B44A6909F1"),
			B:      3,
			Xi0:    9,
			Gx: &[2]*big.Int{
				bigDec("10857046999023057135944570762232829481370756359578518086990519993285655852781"),
				bigDec("11559732032986387107991004021392285783925812861821192530917403151452391805634"),
			},
			Gy: &[2]*big.Int{
				bigDec("8495653923123431417604973247489272438418190587263600148770280649306958101930"),
				bigDec("4082367875863433681332203403145435568316851327593401208105741076214120093531"),
			},
		})
	})
	return altbn128Curve
}

// FP256BN is the ISO/IEC 15946 BN curve. Its generator is Cfp(hap2point(1)).
func FP256BN() *Curve {
	fp256bnOnce.Do(func() {
		fp256bnCurve = mustCurve(CurveParams{
			Name:   "FP256BN",
			Family: BN,
			Twist:  M_TYPE,
			Seed:   new(big.Int).Neg(bigHex("6882F5C030B0A801")),
			B:      3,
			Xi0:    1,
		})
	})
	return fp256bnCurve
}

// BLS12381 uses the ZCash generator and its flag-bit point encoding.
func BLS12381() *Curve {
	bls12381Once.Do(func() {
		bls12381Curve = mustCurve(CurveParams{
			Name:   "BLS12381",
			Family: BLS12,
			Twist:  M_TYPE,
			Seed:   new(big.Int).Neg(bigHex("D201000000010000")),
			B:      4,
			Xi0:    1,
			Gx: &[2]*big.Int{
				bigHex("024AA2B2F08F0A91260805272DC51051C6E47AD4FA403B02B4510B647AE3D1770BAC0326A805BBEFD48056C8C121BDB8"),
				bigHex("13E02B6052719F607DACD3A088274F65596BD0D09920B61AB5DA61BBDC7F5049334CF11213945D57E5AC7D055D042B7E"),
			},
			Gy: &[2]*big.Int{
				bigHex("0CE5D527727D6E118CC9CDC6DA2E351AADFD9BAA8CBDD3A76D429A695160D12C923AC9CC3BACA289E193548608B82801"),
				bigHex("0606C4A02EA734CC32ACD2B02BC28B99CB3E287E85A763AF267492AB572E99AB3F370D275CEC1DA1AAA9075FF05F79BE"),
			},
			AllowAltCompress: true,
		})
	})
	return bls12381Curve
}

var curveByName = map[string]func() *Curve{
	"BN254":    BN254,
	"ALTBN128": ALTBN128,
	"FP256BN":  FP256BN,
	"BLS12381": BLS12381,
}

// CurveByName resolves a built-in curve, ignoring case, dashes and
// underscores ("bls12-381" is BLS12381).
func CurveByName(name string) (*Curve, error) {
	key := strings.ToUpper(strings.NewReplacer("-", "", "_", "").Replace(name))
	ctor, ok := curveByName[key]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCurve, "%q", name)
	}
	return ctor(), nil
}

// CurveNames lists the built-in curves in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curveByName))
	for n := range curveByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
