//
// Copyright Quilibrium, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package twist

import (
	"crypto"
	"math/big"
	"strings"

	"github.com/cloudflare/circl/expander"
	"github.com/cloudflare/circl/xof"
	"github.com/pkg/errors"

	// registers crypto.SHA3_256
	_ "golang.org/x/crypto/sha3"
)

// Expander names accepted by NewExpander.
const (
	ExpanderSHA256   = "XMD:SHA-256"
	ExpanderSHA3_256 = "XMD:SHA3-256"
	ExpanderSHAKE128 = "XOF:SHAKE128"
)

var ErrUnknownExpander = errors.New("unknown expander")

// NewExpander builds the message expander named by one of the Expander*
// constants, bound to the domain separation tag dst.
func NewExpander(name string, dst []byte) (expander.Expander, error) {
	switch strings.ToUpper(name) {
	case "", ExpanderSHA256:
		return expander.NewExpanderMD(crypto.SHA256, dst), nil
	case ExpanderSHA3_256:
		return expander.NewExpanderMD(crypto.SHA3_256, dst), nil
	case ExpanderSHAKE128:
		return expander.NewExpanderXOF(xof.SHAKE128, 128, dst), nil
	}
	return nil, errors.Wrapf(ErrUnknownExpander, "%q", name)
}

// HashToField expands msg into count elements of Fp2. Each coordinate takes
// L = ceil((bits(p)+128)/8) bytes, real part first.
func HashToField(c *Curve, exp expander.Expander, msg []byte, count int) []*FP2 {
	L := (c.field.modBits + 128 + 7) / 8
	pseudo := exp.Expand(msg, uint(2*count*L))

	u := make([]*FP2, count)
	e := new(big.Int)
	for i := range u {
		off := 2 * i * L
		e0 := NewFPbig(c.field, e.SetBytes(pseudo[off:off+L]))
		e1 := NewFPbig(c.field, e.SetBytes(pseudo[off+L:off+2*L]))
		u[i] = &FP2{a: e0, b: e1}
	}
	return u
}

// ECP2_hashToCurve is the random oracle construction: two field elements,
// each mapped, summed, then moved into the order r subgroup.
func ECP2_hashToCurve(c *Curve, exp expander.Expander, msg []byte) *ECP2 {
	u := HashToField(c, exp, msg, 2)
	P := ECP2_map2point(c, u[0])
	P1 := ECP2_map2point(c, u[1])
	P.Add(P1)
	P.Cfp()
	P.Affine()
	return P
}

// ECP2_encodeToCurve maps a single field element. Its output is not uniform.
func ECP2_encodeToCurve(c *Curve, exp expander.Expander, msg []byte) *ECP2 {
	u := HashToField(c, exp, msg, 1)
	P := ECP2_map2point(c, u[0])
	P.Cfp()
	P.Affine()
	return P
}
