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

/* Fixed width multipliers for the point multiplication routines */

package twist

import (
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
)

// SCALAR_BITS is the width every multiplier is processed at, whatever its value.
const SCALAR_BITS = 64 * NLEN

// SCALAR_BYTES is the big-endian byte width of a Scalar.
const SCALAR_BYTES = SCALAR_BITS / 8

// Scalar is a non-negative integer below 2^SCALAR_BITS. The extra top word
// absorbs the carry of the parity adjustment done by the multipliers.
type Scalar struct {
	w [NLEN + 1]uint64
}

var ErrScalarRange = errors.New("scalar out of range")

func NewScalarInt(v uint64) *Scalar {
	s := new(Scalar)
	s.w[0] = v
	return s
}

// NewScalar converts v, which must satisfy 0 <= v < 2^SCALAR_BITS.
func NewScalar(v *big.Int) (*Scalar, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > SCALAR_BITS {
		return nil, ErrScalarRange
	}
	var b [SCALAR_BYTES]byte
	v.FillBytes(b[:])
	return NewScalarBytes(b[:])
}

// NewScalarBytes reads at most SCALAR_BYTES big-endian bytes.
func NewScalarBytes(b []byte) (*Scalar, error) {
	if len(b) > SCALAR_BYTES {
		return nil, ErrScalarRange
	}
	s := new(Scalar)
	n := len(b)
	for i := 0; i < n; i++ {
		s.w[i/8] |= uint64(b[n-1-i]) << (8 * uint(i%8))
	}
	return s, nil
}

func NewScalarCopy(b *Scalar) *Scalar {
	s := new(Scalar)
	s.w = b.w
	return s
}

func (s *Scalar) Bytes() []byte {
	b := make([]byte, SCALAR_BYTES)
	for i := 0; i < SCALAR_BYTES; i++ {
		b[SCALAR_BYTES-1-i] = byte(s.w[i/8] >> (8 * uint(i%8)))
	}
	return b
}

// Big includes the carry word, so it can exceed 2^SCALAR_BITS mid-recoding.
func (s *Scalar) Big() *big.Int {
	v := new(big.Int).SetBytes(s.Bytes())
	if s.w[NLEN] != 0 {
		hi := new(big.Int).SetUint64(s.w[NLEN])
		v.Or(v, hi.Lsh(hi, SCALAR_BITS))
	}
	return v
}

func (s *Scalar) IsZero() bool {
	var acc uint64
	for _, v := range s.w {
		acc |= v
	}
	return acc == 0
}

func (s *Scalar) copy(b *Scalar) {
	s.w = b.w
}

func (s *Scalar) parity() int {
	return int(s.w[0] & 1)
}

/* the n least significant bits, n < 64 */
func (s *Scalar) lastbits(n uint) int {
	return int(s.w[0] & ((uint64(1) << n) - 1))
}

/* add a small signed integer, two's complement over the whole width */
func (s *Scalar) inc(v int) {
	ext := uint64(int64(v) >> 63)
	var c uint64
	s.w[0], c = bits.Add64(s.w[0], uint64(int64(v)), 0)
	for i := 1; i < len(s.w); i++ {
		s.w[i], c = bits.Add64(s.w[i], ext, c)
	}
}

func (s *Scalar) dec(v int) {
	s.inc(-v)
}

/* shift right by k < 64 bits */
func (s *Scalar) fshr(k uint) {
	n := len(s.w)
	for i := 0; i < n-1; i++ {
		s.w[i] = (s.w[i] >> k) | (s.w[i+1] << (64 - k))
	}
	s.w[n-1] >>= k
}

func (s *Scalar) cmove(b *Scalar, d int) {
	mask := -uint64(d & 1)
	for i := range s.w {
		s.w[i] ^= (s.w[i] ^ b.w[i]) & mask
	}
}
