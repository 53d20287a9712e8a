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

/* Point encoding */

package twist

const (
	flagCompressed = 0x80
	flagInfinity   = 0x40
	flagLarger     = 0x20

	tagInfinity     = 0x00
	tagEven         = 0x02
	tagOdd          = 0x03
	tagUncompressed = 0x04
)

// SerializedSize is the exact buffer length ToBytes writes and ECP2_fromBytes
// reads.
func (c *Curve) SerializedSize(compress bool) int {
	n := 2 * c.field.modBytes
	if !compress {
		n *= 2
	}
	if !c.alt {
		n++
	}
	return n
}

/* convert to byte array */
// With the alternate layout x is written without a tag and the top bits of
// its first byte carry the compression, infinity and larger-y flags.
func (E *ECP2) ToBytes(b []byte, compress bool) error {
	c := E.c
	if len(b) != c.SerializedSize(compress) {
		return ErrInvalidLength
	}
	MB := 2 * c.field.modBytes
	W := NewECP2(c)
	W.Copy(E)
	W.Affine()
	for i := range b {
		b[i] = 0
	}

	if c.alt {
		if W.Is_infinity() {
			b[0] = flagInfinity
			if compress {
				b[0] |= flagCompressed
			}
			return nil
		}
		W.x.ToBytes(b[:MB])
		if !compress {
			W.y.ToBytes(b[MB : 2*MB])
			return nil
		}
		b[0] |= flagCompressed
		if W.y.islarger() == 1 {
			b[0] |= flagLarger
		}
		return nil
	}

	if W.Is_infinity() {
		b[0] = tagInfinity
		return nil
	}
	W.x.ToBytes(b[1 : MB+1])
	if !compress {
		b[0] = tagUncompressed
		W.y.ToBytes(b[MB+1 : 2*MB+1])
		return nil
	}
	b[0] = tagEven
	if W.y.sign() == 1 {
		b[0] = tagOdd
	}
	return nil
}

/* convert from byte array to point */
func ECP2_fromBytes(c *Curve, b []byte) (*ECP2, error) {
	var compress bool
	switch len(b) {
	case c.SerializedSize(true):
		compress = true
	case c.SerializedSize(false):
	default:
		return nil, ErrInvalidLength
	}
	if c.alt {
		return fromBytesAlt(c, b, compress)
	}

	MB := 2 * c.field.modBytes
	typ := b[0]
	switch {
	case typ == tagInfinity:
		if !allZero(b[1:]) {
			return nil, ErrInvalidEncoding
		}
		return NewECP2(c), nil
	case typ == tagUncompressed && !compress:
		rx, okx := FP2_fromBytes(c.field, b[1:MB+1])
		ry, oky := FP2_fromBytes(c.field, b[MB+1:2*MB+1])
		if !okx || !oky {
			return nil, ErrInvalidEncoding
		}
		return ECP2_fromAffine(c, rx, ry)
	case (typ == tagEven || typ == tagOdd) && compress:
		rx, ok := FP2_fromBytes(c.field, b[1:MB+1])
		if !ok {
			return nil, ErrInvalidEncoding
		}
		return ECP2_fromX(c, rx, int(typ&1))
	}
	return nil, ErrInvalidEncoding
}

func fromBytesAlt(c *Curve, b []byte, compress bool) (*ECP2, error) {
	MB := 2 * c.field.modBytes
	flags := b[0] & 0xe0
	if (flags&flagCompressed != 0) != compress {
		return nil, ErrInvalidEncoding
	}

	if flags&flagInfinity != 0 {
		if flags&flagLarger != 0 || b[0]&0x1f != 0 || !allZero(b[1:]) {
			return nil, ErrInvalidEncoding
		}
		return NewECP2(c), nil
	}

	t := make([]byte, len(b))
	copy(t, b)
	t[0] &= 0x1f
	rx, ok := FP2_fromBytes(c.field, t[:MB])
	if !ok {
		return nil, ErrInvalidEncoding
	}

	if !compress {
		if flags&flagLarger != 0 {
			return nil, ErrInvalidEncoding
		}
		ry, ok := FP2_fromBytes(c.field, t[MB:2*MB])
		if !ok {
			return nil, ErrInvalidEncoding
		}
		return ECP2_fromAffine(c, rx, ry)
	}

	P, err := ECP2_fromX(c, rx, 0)
	if err != nil {
		return nil, err
	}
	larger := 0
	if flags&flagLarger != 0 {
		larger = 1
	}
	isl := 0
	if P.y.islarger() == 1 {
		isl = 1
	}
	ny := NewFP2copy(P.y)
	ny.Neg()
	P.y.cmove(ny, isl^larger)
	return P, nil
}

func allZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
