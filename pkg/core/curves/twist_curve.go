//
// Copyright Quilibrium, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package curves

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"source.quilibrium.com/quilibrium/g2engine/pkg/core/curves/native/twist"
)

type ScalarG2 struct {
	Value *big.Int
	curve *twist.Curve
}

type PointG2 struct {
	Value *twist.ECP2
}

// byte width of a canonical scalar for c
func scalarWidth(c *twist.Curve) int {
	return (c.Order().BitLen() + 7) / 8
}

func (s *ScalarG2) order() *big.Int {
	return s.curve.Order()
}

func (s *ScalarG2) with(v *big.Int) *ScalarG2 {
	return &ScalarG2{
		Value: v.Mod(v, s.order()),
		curve: s.curve,
	}
}

func (s *ScalarG2) other(rhs Scalar) (*ScalarG2, bool) {
	r, ok := rhs.(*ScalarG2)
	if !ok || r.curve != s.curve {
		return nil, false
	}
	return r, true
}

func (s *ScalarG2) Random(reader io.Reader) Scalar {
	if reader == nil {
		return nil
	}
	seed := make([]byte, 2*scalarWidth(s.curve))
	if _, err := io.ReadFull(reader, seed); err != nil {
		return nil
	}
	return s.with(new(big.Int).SetBytes(seed))
}

func (s *ScalarG2) Hash(bytes []byte) Scalar {
	reader := sha3.NewShake256()
	_, _ = reader.Write([]byte("QUIL_" + s.curve.Name() + "G2_SCALAR_"))
	_, _ = reader.Write(bytes)
	return s.Random(reader)
}

func (s *ScalarG2) Zero() Scalar {
	return &ScalarG2{
		Value: new(big.Int),
		curve: s.curve,
	}
}

func (s *ScalarG2) One() Scalar {
	return &ScalarG2{
		Value: big.NewInt(1),
		curve: s.curve,
	}
}

func (s *ScalarG2) IsZero() bool {
	return s.Value.Sign() == 0
}

func (s *ScalarG2) IsOne() bool {
	return s.Value.Cmp(big.NewInt(1)) == 0
}

func (s *ScalarG2) IsOdd() bool {
	return s.Value.Bit(0) == 1
}

func (s *ScalarG2) IsEven() bool {
	return s.Value.Bit(0) == 0
}

func (s *ScalarG2) New(value int) Scalar {
	return s.with(big.NewInt(int64(value)))
}

func (s *ScalarG2) Cmp(rhs Scalar) int {
	r, ok := s.other(rhs)
	if !ok {
		return -2
	}
	return s.Value.Cmp(r.Value)
}

func (s *ScalarG2) Square() Scalar {
	return s.with(new(big.Int).Mul(s.Value, s.Value))
}

func (s *ScalarG2) Double() Scalar {
	return s.with(new(big.Int).Lsh(s.Value, 1))
}

func (s *ScalarG2) Invert() (Scalar, error) {
	v := new(big.Int).ModInverse(s.Value, s.order())
	if v == nil {
		return nil, errors.New("inverse doesn't exist")
	}
	return &ScalarG2{
		Value: v,
		curve: s.curve,
	}, nil
}

func (s *ScalarG2) Sqrt() (Scalar, error) {
	v := new(big.Int).ModSqrt(s.Value, s.order())
	if v == nil {
		return nil, errors.New("not a square")
	}
	return &ScalarG2{
		Value: v,
		curve: s.curve,
	}, nil
}

func (s *ScalarG2) Cube() Scalar {
	v := new(big.Int).Mul(s.Value, s.Value)
	return s.with(v.Mul(v, s.Value))
}

func (s *ScalarG2) Add(rhs Scalar) Scalar {
	r, ok := s.other(rhs)
	if !ok {
		return nil
	}
	return s.with(new(big.Int).Add(s.Value, r.Value))
}

func (s *ScalarG2) Sub(rhs Scalar) Scalar {
	r, ok := s.other(rhs)
	if !ok {
		return nil
	}
	return s.with(new(big.Int).Sub(s.Value, r.Value))
}

func (s *ScalarG2) Mul(rhs Scalar) Scalar {
	r, ok := s.other(rhs)
	if !ok {
		return nil
	}
	return s.with(new(big.Int).Mul(s.Value, r.Value))
}

func (s *ScalarG2) MulAdd(y, z Scalar) Scalar {
	m := s.Mul(y)
	if m == nil {
		return nil
	}
	return m.Add(z)
}

func (s *ScalarG2) Div(rhs Scalar) Scalar {
	r, ok := s.other(rhs)
	if !ok {
		return nil
	}
	v, err := r.Invert()
	if err != nil {
		return nil
	}
	return s.Mul(v)
}

func (s *ScalarG2) Neg() Scalar {
	return s.with(new(big.Int).Neg(s.Value))
}

func (s *ScalarG2) SetBigInt(v *big.Int) (Scalar, error) {
	if v == nil {
		return nil, ErrInvalidScalar
	}
	return s.with(new(big.Int).Set(v)), nil
}

func (s *ScalarG2) BigInt() *big.Int {
	return new(big.Int).Set(s.Value)
}

func (s *ScalarG2) Point() Point {
	return &PointG2{Value: twist.NewECP2(s.curve)}
}

func (s *ScalarG2) Bytes() []byte {
	out := make([]byte, scalarWidth(s.curve))
	return s.Value.FillBytes(out)
}

func (s *ScalarG2) SetBytes(bytes []byte) (Scalar, error) {
	if len(bytes) != scalarWidth(s.curve) {
		return nil, errors.Wrap(ErrInvalidScalar, "length")
	}
	v := new(big.Int).SetBytes(bytes)
	if v.Cmp(s.order()) >= 0 {
		return nil, errors.Wrap(ErrInvalidScalar, "not canonical")
	}
	return &ScalarG2{
		Value: v,
		curve: s.curve,
	}, nil
}

func (s *ScalarG2) SetBytesWide(bytes []byte) (Scalar, error) {
	if len(bytes) != 2*scalarWidth(s.curve) {
		return nil, errors.Wrap(ErrInvalidScalar, "length")
	}
	return s.with(new(big.Int).SetBytes(bytes)), nil
}

func (s *ScalarG2) Clone() Scalar {
	return &ScalarG2{
		Value: new(big.Int).Set(s.Value),
		curve: s.curve,
	}
}

func (s *ScalarG2) MarshalBinary() ([]byte, error) {
	return scalarMarshalBinary(s)
}

func (s *ScalarG2) UnmarshalBinary(input []byte) error {
	sc, err := scalarUnmarshalBinary(input)
	if err != nil {
		return err
	}
	ss, ok := sc.(*ScalarG2)
	if !ok {
		return errors.New("invalid scalar")
	}
	s.Value = ss.Value
	s.curve = ss.curve
	return nil
}

func (s *ScalarG2) MarshalText() ([]byte, error) {
	return scalarMarshalText(s)
}

func (s *ScalarG2) UnmarshalText(input []byte) error {
	sc, err := scalarUnmarshalText(input)
	if err != nil {
		return err
	}
	ss, ok := sc.(*ScalarG2)
	if !ok {
		return errors.New("invalid scalar")
	}
	s.Value = ss.Value
	s.curve = ss.curve
	return nil
}

func (s *ScalarG2) MarshalJSON() ([]byte, error) {
	return scalarMarshalJson(s)
}

func (s *ScalarG2) UnmarshalJSON(input []byte) error {
	sc, err := scalarUnmarshalJson(input)
	if err != nil {
		return err
	}
	S, ok := sc.(*ScalarG2)
	if !ok {
		return errors.New("invalid type")
	}
	s.Value = S.Value
	s.curve = S.curve
	return nil
}

func (p *PointG2) curve() *twist.Curve {
	return p.Value.Curve()
}

func (p *PointG2) other(rhs Point) (*PointG2, bool) {
	r, ok := rhs.(*PointG2)
	if !ok || r.curve() != p.curve() {
		return nil, false
	}
	return r, true
}

func (p *PointG2) Random(reader io.Reader) Point {
	if reader == nil {
		return nil
	}
	var seed [64]byte
	if _, err := io.ReadFull(reader, seed[:]); err != nil {
		return nil
	}
	return p.Hash(seed[:])
}

// Hash is the random oracle hash to G2 over XMD:SHA-256.
func (p *PointG2) Hash(bytes []byte) Point {
	c := p.curve()
	dst := []byte("QUIL_" + c.Name() + "G2_XMD:SHA-256_SVDW_RO_")
	exp, err := twist.NewExpander(twist.ExpanderSHA256, dst)
	if err != nil {
		return nil
	}
	return &PointG2{twist.ECP2_hashToCurve(c, exp, bytes)}
}

func (p *PointG2) Identity() Point {
	return &PointG2{
		Value: twist.NewECP2(p.curve()),
	}
}

func (p *PointG2) Generator() Point {
	return &PointG2{
		Value: twist.ECP2_generator(p.curve()),
	}
}

func (p *PointG2) IsIdentity() bool {
	return p.Value.Is_infinity()
}

func (p *PointG2) IsNegative() bool {
	// The sign of y, as the compressed encoding carries it
	bytes := p.ToAffineCompressed()
	if p.curve().AltCompress() {
		return bytes[0]&0x20 != 0
	}
	return bytes[0] == 0x03
}

func (p *PointG2) IsOnCurve() bool {
	return p.Value.InSubgroup()
}

func (p *PointG2) Double() Point {
	v := twist.NewECP2(p.curve())
	v.Copy(p.Value)
	v.Dbl()
	return &PointG2{v}
}

func (p *PointG2) Scalar() Scalar {
	return &ScalarG2{
		Value: new(big.Int),
		curve: p.curve(),
	}
}

func (p *PointG2) Neg() Point {
	v := twist.NewECP2(p.curve())
	v.Copy(p.Value)
	v.Neg()
	return &PointG2{v}
}

func (p *PointG2) Add(rhs Point) Point {
	if rhs == nil {
		return nil
	}
	r, ok := p.other(rhs)
	if !ok {
		return nil
	}
	v := twist.NewECP2(p.curve())
	v.Copy(p.Value)
	v.Add(r.Value)
	return &PointG2{v}
}

func (p *PointG2) Sub(rhs Point) Point {
	if rhs == nil {
		return nil
	}
	r, ok := p.other(rhs)
	if !ok {
		return nil
	}
	v := twist.NewECP2(p.curve())
	v.Copy(p.Value)
	v.Sub(r.Value)
	return &PointG2{v}
}

func (p *PointG2) Mul(rhs Scalar) Point {
	if rhs == nil {
		return nil
	}
	r, ok := rhs.(*ScalarG2)
	if !ok || r.curve != p.curve() {
		return nil
	}
	k, err := twist.NewScalar(r.Value)
	if err != nil {
		return nil
	}
	return &PointG2{p.Value.Mul(k)}
}

func (p *PointG2) Equal(rhs Point) bool {
	r, ok := p.other(rhs)
	if !ok {
		return false
	}
	return p.Value.Equals(r.Value)
}

// Set takes each coordinate as the integer whose big-endian bytes are the
// Fp2 encoding, imaginary half first.
func (p *PointG2) Set(x, y *big.Int) (Point, error) {
	c := p.curve()
	n := 2 * c.Field().ModBytes()
	if x == nil || y == nil || x.Sign() < 0 || y.Sign() < 0 || x.BitLen() > 8*n || y.BitLen() > 8*n {
		return nil, ErrInvalidPoint
	}
	xb := x.FillBytes(make([]byte, n))
	yb := y.FillBytes(make([]byte, n))
	fx, okx := twist.FP2_fromBytes(c.Field(), xb)
	fy, oky := twist.FP2_fromBytes(c.Field(), yb)
	if !okx || !oky {
		return nil, ErrInvalidPoint
	}
	v, err := twist.ECP2_fromAffine(c, fx, fy)
	if err != nil {
		return nil, errors.Wrap(err, "set")
	}
	return &PointG2{v}, nil
}

func (p *PointG2) ToAffineCompressed() []byte {
	out := make([]byte, p.curve().SerializedSize(true))
	_ = p.Value.ToBytes(out, true)
	return out
}

func (p *PointG2) ToAffineUncompressed() []byte {
	out := make([]byte, p.curve().SerializedSize(false))
	_ = p.Value.ToBytes(out, false)
	return out
}

func (p *PointG2) fromBytes(bytes []byte, compress bool) (Point, error) {
	c := p.curve()
	if len(bytes) != c.SerializedSize(compress) {
		return nil, errors.Wrap(twist.ErrInvalidLength, "could not decode")
	}
	value, err := twist.ECP2_fromBytes(c, bytes)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode")
	}
	if !value.InSubgroup() {
		return nil, errors.Wrap(ErrInvalidPoint, "not in G2")
	}
	return &PointG2{value}, nil
}

func (p *PointG2) FromAffineCompressed(bytes []byte) (Point, error) {
	return p.fromBytes(bytes, true)
}

func (p *PointG2) FromAffineUncompressed(bytes []byte) (Point, error) {
	return p.fromBytes(bytes, false)
}

func (p *PointG2) CurveName() string {
	return p.curve().Name() + "G2"
}

// SumOfProducts folds the inputs four at a time through the interleaved
// multiplier, padding the last group with zero multiples of the generator.
func (p *PointG2) SumOfProducts(points []Point, scalars []Scalar) Point {
	if len(points) != len(scalars) {
		return nil
	}
	c := p.curve()
	acc := twist.NewECP2(c)
	for i := 0; i < len(points); i += 4 {
		var Q [4]*twist.ECP2
		var u [4]*twist.Scalar
		for j := 0; j < 4; j++ {
			if i+j >= len(points) {
				Q[j] = twist.ECP2_generator(c)
				u[j] = twist.NewScalarInt(0)
				continue
			}
			pp, ok := p.other(points[i+j])
			if !ok {
				return nil
			}
			s, ok := scalars[i+j].(*ScalarG2)
			if !ok || s.curve != c {
				return nil
			}
			k, err := twist.NewScalar(s.Value)
			if err != nil {
				return nil
			}
			Q[j] = pp.Value
			u[j] = k
		}
		acc.Add(twist.Mul4(&Q, &u))
	}
	acc.Affine()
	return &PointG2{acc}
}

func (p *PointG2) X() *big.Int {
	x := p.Value.GetX()
	bytes := make([]byte, 2*p.curve().Field().ModBytes())
	x.ToBytes(bytes)
	return new(big.Int).SetBytes(bytes)
}

func (p *PointG2) Y() *big.Int {
	y := p.Value.GetY()
	bytes := make([]byte, 2*p.curve().Field().ModBytes())
	y.ToBytes(bytes)
	return new(big.Int).SetBytes(bytes)
}

func (p *PointG2) Modulus() *big.Int {
	return p.curve().Modulus()
}

func (p *PointG2) MarshalBinary() ([]byte, error) {
	return pointMarshalBinary(p)
}

func (p *PointG2) UnmarshalBinary(input []byte) error {
	pt, err := pointUnmarshalBinary(input)
	if err != nil {
		return err
	}
	ppt, ok := pt.(*PointG2)
	if !ok {
		return errors.New("invalid point")
	}
	p.Value = ppt.Value
	return nil
}

func (p *PointG2) MarshalText() ([]byte, error) {
	return pointMarshalText(p)
}

func (p *PointG2) UnmarshalText(input []byte) error {
	pt, err := pointUnmarshalText(input)
	if err != nil {
		return err
	}
	ppt, ok := pt.(*PointG2)
	if !ok {
		return errors.New("invalid point")
	}
	p.Value = ppt.Value
	return nil
}

func (p *PointG2) MarshalJSON() ([]byte, error) {
	return pointMarshalJson(p)
}

func (p *PointG2) UnmarshalJSON(input []byte) error {
	pt, err := pointUnmarshalJson(input)
	if err != nil {
		return err
	}
	P, ok := pt.(*PointG2)
	if !ok {
		return errors.New("invalid type")
	}
	p.Value = P.Value
	return nil
}
