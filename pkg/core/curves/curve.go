//
// Copyright Quilibrium, Inc. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package curves

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"math/big"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"source.quilibrium.com/quilibrium/g2engine/pkg/core/curves/native/twist"
)

const (
	BN254G2Name    = "BN254G2"
	ALTBN128G2Name = "ALTBN128G2"
	FP256BNG2Name  = "FP256BNG2"
	BLS12381G2Name = "BLS12381G2"
)

var (
	ErrUnknownCurve  = errors.New("unrecognized curve")
	ErrInvalidScalar = errors.New("invalid scalar")
	ErrInvalidPoint  = errors.New("invalid point")
)

var (
	curvesOnce sync.Once
	curvesByID map[string]*Curve
)

// Scalar represents an element of the scalar field Z/rZ of a G2 group.
type Scalar interface {
	// Random returns a random scalar using the provided reader
	// to retrieve bytes
	Random(reader io.Reader) Scalar
	// Hash the specific bytes in a manner to yield a
	// uniformly distributed scalar
	Hash(bytes []byte) Scalar
	Zero() Scalar
	One() Scalar
	IsZero() bool
	IsOne() bool
	IsOdd() bool
	IsEven() bool
	// New returns an element with the value equal to `value`
	New(value int) Scalar
	// Cmp returns
	// -2 if this element is in a different field than rhs
	// -1 if this element is less than rhs
	// 0 if this element is equal to rhs
	// 1 if this element is greater than rhs
	Cmp(rhs Scalar) int
	Square() Scalar
	Double() Scalar
	Invert() (Scalar, error)
	Sqrt() (Scalar, error)
	Cube() Scalar
	Add(rhs Scalar) Scalar
	Sub(rhs Scalar) Scalar
	Mul(rhs Scalar) Scalar
	// MulAdd returns element * y + z mod r
	MulAdd(y, z Scalar) Scalar
	Div(rhs Scalar) Scalar
	Neg() Scalar
	SetBigInt(v *big.Int) (Scalar, error)
	BigInt() *big.Int
	// Point returns the associated point for this scalar
	Point() Point
	// Bytes returns the canonical big-endian representation of this scalar
	Bytes() []byte
	// SetBytes expects exactly the canonical width and a value below r
	SetBytes(bytes []byte) (Scalar, error)
	// SetBytesWide expects double the canonical width and reduces mod r
	SetBytesWide(bytes []byte) (Scalar, error)
	Clone() Scalar
}

// Point represents a point of a G2 group.
type Point interface {
	Random(reader io.Reader) Point
	Hash(bytes []byte) Point
	Identity() Point
	Generator() Point
	IsIdentity() bool
	IsNegative() bool
	IsOnCurve() bool
	Double() Point
	Scalar() Scalar
	Neg() Point
	Add(rhs Point) Point
	Sub(rhs Point) Point
	Mul(rhs Scalar) Point
	Equal(rhs Point) bool
	Set(x, y *big.Int) (Point, error)
	ToAffineCompressed() []byte
	ToAffineUncompressed() []byte
	FromAffineCompressed(bytes []byte) (Point, error)
	FromAffineUncompressed(bytes []byte) (Point, error)
	CurveName() string
	SumOfProducts(points []Point, scalars []Scalar) Point
}

// Curve represents a named G2 group with its scalar field
type Curve struct {
	Scalar Scalar
	Point  Point
	Name   string
}

func (c Curve) ScalarBaseMult(sc Scalar) Point {
	return c.Point.Generator().Mul(sc)
}

func (c Curve) NewGeneratorPoint() Point {
	return c.Point.Generator()
}

func (c Curve) NewIdentityPoint() Point {
	return c.Point.Identity()
}

func (c Curve) NewScalar() Scalar {
	return c.Scalar.Zero()
}

// TwistG2 wraps an engine curve. Presets come back as shared values, any
// other curve gets a fresh wrapper.
func TwistG2(c *twist.Curve) *Curve {
	if k := GetCurveByName(c.Name() + "G2"); k != nil && k.Point.(*PointG2).Value.Curve() == c {
		return k
	}
	return newTwistCurve(c)
}

func newTwistCurve(c *twist.Curve) *Curve {
	return &Curve{
		Scalar: &ScalarG2{Value: new(big.Int), curve: c},
		Point:  &PointG2{Value: twist.NewECP2(c)},
		Name:   c.Name() + "G2",
	}
}

func initCurves() {
	curvesByID = make(map[string]*Curve)
	for _, name := range twist.CurveNames() {
		c, err := twist.CurveByName(name)
		if err != nil {
			panic(errors.Wrap(err, "init curves"))
		}
		k := newTwistCurve(c)
		curvesByID[k.Name] = k
	}
}

func BN254G2() *Curve {
	return GetCurveByName(BN254G2Name)
}

func ALTBN128G2() *Curve {
	return GetCurveByName(ALTBN128G2Name)
}

func FP256BNG2() *Curve {
	return GetCurveByName(FP256BNG2Name)
}

func BLS12381G2() *Curve {
	return GetCurveByName(BLS12381G2Name)
}

// GetCurveByName returns nil for names it does not know.
func GetCurveByName(name string) *Curve {
	curvesOnce.Do(initCurves)
	return curvesByID[strings.ToUpper(name)]
}

func splitName(input []byte) (*Curve, []byte, error) {
	i := bytes.IndexByte(input, ':')
	if i < 0 {
		return nil, nil, errors.New("invalid byte sequence")
	}
	curve := GetCurveByName(string(input[:i]))
	if curve == nil {
		return nil, nil, ErrUnknownCurve
	}
	return curve, input[i+1:], nil
}

func scalarMarshalBinary(scalar Scalar) ([]byte, error) {
	// The curve name, a colon, then the canonical scalar bytes
	name := []byte(scalar.Point().CurveName())
	out := make([]byte, 0, len(name)+1+32)
	out = append(out, name...)
	out = append(out, ':')
	return append(out, scalar.Bytes()...), nil
}

func scalarUnmarshalBinary(input []byte) (Scalar, error) {
	curve, data, err := splitName(input)
	if err != nil {
		return nil, err
	}
	return curve.Scalar.SetBytes(data)
}

func scalarMarshalText(scalar Scalar) ([]byte, error) {
	// Hex keeps the text form strict
	name := []byte(scalar.Point().CurveName())
	out := make([]byte, 0, len(name)+1+64)
	out = append(out, name...)
	out = append(out, ':')
	return append(out, hex.EncodeToString(scalar.Bytes())...), nil
}

func scalarUnmarshalText(input []byte) (Scalar, error) {
	curve, data, err := splitName(input)
	if err != nil {
		return nil, err
	}
	t, err := hex.DecodeString(string(data))
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal text")
	}
	return curve.Scalar.SetBytes(t)
}

func scalarMarshalJson(scalar Scalar) ([]byte, error) {
	m := make(map[string]string, 2)
	m["type"] = scalar.Point().CurveName()
	m["value"] = hex.EncodeToString(scalar.Bytes())
	return json.Marshal(m)
}

func scalarUnmarshalJson(input []byte) (Scalar, error) {
	var m map[string]string

	err := json.Unmarshal(input, &m)
	if err != nil {
		return nil, err
	}
	curve := GetCurveByName(m["type"])
	if curve == nil {
		return nil, ErrUnknownCurve
	}
	s, err := hex.DecodeString(m["value"])
	if err != nil {
		return nil, err
	}
	return curve.Scalar.SetBytes(s)
}

func pointMarshalBinary(point Point) ([]byte, error) {
	// Always stores points in compressed form
	t := point.ToAffineCompressed()
	name := []byte(point.CurveName())
	out := make([]byte, 0, len(name)+1+len(t))
	out = append(out, name...)
	out = append(out, ':')
	return append(out, t...), nil
}

func pointUnmarshalBinary(input []byte) (Point, error) {
	curve, data, err := splitName(input)
	if err != nil {
		return nil, err
	}
	return curve.Point.FromAffineCompressed(data)
}

func pointMarshalText(point Point) ([]byte, error) {
	t := point.ToAffineCompressed()
	name := []byte(point.CurveName())
	out := make([]byte, 0, len(name)+1+len(t)*2)
	out = append(out, name...)
	out = append(out, ':')
	return append(out, hex.EncodeToString(t)...), nil
}

func pointUnmarshalText(input []byte) (Point, error) {
	curve, data, err := splitName(input)
	if err != nil {
		return nil, err
	}
	buffer, err := hex.DecodeString(string(data))
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal text")
	}
	return curve.Point.FromAffineCompressed(buffer)
}

func pointMarshalJson(point Point) ([]byte, error) {
	m := make(map[string]string, 2)
	m["type"] = point.CurveName()
	m["value"] = hex.EncodeToString(point.ToAffineCompressed())
	return json.Marshal(m)
}

func pointUnmarshalJson(input []byte) (Point, error) {
	var m map[string]string

	err := json.Unmarshal(input, &m)
	if err != nil {
		return nil, err
	}
	curve := GetCurveByName(m["type"])
	if curve == nil {
		return nil, ErrUnknownCurve
	}
	p, err := hex.DecodeString(m["value"])
	if err != nil {
		return nil, err
	}
	return curve.Point.FromAffineCompressed(p)
}
