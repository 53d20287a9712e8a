package crypto

import (
	"github.com/cloudflare/circl/expander"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"

	"source.quilibrium.com/quilibrium/g2engine/config"
	"source.quilibrium.com/quilibrium/g2engine/pkg/core/curves/native/twist"
)

type G2Hasher interface {
	HashToG2(msg []byte) ([]byte, error)
	EncodeToG2(msg []byte) ([]byte, error)
	MapToG2(msg []byte) ([]byte, error)
	Mul(point []byte, scalar []byte) ([]byte, error)
	Decode(point []byte) (*twist.ECP2, error)
}

type TwistG2Hasher struct {
	curve      *twist.Curve
	exp        expander.Expander
	compressed bool
	logger     *zap.Logger
}

var _ G2Hasher = (*TwistG2Hasher)(nil)

func NewTwistG2Hasher(
	logger *zap.Logger,
	curve *twist.Curve,
	expanderName string,
	dst []byte,
	compressed bool,
) (*TwistG2Hasher, error) {
	exp, err := twist.NewExpander(expanderName, dst)
	if err != nil {
		return nil, errors.Wrap(err, "new twist g2 hasher")
	}

	return &TwistG2Hasher{
		curve:      curve,
		exp:        exp,
		compressed: compressed,
		logger:     logger,
	}, nil
}

func NewTwistG2HasherFromConfig(
	logger *zap.Logger,
	engineConfig *config.EngineConfig,
) (*TwistG2Hasher, error) {
	if err := engineConfig.Validate(); err != nil {
		return nil, errors.Wrap(err, "new twist g2 hasher")
	}

	curve, err := twist.CurveByName(engineConfig.Curve)
	if err != nil {
		return nil, errors.Wrap(err, "new twist g2 hasher")
	}

	return NewTwistG2Hasher(
		logger,
		curve,
		engineConfig.Expander,
		[]byte(engineConfig.DST),
		engineConfig.Compressed,
	)
}

func (h *TwistG2Hasher) Curve() *twist.Curve {
	return h.curve
}

func (h *TwistG2Hasher) encode(P *twist.ECP2) ([]byte, error) {
	out := make([]byte, h.curve.SerializedSize(h.compressed))
	if err := P.ToBytes(out, h.compressed); err != nil {
		return nil, errors.Wrap(err, "encode")
	}
	return out, nil
}

// HashToG2 implements G2Hasher.
func (h *TwistG2Hasher) HashToG2(msg []byte) ([]byte, error) {
	h.logger.Debug(
		"hashing to g2",
		zap.String("curve", h.curve.Name()),
		zap.Int("message_length", len(msg)),
	)
	return h.encode(twist.ECP2_hashToCurve(h.curve, h.exp, msg))
}

// EncodeToG2 implements G2Hasher.
func (h *TwistG2Hasher) EncodeToG2(msg []byte) ([]byte, error) {
	h.logger.Debug(
		"encoding to g2",
		zap.String("curve", h.curve.Name()),
		zap.Int("message_length", len(msg)),
	)
	return h.encode(twist.ECP2_encodeToCurve(h.curve, h.exp, msg))
}

// MapToG2 implements G2Hasher. It digests msg with SHA3-256 and runs the
// legacy trial map, whose running time depends on the digest.
func (h *TwistG2Hasher) MapToG2(msg []byte) ([]byte, error) {
	digest := sha3.Sum256(msg)
	h.logger.Debug(
		"mapping to g2 with legacy map",
		zap.String("curve", h.curve.Name()),
	)
	return h.encode(twist.ECP2_mapit(h.curve, digest[:]))
}

// Decode implements G2Hasher. Points outside the order r subgroup are
// rejected.
func (h *TwistG2Hasher) Decode(point []byte) (*twist.ECP2, error) {
	P, err := twist.ECP2_fromBytes(h.curve, point)
	if err != nil {
		h.logger.Error("could not decode point", zap.Error(err))
		return nil, errors.Wrap(err, "decode")
	}

	if !P.InSubgroup() {
		err := errors.New("point not in g2")
		h.logger.Error("could not decode point", zap.Error(err))
		return nil, errors.Wrap(err, "decode")
	}

	return P, nil
}

// Mul implements G2Hasher. scalar is big-endian and at most
// twist.SCALAR_BYTES long.
func (h *TwistG2Hasher) Mul(point []byte, scalar []byte) ([]byte, error) {
	P, err := h.Decode(point)
	if err != nil {
		return nil, errors.Wrap(err, "mul")
	}

	k, err := twist.NewScalarBytes(scalar)
	if err != nil {
		h.logger.Error("invalid scalar", zap.Error(err))
		return nil, errors.Wrap(err, "mul")
	}

	return h.encode(P.Mul(k))
}
