package config

import (
	"github.com/pkg/errors"

	"source.quilibrium.com/quilibrium/g2engine/pkg/core/curves/native/twist"
)

const DefaultDST = "QUIL_G2_XMD:SHA-256_SVDW_RO_"

type EngineConfig struct {
	// One of the preset curve names, see twist.CurveNames
	Curve string `yaml:"curve"`
	// Message expander used by hash-to-curve, e.g. XMD:SHA-256
	Expander string `yaml:"expander"`
	// Domain separation tag for hash-to-curve
	DST string `yaml:"dst"`
	// Emit compressed point encodings
	Compressed bool `yaml:"compressed"`
}

func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Curve:      "BLS12381",
		Expander:   twist.ExpanderSHA256,
		DST:        DefaultDST,
		Compressed: true,
	}
}

func (e *EngineConfig) Validate() error {
	if _, err := twist.CurveByName(e.Curve); err != nil {
		return errors.Wrap(err, "validate")
	}
	if e.DST == "" || len(e.DST) > 255 {
		return errors.Errorf("validate: dst must hold 1 to 255 bytes, got %d", len(e.DST))
	}
	if _, err := twist.NewExpander(e.Expander, []byte(e.DST)); err != nil {
		return errors.Wrap(err, "validate")
	}
	return nil
}
