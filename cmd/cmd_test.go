package cmd

import (
	"bytes"
	"encoding/hex"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"source.quilibrium.com/quilibrium/g2engine/pkg/core/curves/native/twist"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	curveOverride = ""
	encodeOnly = false
	debug = false
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCurvesCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "curves")
	require.NoError(t, err)
	require.Contains(t, out, "BLS12381\tBLS12\tM-type\t381 bits")
	require.Contains(t, out, "ALTBN128\tBN\tD-type\t254 bits")
	require.Len(t, strings.Split(out, "\n"), len(twist.CurveNames()))
}

func TestGeneratorAndMul(t *testing.T) {
	dir := t.TempDir()
	g, err := run(t, dir, "--curve", "bn254", "generator")
	require.NoError(t, err)
	gb, err := hex.DecodeString(g)
	require.NoError(t, err)
	require.Len(t, gb, twist.BN254().SerializedSize(true))

	two, err := run(t, dir, "--curve", "bn254", "mul", g, "02")
	require.NoError(t, err)

	G := twist.ECP2_generator(twist.BN254())
	G.Dbl()
	want := make([]byte, twist.BN254().SerializedSize(true))
	require.NoError(t, G.ToBytes(want, true))
	require.Equal(t, hex.EncodeToString(want), two)

	_, err = run(t, dir, "--curve", "bn254", "mul", "zz", "02")
	require.Error(t, err)
	_, err = run(t, dir, "--curve", "bn254", "mul", g)
	require.Error(t, err)
}

func TestHashCommands(t *testing.T) {
	dir := t.TempDir()
	h, err := run(t, dir, "hash", "abc")
	require.NoError(t, err)
	e, err := run(t, dir, "hash", "--encode", "abc")
	require.NoError(t, err)
	require.NotEqual(t, h, e)

	m, err := run(t, dir, "mapit", "abc")
	require.NoError(t, err)
	m2, err := run(t, dir, "mapit", "abc")
	require.NoError(t, err)
	require.Equal(t, m, m2)

	d, err := run(t, dir, "decode", h)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(d, "("))

	_, err = run(t, dir, "decode", "00")
	require.ErrorIs(t, err, twist.ErrInvalidLength)
}

func TestConfigCommands(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	_, err := run(t, dir, "--curve", "fp256bn", "config", "show")
	require.NoError(t, err)

	out, err := run(t, dir, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "curve: BLS12381")

	out, err = run(t, dir, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, dir)

	_, err = run(t, dir, "--curve", "nope", "curves")
	require.ErrorIs(t, err, twist.ErrUnknownCurve)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, filepath.Join(t.TempDir(), "never-created"), "version")
	require.NoError(t, err)
	require.Equal(t, "G2 Twist Engine - CLI - v"+Version, out)
}
