package prover

import (
	"math/big"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leHexOf(v uint64) string {
	var e fr.Element
	e.SetUint64(v)
	return FieldToHexLE(e)
}

func TestDecimalToField(t *testing.T) {
	one, err := DecimalToField("1")
	require.NoError(t, err)
	assert.Equal(t, "1", FieldToDecimal(one))

	big977, err := DecimalToField("977")
	require.NoError(t, err)
	var expected fr.Element
	expected.SetUint64(977)
	assert.True(t, expected.Equal(&big977))
}

func TestDecimalToFieldRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "12a3", "-5", "+5", " 7", "0x10", "1_000"} {
		_, err := DecimalToField(s)
		assert.ErrorIs(t, err, ErrParse, "input %q", s)
	}
}

func TestDecimalToFieldReducesAboveModulus(t *testing.T) {
	// q + 3 must wrap to 3, not fail.
	q := fr.Modulus()
	overflow := new(big.Int).Add(q, big.NewInt(3))
	e, err := DecimalToField(overflow.String())
	require.NoError(t, err)
	assert.Equal(t, "3", FieldToDecimal(e))

	atModulus, err := DecimalToField(q.String())
	require.NoError(t, err)
	assert.Equal(t, "0", FieldToDecimal(atModulus))
}

func TestHexLEToField(t *testing.T) {
	oneLE := "01" + strings.Repeat("00", 31)

	for _, s := range []string{"0x" + oneLE, "0X" + oneLE, oneLE} {
		e, err := HexLEToField(s)
		require.NoError(t, err, "input %q", s)
		var one fr.Element
		one.SetOne()
		assert.True(t, one.Equal(&e), "input %q", s)
	}
}

func TestHexLEToFieldRejectsMalformed(t *testing.T) {
	valid := "02" + strings.Repeat("00", 31)
	cases := map[string]string{
		"empty":        "",
		"prefix only":  "0x",
		"63 chars":     "0x" + valid[:63],
		"65 chars":     "0x" + valid + "0",
		"non-hex char": "0x" + "gg" + valid[2:],
	}
	for name, s := range cases {
		_, err := HexLEToField(s)
		assert.ErrorIs(t, err, ErrParse, name)
	}
}

func TestHexLEToFieldReducesAboveModulus(t *testing.T) {
	allFF := "0x" + strings.Repeat("ff", 32)
	e, err := HexLEToField(allFF)
	require.NoError(t, err)

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	max.Mod(max, fr.Modulus())
	assert.Equal(t, max.String(), FieldToDecimal(e))
}

func TestFieldToHexLECanonicalForm(t *testing.T) {
	var e fr.Element
	e.SetUint64(0xABCD)
	h := FieldToHexLE(e)
	assert.Len(t, h, HexLELength)
	assert.Equal(t, strings.ToLower(h), h)
	assert.True(t, strings.HasPrefix(h, "cdab"))
	assert.False(t, strings.HasPrefix(h, "0x"))
}

func TestHexRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 12345, 1 << 62}
	for _, v := range values {
		var e fr.Element
		e.SetUint64(v)
		h := FieldToHexLE(e)
		back, err := HexLEToField(h)
		require.NoError(t, err)
		assert.True(t, e.Equal(&back), "value %d", v)
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "42", "21888242871839275222246405745257275088548364400416034343698204186575808495616"} {
		e, err := DecimalToField(s)
		require.NoError(t, err)
		back, err := DecimalToField(FieldToDecimal(e))
		require.NoError(t, err)
		assert.True(t, e.Equal(&back), "value %s", s)
	}
}

func TestCrossEncodingEquivalence(t *testing.T) {
	for _, v := range []uint64{0, 1, 977, 1 << 40} {
		var e fr.Element
		e.SetUint64(v)

		fromDecimal, err := DecimalToField(FieldToDecimal(e))
		require.NoError(t, err)
		fromHex, err := HexLEToField(leHexOf(v))
		require.NoError(t, err)
		assert.True(t, fromDecimal.Equal(&fromHex), "value %d", v)
	}
}
