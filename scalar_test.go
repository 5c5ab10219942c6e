package jsexp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	t.Run("part numbers become quoted symbols", func(t *testing.T) {
		for _, s := range []string{"A4786", "E1628", "Z0", "Q123456789"} {
			require.Equal(t, "'"+s, encodeString(s))
		}
	})

	t.Run("near misses stay plain strings", func(t *testing.T) {
		cases := map[string]string{
			"a4786":  `"a4786"`,  // lowercase letter
			"AB123":  `"AB123"`,  // two letters
			"A":      `"A"`,      // no digits
			"4786A":  `"4786A"`,  // digit first
			"A4786x": `"A4786x"`, // trailing non-digit
			"":       `""`,
		}
		for in, want := range cases {
			require.Equal(t, want, encodeString(in))
		}
	})

	t.Run("backslashes and quotes are escaped once", func(t *testing.T) {
		require.Equal(t, `"say \"hi\""`, encodeString(`say "hi"`))
		require.Equal(t, `"a\\b"`, encodeString(`a\b`))
		require.Equal(t, `"\\\""`, encodeString(`\"`))
		// no other characters change
		require.Equal(t, `"Water Bucket (Filled)"`, encodeString("Water Bucket (Filled)"))
		require.Equal(t, "\"tab\tand\nnewline\"", encodeString("tab\tand\nnewline"))
	})
}

func TestEncodeBool(t *testing.T) {
	require.Equal(t, "#t", encodeBool(true))
	require.Equal(t, "#f", encodeBool(false))
}

func TestEncodeFloat(t *testing.T) {
	require.Equal(t, "1.47", encodeFloat(1.47))
	require.Equal(t, "4", encodeFloat(4))
	require.Equal(t, "-0.5", encodeFloat(-0.5))
	require.Equal(t, "1e+21", encodeFloat(1e21))
}

func TestEncodeOpaque(t *testing.T) {
	require.Equal(t, `"{1 2}"`, encodeOpaque(struct{ X, Y int }{1, 2}))
}
