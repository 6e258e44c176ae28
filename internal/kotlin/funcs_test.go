package kotlin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKDoc(t *testing.T) {
	require.Empty(t, KDoc("  ", 0))
	require.Equal(t, "/**\n * An order.\n */", KDoc("An order.", 0))
	require.Equal(t, "    /**\n     * First.\n     *\n     * Second.\n     */", KDoc("First.\n\nSecond.", 4))
	require.Equal(t, "/**\n * ends *&#47; here\n */", KDoc("ends */ here", 0))
}

func TestStringLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dd.MM.yyyy", `"dd.MM.yyyy"`},
		{`say "hi"`, `"say \"hi\""`},
		{"$price", `"\$price"`},
		{`a\b`, `"a\\b"`},
		{"two\nlines", `"two\nlines"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, StringLiteral(tt.in))
		})
	}
}

func TestDict(t *testing.T) {
	require.Equal(t, map[string]any{"Name": "Status", "Indent": "    "}, Dict("Name", "Status", "Indent", "    "))
	require.Nil(t, Dict("odd"))
}
