package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello_world", "hello_world"},
		{"hello-world", "helloworld"},
		{"dd.MM.yyyy", "ddMMyyyy"},
		{"yyyy-MM-dd'T'HH:mm:ss", "yyyyMMddTHHmmss"},
		{"x y\tz", "xyz"},
		{"Ünïcode", "ncode"},
		{"", ""},
		{"---", ""},
		{"A1_b2", "A1_b2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, SanitizeIdentifier(tt.input))
		})
	}
}

func TestSanitizeIdentifierProperties(t *testing.T) {
	inputs := []string{
		"", "plain", "dd.MM.yyyy HH:mm", "a-b-c", "__x__", "日本語abc", "1970-01-01T00:00:00Z", "!@#$%^&*()",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			out := SanitizeIdentifier(in)

			require.Equal(t, out, SanitizeIdentifier(out), "must be idempotent")

			// out is a subsequence of in
			rest := in
			for _, r := range out {
				idx := strings.IndexRune(rest, r)
				require.GreaterOrEqual(t, idx, 0)
				rest = rest[idx+1:]
			}

			for _, r := range out {
				ok := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
				require.True(t, ok, "unexpected rune %q", r)
			}
		})
	}
}

func TestDateFormatName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"dd.MM.yyyy", "dd_MM_yyyy"},
		{"yyyy-MM-dd", "yyyyMMdd"},
		{"HH:mm", "HHmm"},
		{"dd.MM.yyyy HH:mm:ss", "dd_MM_yyyyHHmmss"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, DateFormatName(tt.input))
		})
	}
}

func TestEscapeReservedType(t *testing.T) {
	require.Equal(t, "Modelobject", EscapeReservedType("object"))
	require.Equal(t, "ModelClass", EscapeReservedType("Class"))
}

func TestEnumName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"status", "Status"},
		{"orderStatus", "OrderStatus"},
		{"Status", "Status"},
		{"sTATUS", "STATUS"},
		{"état", "État"},
		{"ßeta", "ßeta"},
		{"ǆungla", "ǅungla"},
		{"1st", "1st"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, EnumName(tt.input))
		})
	}
}

func TestCamelize(t *testing.T) {
	tests := []struct {
		input      string
		lowerFirst bool
		expected   string
	}{
		{"api_key", false, "ApiKey"},
		{"api_key", true, "apiKey"},
		{"bearerAuth", false, "BearerAuth"},
		{"bearerAuth", true, "bearerAuth"},
		{"X-API-KEY", false, "XAPIKEY"},
		{"X-API-KEY", true, "xAPIKEY"},
		{"petstore auth", false, "PetstoreAuth"},
		{"oauth2.client", true, "oauth2Client"},
		{"straße_ort", false, "StraßeOrt"},
		{"ßeta", false, "ßeta"},
		{"", false, ""},
		{"", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, Camelize(tt.input, tt.lowerFirst))
		})
	}
}

func TestParamName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"created_at", "createdAt"},
		{"Created-At", "createdAt"},
		{"$ref", "ref"},
		{"user.id", "userId"},
		{"2fa-token", "_2faToken"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ParamName(tt.input))
		})
	}
}
