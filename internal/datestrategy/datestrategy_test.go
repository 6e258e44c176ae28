package datestrategy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/touchin/ticodegen/internal/codegen"
)

func hostTables() *codegen.TypeTables {
	t := codegen.NewTypeTables()
	t.TypeMapping["date"] = "java.time.LocalDate"
	t.TypeMapping["date-time"] = "java.time.OffsetDateTime"
	t.TypeMapping["time"] = "java.time.LocalTime"
	t.TypeMapping["string"] = "kotlin.String"
	return t
}

func TestParse(t *testing.T) {
	tests := []struct {
		token    string
		expected Strategy
		wantErr  bool
	}{
		{"", JodaTime, false},
		{"jodaTime", JodaTime, false},
		{"java8", Java8, false},
		{"string", String, false},
		{"JodaTime", "", true},
		{"threetenbp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyJodaTime(t *testing.T) {
	tables := hostTables()
	require.NoError(t, JodaTime.Apply(tables))

	require.Equal(t, "DateTime", tables.MapType("date"))
	require.Equal(t, "DateTime", tables.MapType("date-time"))
	require.Equal(t, "DateTime", tables.MapType("time"))

	imp, ok := tables.ImportFor("DateTime")
	require.True(t, ok)
	require.Equal(t, "org.joda.time.DateTime", imp)
	require.Equal(t, []string{"org.joda.time.DateTime"}, tables.DefaultIncludes.Items())

	require.True(t, tables.JodaTime)
	require.False(t, tables.Java8)
	require.Equal(t, "jodaTime", tables.DateLibrary)
}

func TestApplyString(t *testing.T) {
	tables := hostTables()
	require.NoError(t, String.Apply(tables))

	require.Equal(t, "kotlin.String", tables.MapType("date"))
	require.Equal(t, "kotlin.String", tables.MapType("date-time"))
	require.Equal(t, "kotlin.String", tables.MapType("time"))
	require.Empty(t, tables.ImportMapping)
	require.Zero(t, tables.DefaultIncludes.Len())
	require.False(t, tables.JodaTime)
	require.False(t, tables.Java8)
}

func TestApplyJava8KeepsHostMapping(t *testing.T) {
	tables := hostTables()
	require.NoError(t, Java8.Apply(tables))

	require.Equal(t, "java.time.LocalDate", tables.MapType("date"))
	require.Equal(t, "java.time.OffsetDateTime", tables.MapType("date-time"))
	require.True(t, tables.Java8)
	require.False(t, tables.JodaTime)
	require.Zero(t, tables.DefaultIncludes.Len())
}

func TestApplyOnce(t *testing.T) {
	tables := hostTables()
	require.NoError(t, JodaTime.Apply(tables))

	err := String.Apply(tables)
	require.ErrorIs(t, err, ErrAlreadyApplied)
	require.Equal(t, "DateTime", tables.MapType("date"))
	require.Equal(t, 1, tables.DefaultIncludes.Len())
}

func TestApplyUnknown(t *testing.T) {
	tables := hostTables()
	err := Strategy("bogus").Apply(tables)
	require.ErrorIs(t, err, ErrUnknownStrategy)
	require.Empty(t, tables.DateLibrary)
	require.Equal(t, "java.time.LocalDate", tables.MapType("date"))
}
