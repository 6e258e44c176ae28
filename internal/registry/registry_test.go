package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDateFormatsAdd(t *testing.T) {
	r := NewDateFormats()

	require.True(t, r.Add("dd_MM_yyyy", "dd.MM.yyyy"))
	require.False(t, r.Add("dd_MM_yyyy", "dd.MM.yyyy"))
	require.Equal(t, 1, r.Len())

	p, ok := r.Pattern("dd_MM_yyyy")
	require.True(t, ok)
	require.Equal(t, "dd.MM.yyyy", p)
}

func TestDateFormatsFirstPatternWins(t *testing.T) {
	r := NewDateFormats()
	r.Add("yyyyMMdd", "yyyy-MM-dd")
	r.Add("yyyyMMdd", "yyyy/MM/dd")

	p, _ := r.Pattern("yyyyMMdd")
	require.Equal(t, "yyyy-MM-dd", p)
}

func TestDateFormatsEntriesSorted(t *testing.T) {
	r := NewDateFormats()
	r.Add("HHmm", "HH:mm")
	r.Add("dd_MM_yyyy", "dd.MM.yyyy")
	r.Add("yyyyMMdd", "yyyy-MM-dd")

	require.Equal(t, []DateFormat{
		{Name: "HHmm", Pattern: "HH:mm"},
		{Name: "dd_MM_yyyy", Pattern: "dd.MM.yyyy"},
		{Name: "yyyyMMdd", Pattern: "yyyy-MM-dd"},
	}, r.Entries())
	require.Equal(t, 3, r.Len())
}

func TestAdaptersLockstep(t *testing.T) {
	r := NewAdapters()

	r.Add("Order.Status.JsonAdapter", "ru.touchin.Api.models.Order")
	r.Add("Order.OrderJsonAdapter", "ru.touchin.Api.models.Order")
	r.Add("Order.OrderJsonAdapter", "ru.touchin.Api.models.Order")
	r.Add("Pet.PetJsonAdapter", "ru.touchin.Api.models.Pet")

	require.Equal(t, 3, r.Len())
	require.Equal(t, []string{
		"Order.OrderJsonAdapter",
		"Order.Status.JsonAdapter",
		"Pet.PetJsonAdapter",
	}, r.Names())
	require.Equal(t, []string{
		"ru.touchin.Api.models.Order",
		"ru.touchin.Api.models.Pet",
	}, r.Imports())
	require.True(t, r.Has("Pet.PetJsonAdapter"))
	require.False(t, r.Has("Pet.Kind.JsonAdapter"))
}

func TestNewRegistriesAreIndependent(t *testing.T) {
	first := New()
	first.DateFormats.Add("HHmm", "HH:mm")
	first.Adapters.Add("A.AJsonAdapter", "pkg.models.A")

	second := New()
	require.Zero(t, second.DateFormats.Len())
	require.Zero(t, second.Adapters.Len())
}
