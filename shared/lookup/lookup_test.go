package lookup_test

import (
	"strings"
	"testing"

	"tourbook/shared/lookup"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	positive := func(n int) bool { return n > 0 }

	match := lookup.All[int](even, positive, nil)

	assert.True(t, match(4))
	assert.False(t, match(-2))
	assert.False(t, match(3))
	assert.True(t, lookup.All[int]()(7))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cancún", lookup.Normalize("  CANCÚN \t"))
	assert.Equal(t, "", lookup.Normalize("   "))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, lookup.ContainsAny("garcía", "María García", "maria@example.com"))
	assert.True(t, lookup.ContainsAny("example", "María García", "maria@EXAMPLE.com"))
	assert.False(t, lookup.ContainsAny("pedro", "María García"))
	assert.False(t, lookup.ContainsAny("x"))
}

func TestTake(t *testing.T) {
	words := []string{"uno", "dos", "tres", "cuatro", "cinco", "seis", "siete"}

	got := lookup.Take(words, 2, func(w string) bool { return strings.HasPrefix(w, "s") })
	assert.Equal(t, []string{"seis", "siete"}, got)

	got = lookup.Take(words, 3, func(string) bool { return true })
	assert.Equal(t, []string{"uno", "dos", "tres"}, got)

	assert.Empty(t, lookup.Take(words, 5, func(string) bool { return false }))
	assert.NotNil(t, lookup.Take[string](nil, 5, func(string) bool { return true }))
}

func TestDistinct(t *testing.T) {
	got := lookup.Distinct([]string{"Aventura", "", "Cultural", "Aventura", "Playa"}, func(s string) string { return s })

	assert.Equal(t, []string{"Aventura", "Cultural", "Playa"}, got)
}

func TestEqualFold(t *testing.T) {
	assert.True(t, lookup.EqualFold("", "Cultural"))
	assert.True(t, lookup.EqualFold("cultural", "Cultural"))
	assert.False(t, lookup.EqualFold("playa", "Cultural"))
}
