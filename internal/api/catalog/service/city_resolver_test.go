package catalogService

import (
	"EditorialAssistant/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAvailability() []entity.LocationAvailability {
	return []entity.LocationAvailability{
		{Location: "São Paulo", Stores: []string{"Livraria Central", "Leitura Shopping"}},
		{Location: "Rio de Janeiro", Stores: []string{"Letras Cariocas"}},
		{Location: "Curitiba", Stores: []string{}},
		{Location: "Online", Stores: []string{"Amazon", "Site da Editora"}},
	}
}

func TestResolveCityExactMatch(t *testing.T) {
	match := resolveCity("são paulo", testAvailability())

	require.NotNil(t, match)
	assert.Equal(t, "São Paulo", match.City)
	assert.Equal(t, []string{"Livraria Central", "Leitura Shopping"}, match.Stores)
}

func TestResolveCitySynonyms(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"sp", "São Paulo"},
		{"SAMPA", "São Paulo"},
		{"rj", "Rio de Janeiro"},
		{"Rio", "Rio de Janeiro"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			match := resolveCity(tt.input, testAvailability())
			require.NotNil(t, match)
			assert.Equal(t, tt.expected, match.City)
		})
	}
}

func TestResolveCityFuzzyMatch(t *testing.T) {
	// "sao" is a prefix of the normalized key "sao paulo".
	match := resolveCity("sao", testAvailability())
	require.NotNil(t, match)
	assert.Equal(t, "São Paulo", match.City)

	// "janeiro" is a substring of "rio de janeiro".
	match = resolveCity("janeiro", testAvailability())
	require.NotNil(t, match)
	assert.Equal(t, "Rio de Janeiro", match.City)
}

func TestResolveCityNoMatchIsNormal(t *testing.T) {
	assert.Nil(t, resolveCity("Salvador", testAvailability()))
	assert.Nil(t, resolveCity("", testAvailability()))
	assert.Nil(t, resolveCity("   ", testAvailability()))
}

func TestResolveCityEmptyStoresNeverMatch(t *testing.T) {
	assert.Nil(t, resolveCity("Curitiba", testAvailability()))
}

func TestResolveCityOnlineExcluded(t *testing.T) {
	assert.Nil(t, resolveCity("Online", testAvailability()))
}

func TestResolveCityOrderBreaksTies(t *testing.T) {
	availability := []entity.LocationAvailability{
		{Location: "Santos", Stores: []string{"Loja A"}},
		{Location: "Santa Maria", Stores: []string{"Loja B"}},
	}

	// "sant" is a prefix of both keys; the first entry wins.
	match := resolveCity("sant", availability)
	require.NotNil(t, match)
	assert.Equal(t, "Santos", match.City)
}
