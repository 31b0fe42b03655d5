package swapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
)

func TestValidateOperations(t *testing.T) {
	assert.NoError(t, ValidateOperations())
}

func TestGeneratedOperationsMatchDocuments(t *testing.T) {
	schema, err := Schema()
	require.NoError(t, err)

	doc, errs := gqlparser.LoadQuery(schema, queriesSource)
	require.Empty(t, errs)

	names := make([]string, 0, len(doc.Operations))
	for _, op := range doc.Operations {
		names = append(names, op.Name)
	}
	assert.ElementsMatch(t, []string{"AllFilms", "FilmDetail", "CharacterDetail"}, names)
	require.Len(t, doc.Fragments, 1)
	assert.Equal(t, "ListFilmFragment", doc.Fragments[0].Name)

	for name, text := range Operations {
		generated, errs := gqlparser.LoadQuery(schema, text)
		require.Empty(t, errs, name)
		require.Len(t, generated.Operations, 1, name)
		assert.Equal(t, name, generated.Operations[0].Name)
	}
}

func TestValidateOperations_RejectsUnknownField(t *testing.T) {
	schema, err := Schema()
	require.NoError(t, err)

	_, errs := gqlparser.LoadQuery(schema, `query Broken { film(id: "x") { lightsaberColor } }`)
	assert.NotEmpty(t, errs)
}
