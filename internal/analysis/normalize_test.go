package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCategoryArray = `[
	{"name":"Identify","description":"d","results":[
		{"id":"ID.AM-1","control":"inventory","status":"covered","details":"found","recommendation":"keep"},
		{"id":"ID.AM-2","control":"software","status":"gap","details":"missing","recommendation":"add"}
	]}
]`

func TestNormalizeBareArray(t *testing.T) {
	cats, err := Normalize(validCategoryArray)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Identify", cats[0].Name)
	require.Len(t, cats[0].Results, 2)
	assert.Equal(t, StatusCovered, cats[0].Results[0].Status)
	assert.Equal(t, StatusGap, cats[0].Results[1].Status)
}

func TestNormalizeWrappedArray(t *testing.T) {
	cats, err := Normalize(`{"categories":` + validCategoryArray + `}`)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Identify", cats[0].Name)
}

// shape (b) passes through unchanged apart from entry validation
func TestNormalizeWrappedArrayIdempotent(t *testing.T) {
	direct, err := Normalize(validCategoryArray)
	require.NoError(t, err)
	wrapped, err := Normalize(`{"categories":` + validCategoryArray + `}`)
	require.NoError(t, err)
	assert.Equal(t, direct, wrapped)
}

func TestNormalizeSingleCategoryObject(t *testing.T) {
	raw := `{"categories":{"name":"X","description":"d","results":[
		{"id":"1","control":"c","status":"partial","details":"","recommendation":""}
	]}}`
	cats, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "X", cats[0].Name)
	require.Len(t, cats[0].Results, 1)
	assert.Equal(t, StatusPartial, cats[0].Results[0].Status)
}

func TestNormalizeStripsFences(t *testing.T) {
	cats, err := Normalize("```json\n" + validCategoryArray + "\n```")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Len(t, cats[0].Results, 2)
}

func TestNormalizeExtractsFromProse(t *testing.T) {
	raw := `Here is the analysis you asked for: {"categories":` + validCategoryArray + `} Hope this helps!`
	cats, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, cats, 1)
}

func TestNormalizeBracesInsideStrings(t *testing.T) {
	raw := `{"categories":[{"name":"A {curly} name","description":"", "results":[
		{"id":"1","control":"c","status":"covered","details":"uses { and }","recommendation":""}
	]}]}`
	cats, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "A {curly} name", cats[0].Name)
}

func TestNormalizeMalformedJSON(t *testing.T) {
	_, err := Normalize("Sure! {categories: [}")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestNormalizeNoJSONAtAll(t *testing.T) {
	_, err := Normalize("I could not produce an analysis.")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestNormalizeUnrecognizedShape(t *testing.T) {
	// categories present but neither array nor object
	_, err := Normalize(`{"categories":"nope"}`)
	assert.ErrorIs(t, err, ErrUnrecognizedStructure)

	// no categories key at all
	_, err = Normalize(`{"something":"else"}`)
	assert.ErrorIs(t, err, ErrUnrecognizedStructure)
}

func TestNormalizeSkipsMalformedEntries(t *testing.T) {
	raw := `{"categories":[{"name":"A","description":"","results":[
		{"id":"1","control":"ok","status":"covered","details":"","recommendation":""},
		{"id":"2","control":"bad status","status":"unknown","details":"","recommendation":""},
		{"id":"3","control":"no status","details":"","recommendation":""},
		{"id":"4","control":"ok too","status":"gap","details":"","recommendation":""}
	]}]}`
	cats, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Len(t, cats[0].Results, 2)
	assert.Equal(t, "1", cats[0].Results[0].ID)
	assert.Equal(t, "4", cats[0].Results[1].ID)
}

func TestNormalizeCategoryWithoutResults(t *testing.T) {
	raw := `{"categories":[{"name":"Empty","description":"no results key"}]}`
	cats, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Empty(t, cats[0].Results)
}

func TestNormalizeOutputIsValidResult(t *testing.T) {
	cats, err := Normalize(validCategoryArray)
	require.NoError(t, err)
	// round-trips through the canonical JSON shape
	data, err := json.Marshal(Result{Categories: cats, Summary: Score(cats)})
	require.NoError(t, err)
	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, cats, back.Categories)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"covered", "partial", "gap"} {
		s, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), s)
	}
	for _, invalid := range []string{"", "Covered", "COVERED", "unknown", "ok"} {
		_, err := ParseStatus(invalid)
		assert.Error(t, err, "status %q must be rejected", invalid)
	}
}
