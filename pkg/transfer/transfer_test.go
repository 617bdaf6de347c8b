package transfer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/transfer"
)

func TestExportImport_RoundTrip(t *testing.T) {
	notes := []core.Note{
		{ID: "a", Title: "Zebra", Content: "stripes", Tags: []string{"animal"}, Pinned: true},
		{ID: "b", Title: "Apple", Content: "", Tags: nil, Pinned: false},
	}

	data, err := transfer.Export(notes)
	require.NoError(t, err)

	got, err := transfer.Import[core.Note](data)
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestExport_PrettyPrinted(t *testing.T) {
	data, err := transfer.Export([]core.Card{{ID: "a", Question: "Q"}})
	require.NoError(t, err)

	// 2-space indentation, top-level array.
	assert.True(t, strings.HasPrefix(string(data), "[\n  {"), "got: %s", data)
}

func TestExport_EmptyCollectionIsAnArray(t *testing.T) {
	data, err := transfer.Export[core.Note](nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestImport_ObjectIsNotAnArray(t *testing.T) {
	_, err := transfer.Import[core.Note]([]byte("{}"))
	require.ErrorIs(t, err, core.ErrNotAnArray)
}

func TestImport_MalformedJSON(t *testing.T) {
	_, err := transfer.Import[core.Note]([]byte("not json"))
	require.ErrorIs(t, err, core.ErrMalformed)
}

func TestImport_ScalarIsNotAnArray(t *testing.T) {
	_, err := transfer.Import[core.Note]([]byte("42"))
	require.ErrorIs(t, err, core.ErrNotAnArray)
}

func TestImport_NullIsNotAnArray(t *testing.T) {
	// null decodes into a nil slice without error; accepting it would let
	// an import of "null" replace the collection with nothing.
	got, err := transfer.Import[core.Note]([]byte("null"))
	require.ErrorIs(t, err, core.ErrNotAnArray)
	assert.Nil(t, got)
}

func TestImport_EmptyArray(t *testing.T) {
	got, err := transfer.Import[core.Note]([]byte("[]"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestImport_LenientElementDecode(t *testing.T) {
	// No per-field schema validation: missing fields become zero values,
	// mistyped fields are dropped, the rest of the record survives.
	data := []byte(`[{"id":"a"},{"title":"only title","pinned":"nope"},{}]`)

	got, err := transfer.Import[core.Note](data)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "only title", got[1].Title)
	assert.False(t, got[1].Pinned)
	assert.Equal(t, core.Note{}, got[2])
}

func TestExportName(t *testing.T) {
	assert.Equal(t, transfer.NotesExportName, transfer.ExportName(core.KeyNotes))
	assert.Equal(t, transfer.CardsExportName, transfer.ExportName(core.KeyCards))
}
