package importer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arrayExport = `[
  {
    "date": "2025-01-01",
    "year": 2025,
    "chapters_assigned": [{"book": "Genesis", "chapter": 1}, {"book": "Genesis", "chapter": 2}],
    "completed_chapters": [
      {"book": "Genesis", "chapter": 2, "completed_at": {"$date": "2025-01-01T21:05:00Z"}},
      {"book": "Genesis", "chapter": 1, "completed_at": "2025-01-01T20:00:00.123000"}
    ],
    "is_fully_complete": true,
    "completed_at": {"$date": {"$numberLong": "1735765500000"}}
  }
]`

const lineExport = `{"date":"2025-01-01","year":2025,"chapters_assigned":[],"completed_chapters":[]}
{"date":"2025-01-02","year":2025,"chapters_assigned":[],"completed_chapters":[]}
`

func TestDecode_Array(t *testing.T) {
	docs, err := Decode(strings.NewReader("\n  " + arrayExport))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "2025-01-01", doc.Date)
	require.Len(t, doc.CompletedChapters, 2)
	assert.Equal(t, time.Date(2025, 1, 1, 21, 5, 0, 0, time.UTC), doc.CompletedChapters[0].CompletedAt.Time)
	assert.Equal(t, time.Date(2025, 1, 1, 20, 0, 0, 123000000, time.UTC), doc.CompletedChapters[1].CompletedAt.Time)
	require.NotNil(t, doc.CompletedAt)
	assert.Equal(t, time.Date(2025, 1, 1, 21, 5, 0, 0, time.UTC), doc.CompletedAt.Time)
	assert.Nil(t, doc.CreatedAt)
}

func TestDecode_OnePerLine(t *testing.T) {
	docs, err := Decode(strings.NewReader(lineExport))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "2025-01-02", docs[1].Date)
}

func TestDecode_Empty(t *testing.T) {
	docs, err := Decode(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDecode_MalformedLine(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"date":"2025-01-01"}` + "\n{oops}\n"))
	assert.ErrorContains(t, err, "document 2")
}

func TestTimestamp_Rejects(t *testing.T) {
	for _, raw := range []string{`"yesterday"`, `{"$date": true}`, `{"other": 1}`, `7`} {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(raw), &ts), raw)
	}
}

func TestTimestamp_EpochMillis(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`{"$date": 1735689600000}`), &ts))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ts.Time)
}

func TestTimestamp_MarshalsUTC(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	out, err := json.Marshal(NewTimestamp(time.Date(2025, 1, 1, 10, 0, 0, 0, loc)))
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-01T09:00:00Z"`, string(out))
}

func TestEncode_ThenDecode(t *testing.T) {
	docs, err := Decode(strings.NewReader(arrayExport))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, docs))
	assert.True(t, strings.HasPrefix(buf.String(), "[\n"))

	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, docs, again)
}

func TestEncode_NilWritesEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(lineExport), 0o644))

	docs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
