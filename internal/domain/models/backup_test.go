package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "_meta": {"app":"TCN","version":"1.0","date":"2024-01-01T00:00:00.000Z","user":"a@b.com"},
  "farmers": [{"id":"x1","farmer_code":"FAR-0001","full_name":"Nguyen Van A"}],
  "farm_baselines": [],
  "unknown_key": {"ignored": true}
}`

func TestBackupDocument_Unmarshal(t *testing.T) {
	var doc BackupDocument
	require.NoError(t, json.Unmarshal([]byte(sampleDocument), &doc))

	assert.Equal(t, "TCN", doc.Meta.App)
	assert.Equal(t, "1.0", doc.Meta.Version)
	assert.Equal(t, "a@b.com", doc.Meta.User)
	assert.Equal(t, 2024, doc.Meta.Date.Year())

	require.Len(t, doc.Collections[CollectionFarmers], 1)
	farmer := doc.Collections[CollectionFarmers][0]
	assert.Equal(t, "FAR-0001", farmer["farmer_code"])
	assert.Equal(t, "Nguyen Van A", farmer["full_name"])

	// Present-but-empty differs from absent.
	baselines, ok := doc.Collections[CollectionFarmBaselines]
	assert.True(t, ok)
	assert.Empty(t, baselines)
	_, ok = doc.Collections[CollectionCoffeeModels]
	assert.False(t, ok)
}

func TestBackupDocument_MarshalLayout(t *testing.T) {
	doc := NewBackupDocument(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "a@b.com")
	doc.Collections[CollectionFarmers] = []Record{
		{"farmer_code": "FAR-0001", "full_name": "Nguyen Van A"},
	}

	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	// Every managed collection is a top-level key alongside _meta, empty
	// ones included.
	var flat map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &flat))
	assert.Contains(t, flat, "_meta")
	for _, c := range Collections {
		assert.Contains(t, flat, string(c), "collection %s missing from wire layout", c)
	}
	assert.Len(t, flat, len(Collections)+1)
	assert.JSONEq(t, `[]`, string(flat["financial_records"]))
}

func TestBackupDocument_MarshalRoundTrip(t *testing.T) {
	doc := NewBackupDocument(time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC), "a@b.com")
	doc.Collections[CollectionTrainingRecords] = []Record{
		{"farmer_id": "f1", "topic": "pruning", "attended": true},
	}

	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded BackupDocument
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, doc.Meta.App, decoded.Meta.App)
	assert.True(t, doc.Meta.Date.Equal(decoded.Meta.Date))
	require.Len(t, decoded.Collections[CollectionTrainingRecords], 1)
	assert.Equal(t, "pruning", decoded.Collections[CollectionTrainingRecords][0]["topic"])
}

func TestBackupDocument_CollectionMustBeArray(t *testing.T) {
	var doc BackupDocument
	err := json.Unmarshal([]byte(`{"_meta":{"app":"TCN"},"farmers":{"not":"an array"}}`), &doc)
	assert.Error(t, err)
}

func TestKnownCollection(t *testing.T) {
	for _, c := range Collections {
		assert.True(t, KnownCollection(string(c)))
	}
	assert.False(t, KnownCollection("users"))
	assert.False(t, KnownCollection(""))
}
