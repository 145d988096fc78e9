package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// BackupAppTag is the application tag stamped into every backup document.
// Restore rejects any document whose _meta.app differs from it.
const BackupAppTag = "TCN"

// BackupFormatVersion is written into _meta.version on export.
const BackupFormatVersion = "1.0"

// BackupMeta describes the provenance of a backup document.
type BackupMeta struct {
	App     string    `json:"app"`
	Version string    `json:"version"`
	Date    time.Time `json:"date"`
	User    string    `json:"user"`
}

// BackupDocument is the single exchange artifact produced by export and
// consumed by restore. On the wire it is a flat JSON object: a "_meta" key
// plus one top-level key per collection holding an array of records.
type BackupDocument struct {
	Meta        BackupMeta
	Collections map[Collection][]Record
}

// NewBackupDocument returns an empty document stamped with the current
// format tag and the given export time and user.
func NewBackupDocument(date time.Time, user string) *BackupDocument {
	return &BackupDocument{
		Meta: BackupMeta{
			App:     BackupAppTag,
			Version: BackupFormatVersion,
			Date:    date,
			User:    user,
		},
		Collections: make(map[Collection][]Record, len(Collections)),
	}
}

// MarshalJSON writes the flat wire layout: _meta first, then every managed
// collection in the fixed order. Collections with no records are emitted as
// empty arrays so the document shape is stable across exports.
func (d *BackupDocument) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	buf.WriteString(`"_meta":`)
	meta, err := json.Marshal(d.Meta)
	if err != nil {
		return nil, fmt.Errorf("marshal _meta: %w", err)
	}
	buf.Write(meta)

	for _, c := range Collections {
		records := d.Collections[c]
		if records == nil {
			records = []Record{}
		}
		payload, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("marshal collection %s: %w", c, err)
		}
		buf.WriteByte(',')
		fmt.Fprintf(&buf, "%q:", string(c))
		buf.Write(payload)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the flat wire layout. Top-level keys that are not
// _meta or a managed collection are ignored; a managed collection key whose
// value is not an array is an error.
func (d *BackupDocument) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode backup document: %w", err)
	}

	d.Meta = BackupMeta{}
	d.Collections = make(map[Collection][]Record, len(Collections))

	if meta, ok := raw["_meta"]; ok {
		if err := json.Unmarshal(meta, &d.Meta); err != nil {
			return fmt.Errorf("decode _meta: %w", err)
		}
	}

	for _, c := range Collections {
		payload, ok := raw[string(c)]
		if !ok {
			continue
		}
		var records []Record
		if err := json.Unmarshal(payload, &records); err != nil {
			return fmt.Errorf("decode collection %s: %w", c, err)
		}
		d.Collections[c] = records
	}

	return nil
}

// RestoreReport summarizes one restore run: how many records were actually
// created per collection. Attempted-but-failed records are not counted.
type RestoreReport struct {
	Created      map[Collection]int `json:"created"`
	TotalCreated int                `json:"total_created"`
}
