package service

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

// cardDiff compares the editable fields of two card states and returns a
// field-level diff map. Values are compared through their serialized form so
// that tag lists and nullable dates diff cleanly.
func cardDiff(before, after model.Card) map[string]model.FieldChange {
	diff := make(map[string]model.FieldChange)

	fields := []struct {
		name          string
		before, after any
	}{
		{"title", before.Title, after.Title},
		{"description", before.Description, after.Description},
		{"tags", before.Tags, after.Tags},
		{"priority", before.Priority, after.Priority},
		{"dueDate", isoOrNil(before.DueDate), isoOrNil(after.DueDate)},
	}

	for _, f := range fields {
		if !jsonEqual(f.before, f.after) {
			diff[f.name] = model.FieldChange{Before: f.before, After: f.after}
		}
	}
	return diff
}

func jsonEqual(a, b any) bool {
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	return bytes.Equal(ja, jb)
}

func isoOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
