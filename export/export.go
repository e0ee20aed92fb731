// Package export turns content records into downloadable artifacts.
package export

import (
	"bytes"
	"encoding/json"

	"github.com/yuin/goldmark"

	"social-agent/logger"
	"social-agent/models"
)

// ContentJSON serializes a record as indented, human-readable JSON.
// Serialization failures degrade to an empty object instead of propagating.
func ContentJSON(record models.ContentRecord) []byte {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		logger.Log.Errorf("failed to export content record %s: %v", record.ID, err)
		return []byte("{}")
	}
	return data
}

// ContentHTML renders the record's markdown content to HTML for the
// browser preview.
func ContentHTML(record models.ContentRecord) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(record.Content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
