package services

import (
	"encoding/json"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driving"
	"github.com/fabriqa-labs/fabriqa-cli/internal/logger"
)

// rowContainerKeys are the conventional field names under which foreign
// exports nest their row array when the top level is an object.
var rowContainerKeys = []string{"rows", "records", "data", "items", "documents", "entries"}

// Ensure Converter implements the interface.
var _ driving.ConverterService = (*Converter)(nil)

// Converter turns a loosely-structured foreign export into a standard
// backup artifact, best-effort. Rows referencing unknown collections or
// carrying unparsable payloads are dropped silently.
type Converter struct{}

// NewConverter creates a foreign-format converter.
func NewConverter() *Converter {
	return &Converter{}
}

// foreignRow tolerates the field-name conventions seen across exports.
// The collection name and payload are each resolved from the first
// populated alias.
type foreignRow struct {
	Collection string `json:"collection"`
	Table      string `json:"table"`
	Dataset    string `json:"dataset"`

	ID    string `json:"id"`
	DocID string `json:"docId"`

	Payload json.RawMessage `json:"payload"`
	Data    json.RawMessage `json:"data"`
	Fields  json.RawMessage `json:"fields"`
	Doc     json.RawMessage `json:"doc"`
}

func (r *foreignRow) collectionName() string {
	for _, name := range []string{r.Collection, r.Table, r.Dataset} {
		if name != "" {
			return name
		}
	}
	return ""
}

func (r *foreignRow) payload() json.RawMessage {
	for _, p := range []json.RawMessage{r.Payload, r.Data, r.Fields, r.Doc} {
		if len(p) > 0 && string(p) != "null" {
			return p
		}
	}
	return nil
}

// Convert parses the foreign payload into a full-type artifact attributed
// to the given actor. The result still has to pass ValidateArtifact before
// it can be restored.
func (c *Converter) Convert(raw []byte, actor string) (*domain.BackupArtifact, error) {
	rows, err := extractRows(raw)
	if err != nil {
		return nil, err
	}

	collections := make(map[string][]domain.Document)
	var order []string
	dropped := 0

	for _, rowRaw := range rows {
		var row foreignRow
		if err := json.Unmarshal(rowRaw, &row); err != nil {
			dropped++
			continue
		}

		name := row.collectionName()
		if !domain.IsKnownCollection(name) {
			dropped++
			continue
		}

		doc, ok := parsePayload(row.payload())
		if !ok {
			dropped++
			continue
		}

		if id := firstNonEmpty(row.ID, row.DocID); id != "" {
			doc = doc.WithID(id)
		}

		if _, seen := collections[name]; !seen {
			order = append(order, name)
		}
		collections[name] = append(collections[name], doc)
	}

	if len(order) == 0 {
		return nil, domain.ErrEmptyConversion
	}
	if dropped > 0 {
		logger.Warn("Foreign conversion dropped %d of %d rows", dropped, len(rows))
	}

	return domain.NewArtifact(domain.ExportFull, "", actor, order, collections), nil
}

// extractRows finds the row array: either the top level itself, or the
// first conventional container key holding one.
func extractRows(raw []byte) ([]json.RawMessage, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err == nil {
		return rows, nil
	}

	var container map[string]json.RawMessage
	if err := json.Unmarshal(raw, &container); err != nil {
		return nil, domain.ErrEmptyConversion
	}
	for _, key := range rowContainerKeys {
		value, ok := container[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, &rows); err == nil {
			return rows, nil
		}
	}
	return nil, domain.ErrEmptyConversion
}

// parsePayload accepts either an inline object or a JSON string containing
// an encoded object.
func parsePayload(payload json.RawMessage) (domain.Document, bool) {
	if len(payload) == 0 {
		return nil, false
	}

	var doc domain.Document
	if err := json.Unmarshal(payload, &doc); err == nil && doc != nil {
		return doc, true
	}

	var encoded string
	if err := json.Unmarshal(payload, &encoded); err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(encoded), &doc); err != nil || doc == nil {
		return nil, false
	}
	return doc, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
