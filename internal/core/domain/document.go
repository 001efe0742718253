package domain

// DocIDField is the reserved field under which a document's store key is
// stamped when reading, and from which the target key is resolved when
// writing. The ERP screens name business fields in plain snake_case, so the
// underscore prefix keeps it out of their way.
const DocIDField = "_docId"

// StoreChunkLimit is the document store's per-transaction write/delete
// ceiling. Batches larger than this must be split into sequential chunks.
const StoreChunkLimit = 500

// Document is an open-ended field map as held in a store collection.
// The store is schemaless from the engine's point of view; no per-collection
// schema is recovered or enforced here.
type Document map[string]any

// ID returns the document's store key, or "" if it has none yet.
func (d Document) ID() string {
	id, _ := d[DocIDField].(string)
	return id
}

// WithID returns a copy of the document stamped with the given store key.
func (d Document) WithID(id string) Document {
	out := d.Clone()
	out[DocIDField] = id
	return out
}

// Fields returns a copy of the document without the reserved key field.
func (d Document) Fields() Document {
	out := d.Clone()
	delete(out, DocIDField)
	return out
}

// Clone returns a shallow copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
