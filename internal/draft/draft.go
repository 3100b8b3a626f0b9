// Package draft orchestrates the admin product-authoring form: one
// in-progress ProductDraft with independently growable lists of
// attributes, variants and media slots. Rows are addressed by stable
// per-row ids rather than positional indices, so removing a row never
// corrupts in-flight edits or async upload callbacks targeting its
// siblings.
package draft

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shariarfaisal/snapshop/internal/models"
)

// AttributeRow is one key/value attribute entry.
type AttributeRow struct {
	ID    uuid.UUID
	Key   string
	Value string
}

// VariantRow is one variant entry. Numeric fields hold the raw text
// the user typed; coercion happens at validation time.
type VariantRow struct {
	ID         uuid.UUID
	Name       string
	Price      string
	Stock      string
	Attributes map[string]string
	SKU        string
}

// MediaState tracks a media slot through its upload lifecycle.
type MediaState string

const (
	MediaEmpty     MediaState = "empty"
	MediaUploading MediaState = "uploading"
	MediaUploaded  MediaState = "uploaded"
	MediaErrored   MediaState = "errored"
)

// MediaRow is one media slot. Progress and error state belong to this
// slot alone; no other slot's upload can touch them.
type MediaRow struct {
	ID         uuid.UUID
	State      MediaState
	FileName   string
	FileSize   int64
	MIMEFamily string // image, video or other; drives the pending icon
	Progress   int    // 0–100
	URL        string
	Type       models.MediaType
	Err        string
}

// Draft is one in-progress product form. It is destroyed on successful
// submission or explicit discard.
type Draft struct {
	mu sync.Mutex

	ID          uuid.UUID
	Name        string
	Description string
	BasePrice   string
	Stock       string

	attributes []AttributeRow
	variants   []VariantRow
	media      []MediaRow

	fieldErrors map[string]string
}

func New() *Draft {
	return &Draft{
		ID:          uuid.New(),
		fieldErrors: map[string]string{},
	}
}

// SetFields updates the scalar form fields.
func (d *Draft) SetFields(name, description, basePrice, stock string) {
	d.mu.Lock()
	d.Name = name
	d.Description = description
	d.BasePrice = basePrice
	d.Stock = stock
	d.mu.Unlock()
}

// AddAttribute appends an empty attribute row and returns its id.
func (d *Draft) AddAttribute() uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	row := AttributeRow{ID: uuid.New()}
	d.attributes = append(d.attributes, row)
	return row.ID
}

// UpdateAttribute edits a row in place; unknown ids are ignored.
func (d *Draft) UpdateAttribute(id uuid.UUID, key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.attributes {
		if d.attributes[i].ID == id {
			d.attributes[i].Key = key
			d.attributes[i].Value = value
			return
		}
	}
}

// RemoveAttribute deletes a row. Later rows shift position but keep
// their ids, so edits in flight on them are unaffected.
func (d *Draft) RemoveAttribute(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.attributes {
		if d.attributes[i].ID == id {
			d.attributes = append(d.attributes[:i], d.attributes[i+1:]...)
			return
		}
	}
}

// Attributes returns the rows in display order.
func (d *Draft) Attributes() []AttributeRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]AttributeRow, len(d.attributes))
	copy(out, d.attributes)
	return out
}

// AddVariant appends an empty variant row and returns its id.
func (d *Draft) AddVariant() uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	row := VariantRow{ID: uuid.New(), Price: "0", Stock: "0"}
	d.variants = append(d.variants, row)
	return row.ID
}

// UpdateVariant edits a row in place; unknown ids are ignored.
func (d *Draft) UpdateVariant(id uuid.UUID, update VariantRow) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.variants {
		if d.variants[i].ID == id {
			update.ID = id
			d.variants[i] = update
			return
		}
	}
}

// RemoveVariant deletes a row.
func (d *Draft) RemoveVariant(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.variants {
		if d.variants[i].ID == id {
			d.variants = append(d.variants[:i], d.variants[i+1:]...)
			return
		}
	}
}

// Variants returns the rows in display order.
func (d *Draft) Variants() []VariantRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]VariantRow, len(d.variants))
	copy(out, d.variants)
	return out
}

// AddMedia appends an empty media slot and returns its id.
func (d *Draft) AddMedia() uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	row := MediaRow{ID: uuid.New(), State: MediaEmpty, Type: models.MediaTypeImage}
	d.media = append(d.media, row)
	return row.ID
}

// RemoveMedia deletes a slot. Removal is allowed in any state,
// including mid-upload; the in-flight upload's eventual result is then
// discarded by the existence guard in uploadSlot.
func (d *Draft) RemoveMedia(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.media {
		if d.media[i].ID == id {
			d.media = append(d.media[:i], d.media[i+1:]...)
			return
		}
	}
}

// Media returns the slots in display order.
func (d *Draft) Media() []MediaRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]MediaRow, len(d.media))
	copy(out, d.media)
	return out
}

// MediaSlot returns one slot by id.
func (d *Draft) MediaSlot(id uuid.UUID) (MediaRow, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i := d.mediaIndexLocked(id); i >= 0 {
		return d.media[i], true
	}
	return MediaRow{}, false
}

// mediaIndexLocked is the existence guard async callbacks check before
// writing back. Callers must hold d.mu.
func (d *Draft) mediaIndexLocked(id uuid.UUID) int {
	for i := range d.media {
		if d.media[i].ID == id {
			return i
		}
	}
	return -1
}

// FieldErrors returns the current field-scoped error messages keyed by
// dotted path.
func (d *Draft) FieldErrors() map[string]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[string]string, len(d.fieldErrors))
	for k, v := range d.fieldErrors {
		out[k] = v
	}
	return out
}

// FieldError returns the error message for one path, if any.
func (d *Draft) FieldError(path string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fieldErrors[path]
}

// ClearErrors drops all field errors.
func (d *Draft) ClearErrors() {
	d.mu.Lock()
	d.fieldErrors = map[string]string{}
	d.mu.Unlock()
}

// Reset returns the draft to its initial empty state, as after a
// successful submission.
func (d *Draft) Reset() {
	d.mu.Lock()
	d.Name = ""
	d.Description = ""
	d.BasePrice = ""
	d.Stock = ""
	d.attributes = nil
	d.variants = nil
	d.media = nil
	d.fieldErrors = map[string]string{}
	d.mu.Unlock()
}
