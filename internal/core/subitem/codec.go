// Package subitem contains the sub-item value type and its string codec.
// Sub-items are not first-class stored entities: each one is serialized to a
// single string and kept inside the owning item's sub_items sequence, with
// the sequence index as its display order. Both codec directions are total -
// malformed or legacy plain-text entries degrade, they never error.
package subitem

import (
	"encoding/json"
	"fmt"
	"time"
)

// SubItem is a lightweight checklist entry embedded within an item.
type SubItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Encode serializes a sub-item to its stored string form. Always succeeds:
// the struct has no unmarshalable fields, so the marshal error is impossible.
func Encode(s SubItem) string {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf(`{"id":%q,"text":"","completed":false}`, s.ID)
	}
	return string(data)
}

// Decode parses a stored string back into a sub-item. On any parse failure,
// or a parsed record missing its id, the whole string becomes the text of an
// unchecked sub-item with a synthesized id - legacy rows written before the
// structured form display as plain checklist entries instead of erroring.
func Decode(s string, fallbackIndex int) SubItem {
	var decoded SubItem
	if err := json.Unmarshal([]byte(s), &decoded); err != nil || decoded.ID == "" {
		return SubItem{
			ID:   fmt.Sprintf("sub-%d", fallbackIndex),
			Text: s,
		}
	}
	return decoded
}

// NewID synthesizes an id for a freshly created sub-item. Millisecond
// timestamps keep ids unique within an item at human input speed.
func NewID(now time.Time) string {
	return fmt.Sprintf("sub-%d", now.UnixMilli())
}
