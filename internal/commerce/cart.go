package commerce

import (
	"encoding/json"
	"strings"
)

// CartItem is the canonical cart entry. A course appears at most once; Qty
// is kept for display but checkout treats ownership as a set.
type CartItem struct {
	CourseID string `json:"course_id"`
	Qty      int    `json:"qty"`
}

// DecodeCartItems parses a persisted cart blob. Two legacy shapes are
// accepted besides the canonical one: a bare array of id strings, and
// entries keyed "id" instead of "course_id". Duplicates collapse with
// their quantities summed, blank ids are dropped, and anything unparsable
// reads as an empty cart. Decoding never fails.
func DecodeCartItems(raw []byte) []CartItem {
	if len(raw) == 0 {
		return []CartItem{}
	}

	var loose []json.RawMessage
	if err := json.Unmarshal(raw, &loose); err != nil {
		return []CartItem{}
	}

	items := make([]CartItem, 0, len(loose))
	for _, el := range loose {
		var id string
		if err := json.Unmarshal(el, &id); err == nil {
			items = append(items, CartItem{CourseID: id, Qty: 1})
			continue
		}

		var entry struct {
			CourseID string `json:"course_id"`
			ID       string `json:"id"`
			Qty      int    `json:"qty"`
		}
		if err := json.Unmarshal(el, &entry); err != nil {
			continue
		}
		if entry.CourseID == "" {
			entry.CourseID = entry.ID
		}
		if entry.Qty < 1 {
			entry.Qty = 1
		}
		items = append(items, CartItem{CourseID: entry.CourseID, Qty: entry.Qty})
	}

	return normalizeItems(items)
}

func EncodeCartItems(items []CartItem) []byte {
	b, err := json.Marshal(normalizeItems(items))
	if err != nil {
		return []byte("[]")
	}
	return b
}

// normalizeItems enforces the one-entry-per-course invariant, preserving
// first-seen order.
func normalizeItems(in []CartItem) []CartItem {
	out := make([]CartItem, 0, len(in))
	index := make(map[string]int, len(in))

	for _, it := range in {
		id := strings.TrimSpace(it.CourseID)
		if id == "" {
			continue
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}

		if pos, ok := index[id]; ok {
			out[pos].Qty += qty
			continue
		}
		index[id] = len(out)
		out = append(out, CartItem{CourseID: id, Qty: qty})
	}

	return out
}
