package model

import "strings"

// History is the append-only transaction log of a single account. Entries are
// kept in insertion order and are never reordered or removed.
type History struct {
	records []string
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Record(line string) {
	h.records = append(h.records, line)
}

func (h *History) IsEmpty() bool {
	return len(h.records) == 0
}

func (h *History) Len() int {
	return len(h.records)
}

// Render joins the entries in insertion order, one per line. An empty history
// renders as the empty string; the display layer substitutes its own marker.
func (h *History) Render() string {
	if h.IsEmpty() {
		return ""
	}
	return strings.Join(h.records, "\n") + "\n"
}
