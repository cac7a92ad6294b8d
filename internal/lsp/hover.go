package lsp

import (
	"sync/atomic"

	"github.com/corelang/funl/internal/langerr"
)

// HoverEntry pairs a source range with the label to display when the
// cursor falls inside it. DefinitionURI/DefinitionRange are an optional
// per-range payload the definition feature needs that plain hovering does
// not: when DefinitionURI is empty, textDocument/definition treats this
// entry as having no known declaration site.
type HoverEntry struct {
	Range           langerr.Range
	Label           string
	DefinitionURI   string
	DefinitionRange langerr.Range
}

type hoverKey struct {
	uri     string
	version int
}

// hoverSnapshot is the immutable map a single atomic.Pointer swap
// publishes wholesale — a simplified, copy-on-write adaptation of the
// teacher's persistent HAMT (internal/evaluator/persistent_map.go),
// scaled down to this index's single bulk-replace access pattern
// instead of a general persistent-map API.
type hoverSnapshot map[hoverKey][]HoverEntry

// HoverIndex is the keyed-by-(uri,version) hover map of spec.md §4.5,
// §9: "a persistent map under a single atomic cell is sufficient."
// lruCap, if > 0, bounds the number of distinct (uri, version) entries
// retained, evicting the oldest-inserted key first — an optional bound
// per spec.md §9's open question; correctness does not require it.
type HoverIndex struct {
	cur    atomic.Pointer[hoverSnapshot]
	lruCap int

	// order tracks insertion order of keys for the optional LRU bound.
	// Only ever touched from inside Replace's CAS loop.
	order []hoverKey
}

// NewHoverIndex creates an empty index. lruCap <= 0 means unbounded.
func NewHoverIndex(lruCap int) *HoverIndex {
	h := &HoverIndex{lruCap: lruCap}
	empty := make(hoverSnapshot)
	h.cur.Store(&empty)
	return h
}

// Replace atomically swaps in the hover entries for (uri, version),
// compare-and-setting against whatever snapshot is currently published
// so concurrent readers never observe a partially updated map.
func (h *HoverIndex) Replace(uri string, version int, entries []HoverEntry) {
	key := hoverKey{uri: uri, version: version}
	for {
		old := h.cur.Load()
		next := make(hoverSnapshot, len(*old)+1)
		for k, v := range *old {
			next[k] = v
		}
		next[key] = entries
		h.order = append(h.order, key)
		h.evictIfNeeded(next)
		if h.cur.CompareAndSwap(old, &next) {
			return
		}
	}
}

func (h *HoverIndex) evictIfNeeded(m hoverSnapshot) {
	if h.lruCap <= 0 {
		return
	}
	for len(m) > h.lruCap && len(h.order) > 0 {
		oldest := h.order[0]
		h.order = h.order[1:]
		delete(m, oldest)
	}
}

// Query returns the smallest range containing pos among the ranges
// stored for (uri, version), per spec.md §4.5's findSmallest fold: among
// ranges containing the cursor, the smaller (more nested) range wins;
// equal ranges break the tie in favor of the entry occurring later.
func (h *HoverIndex) Query(uri string, version int, pos langerr.Position) (HoverEntry, bool) {
	snap := *h.cur.Load()
	entries := snap[hoverKey{uri: uri, version: version}]

	var winner *HoverEntry
	for i := range entries {
		cand := &entries[i]
		if !cand.Range.Contains(pos) {
			continue
		}
		if winner == nil {
			winner = cand
			continue
		}
		if winner.Range.ContainsRange(cand.Range) {
			winner = cand
		}
	}
	if winner == nil {
		return HoverEntry{}, false
	}
	return *winner, true
}
