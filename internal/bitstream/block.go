package bitstream

import "github.com/orizon-lang/orizon-bc/internal/bcerrors"

const (
	minAbbrIDWidth = 2
	// abbrIndexOffset: the first four abbreviation ids are reserved
	// (END_BLOCK, ENTER_SUBBLOCK, DEFINE_ABBREV, UNABBREV_RECORD); user
	// abbreviations start at 4.
	abbrIndexOffset = 4
)

// AbbrEntry pairs a registered abbreviation with the block-local index it
// was assigned.
type AbbrEntry struct {
	Abbrev *Abbrev
	Index  uint32
}

// Block is the per-scope registry mapping abbreviation names to indices,
// and tracks the block-local abbreviation id width.
type Block struct {
	ID          uint32
	AbbrIDWidth uint32
	abbrevs     map[string]AbbrEntry
}

// NewBlock creates a Block and seeds it with globalAbbrs (e.g. those
// installed for this block id via BLOCKINFO), in order, so their indices
// start at 4.
func NewBlock(id uint32, abbrIDWidth uint32, globalAbbrs []*Abbrev) *Block {
	if abbrIDWidth < minAbbrIDWidth {
		bcerrors.Raise(bcerrors.AbbrevIDWidthTooSmall(abbrIDWidth))
	}

	b := &Block{ID: id, AbbrIDWidth: abbrIDWidth, abbrevs: make(map[string]AbbrEntry)}

	for _, a := range globalAbbrs {
		b.AddAbbrev(a)
	}

	return b
}

// AddAbbrev registers abbrev under its name, refusing duplicates, and
// returns the assigned index.
func (b *Block) AddAbbrev(abbrev *Abbrev) uint32 {
	if _, exists := b.abbrevs[abbrev.Name]; exists {
		bcerrors.Raise(bcerrors.DuplicateAbbrevName(abbrev.Name))
	}

	index := uint32(len(b.abbrevs)) + abbrIndexOffset
	b.abbrevs[abbrev.Name] = AbbrEntry{Abbrev: abbrev, Index: index}

	return index
}

// Lookup returns the entry registered under name, if any.
func (b *Block) Lookup(name string) (AbbrEntry, bool) {
	e, ok := b.abbrevs[name]
	return e, ok
}
