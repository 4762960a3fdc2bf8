package input

import "github.com/lixenwraith/block-miner/constants"

// DefaultCellKeys lays the 3x4 grid over the left hand, row by row
const DefaultCellKeys = "123qweasdzxc"

// KeyTable maps runes to grid cell indices
type KeyTable struct {
	cells map[rune]int
}

// NewKeyTable builds a table from a string of cell keys in index order
// Extra runes past constants.MaxBlocks are ignored
func NewKeyTable(keys string) *KeyTable {
	kt := &KeyTable{cells: make(map[rune]int, constants.MaxBlocks)}
	i := 0
	for _, r := range keys {
		if i >= constants.MaxBlocks {
			break
		}
		kt.cells[r] = i
		i++
	}
	return kt
}

// DefaultKeyTable returns the table for DefaultCellKeys
func DefaultKeyTable() *KeyTable {
	return NewKeyTable(DefaultCellKeys)
}

// Cell returns the cell index bound to r
func (kt *KeyTable) Cell(r rune) (int, bool) {
	i, ok := kt.cells[r]
	return i, ok
}
