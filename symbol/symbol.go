package symbol

// TileID references a 4x4 glyph tile in the shared tile table.
type TileID uint8

// Tile is one 4x4 glyph quadrant, one byte per row with the low four bits
// holding pixels left to right.
type Tile [4]uint8

// Symbol is a renderable unit composed of four glyph tiles arranged 2x2
// (top-left, top-right, bottom-left, bottom-right) plus a single-character
// value used for comparison. Symbols are immutable once constructed.
type Symbol struct {
	Tiles [4]TileID
	Value rune
}

// Catalog is a fixed group of symbols a round draws from. Catalogs are
// package-level constants in spirit: built once, never mutated.
type Catalog []Symbol

// tileTable holds every registered glyph tile. Identical quadrants share an
// entry, so TileIDs stay within the uint8 range even with several catalogs.
var tileTable []Tile

// TileAt returns the tile for an id, or a blank tile for an unknown id.
func TileAt(id TileID) Tile {
	if int(id) >= len(tileTable) {
		return Tile{}
	}
	return tileTable[int(id)]
}

// registerTile interns a tile and returns its id.
func registerTile(t Tile) TileID {
	for i, existing := range tileTable {
		if existing == t {
			return TileID(i)
		}
	}
	tileTable = append(tileTable, t)
	return TileID(len(tileTable) - 1)
}

// newSymbol splits an 8x8 bitmap (one byte per row, bit 7 leftmost) into
// four quadrant tiles and registers them.
func newSymbol(value rune, bitmap [8]uint8) Symbol {
	var quads [4]Tile
	for row := 0; row < 4; row++ {
		quads[0][row] = bitmap[row] >> 4
		quads[1][row] = bitmap[row] & 0x0F
		quads[2][row] = bitmap[row+4] >> 4
		quads[3][row] = bitmap[row+4] & 0x0F
	}
	var s Symbol
	s.Value = value
	for i, q := range quads {
		s.Tiles[i] = registerTile(q)
	}
	return s
}

// Bitmap reassembles the symbol's four tiles into an 8x8 bitmap, one byte
// per row with bit 7 leftmost.
func (s Symbol) Bitmap() [8]uint8 {
	var out [8]uint8
	tl := TileAt(s.Tiles[0])
	tr := TileAt(s.Tiles[1])
	bl := TileAt(s.Tiles[2])
	br := TileAt(s.Tiles[3])
	for row := 0; row < 4; row++ {
		out[row] = tl[row]<<4 | tr[row]&0x0F
		out[row+4] = bl[row]<<4 | br[row]&0x0F
	}
	return out
}
