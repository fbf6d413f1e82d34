package symbol

// Arrow symbol values, shared with the input mappers.
const (
	ValueUp    = '^'
	ValueDown  = 'v'
	ValueLeft  = '<'
	ValueRight = '>'
)

// Arrows is the default four-symbol catalog: one arrow glyph per direction
// on the button matrix.
var Arrows = Catalog{
	newSymbol(ValueUp, [8]uint8{
		0x18, // ...##...
		0x3C, // ..####..
		0x7E, // .######.
		0xFF, // ########
		0x18, // ...##...
		0x18, // ...##...
		0x18, // ...##...
		0x18, // ...##...
	}),
	newSymbol(ValueDown, [8]uint8{
		0x18, // ...##...
		0x18, // ...##...
		0x18, // ...##...
		0x18, // ...##...
		0xFF, // ########
		0x7E, // .######.
		0x3C, // ..####..
		0x18, // ...##...
	}),
	newSymbol(ValueLeft, [8]uint8{
		0x10, // ...#....
		0x30, // ..##....
		0x7F, // .#######
		0xFF, // ########
		0x7F, // .#######
		0x30, // ..##....
		0x10, // ...#....
		0x00, // ........
	}),
	newSymbol(ValueRight, [8]uint8{
		0x08, // ....#...
		0x0C, // ....##..
		0xFE, // #######.
		0xFF, // ########
		0xFE, // #######.
		0x0C, // ....##..
		0x08, // ....#...
		0x00, // ........
	}),
}
