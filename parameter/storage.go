package parameter

// Persistent Layout
//
// The storage device is a flat byte address space. The seed sits at the base
// address; the high-score table follows immediately after it.
const (
	// StorageBase is the base address of the persistent footprint
	StorageBase = 0

	// SeedAddress is where the 4-byte little-endian seed lives
	SeedAddress = StorageBase

	// SeedSize is the width of the persisted seed in bytes
	SeedSize = 4

	// TableAddress is where the high-score table starts
	TableAddress = SeedAddress + SeedSize

	// TableEntries is the fixed number of high-score records
	TableEntries = 10

	// AliasLength is the number of printable alias characters per record
	AliasLength = 3

	// RecordSize is the serialized width of one high-score record:
	// 4-byte little-endian score + 3 alias bytes + 1 terminator
	RecordSize = 4 + AliasLength + 1

	// StorageFootprint is the total persistent footprint from StorageBase
	StorageFootprint = SeedSize + TableEntries*RecordSize
)
