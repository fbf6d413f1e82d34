package eeprom

import (
	"github.com/josephtungate/mesmerise/parameter"
)

// HighScore is one ranked table entry: a score and a fixed-length alias of
// three printable characters plus a NUL terminator.
type HighScore struct {
	Score uint32
	Alias [parameter.AliasLength + 1]byte
}

// NewHighScore builds an entry from a score and an alias string. The alias
// is truncated or padded to exactly three characters; non-printable bytes
// become '-'.
func NewHighScore(score uint32, alias string) HighScore {
	e := HighScore{Score: score}
	for i := 0; i < parameter.AliasLength; i++ {
		c := byte('-')
		if i < len(alias) {
			c = alias[i]
			if c < 0x20 || c > 0x7E {
				c = '-'
			}
		}
		e.Alias[i] = c
	}
	return e
}

// AliasString returns the alias without the terminator.
func (e HighScore) AliasString() string {
	return string(e.Alias[:parameter.AliasLength])
}

// Store reads and writes the persistent footprint: a 4-byte little-endian
// seed at the base address followed by ten fixed-width high-score records.
type Store struct {
	dev Device
}

// NewStore wraps a device. The device should span at least
// parameter.StorageFootprint bytes; shorter devices degrade to the device's
// own out-of-range no-op behavior.
func NewStore(dev Device) *Store {
	return &Store{dev: dev}
}

// readUint32 assembles a little-endian word one byte at a time.
func (s *Store) readUint32(addr int) uint32 {
	var v uint32
	for i := 0; i < 4; i++ {
		v |= uint32(s.dev.ReadByte(addr+i)) << (8 * i)
	}
	return v
}

// writeUint32 stores a little-endian word one byte at a time.
func (s *Store) writeUint32(addr int, v uint32) {
	for i := 0; i < 4; i++ {
		s.dev.WriteByte(addr+i, byte(v>>(8*i)))
	}
}

// ReadSeed returns the persisted generator seed. Read once at boot.
func (s *Store) ReadSeed() uint32 {
	return s.readUint32(parameter.SeedAddress)
}

// WriteSeed persists a freshly drawn seed. Called once per completed game so
// the next power cycle starts from a different generator state.
func (s *Store) WriteSeed(seed uint32) error {
	s.writeUint32(parameter.SeedAddress, seed)
	return s.dev.Flush()
}

// recordAddress returns the base address of table slot i.
func recordAddress(i int) int {
	return parameter.TableAddress + i*parameter.RecordSize
}

// readRecord deserializes table slot i.
func (s *Store) readRecord(i int) HighScore {
	addr := recordAddress(i)
	var e HighScore
	e.Score = s.readUint32(addr)
	for j := 0; j <= parameter.AliasLength; j++ {
		e.Alias[j] = s.dev.ReadByte(addr + 4 + j)
	}
	return e
}

// writeRecord serializes table slot i. The terminator byte is always
// written as NUL regardless of the in-memory value.
func (s *Store) writeRecord(i int, e HighScore) {
	addr := recordAddress(i)
	s.writeUint32(addr, e.Score)
	for j := 0; j < parameter.AliasLength; j++ {
		s.dev.WriteByte(addr+4+j, e.Alias[j])
	}
	s.dev.WriteByte(addr+4+parameter.AliasLength, 0)
}

// ReadHighScoreTable deserializes all ten records in rank order.
func (s *Store) ReadHighScoreTable() [parameter.TableEntries]HighScore {
	var table [parameter.TableEntries]HighScore
	for i := range table {
		table[i] = s.readRecord(i)
	}
	return table
}

// IsHighScore reports whether score would enter the table: it must strictly
// exceed the lowest (last) entry. A tie with tenth place does not qualify.
func (s *Store) IsHighScore(score uint32) bool {
	last := s.readRecord(parameter.TableEntries - 1)
	return score > last.Score
}

// AddHighScore inserts a qualifying entry by overwriting the lowest-ranked
// slot and re-sorting the table, then rewrites all ten records. Returns
// false when the score does not qualify.
func (s *Store) AddHighScore(e HighScore) (bool, error) {
	if !s.IsHighScore(e.Score) {
		return false, nil
	}
	table := s.ReadHighScoreTable()
	table[parameter.TableEntries-1] = e
	sortTable(&table)
	for i, rec := range table {
		s.writeRecord(i, rec)
	}
	return true, s.dev.Flush()
}

// sortTable orders records by score, descending. Selection sort, stable:
// over ten fixed slots the asymptotic cost is irrelevant and the code stays
// obvious.
func sortTable(table *[parameter.TableEntries]HighScore) {
	for i := 0; i < len(table)-1; i++ {
		best := i
		for j := i + 1; j < len(table); j++ {
			if table[j].Score > table[best].Score {
				best = j
			}
		}
		if best != i {
			picked := table[best]
			copy(table[i+1:best+1], table[i:best])
			table[i] = picked
		}
	}
}

// InitialiseTable resets all ten records to a descending dummy ladder. This
// is an explicit, user-triggered reset, never run automatically.
func (s *Store) InitialiseTable() error {
	for i := 0; i < parameter.TableEntries; i++ {
		dummy := NewHighScore(uint32(parameter.TableEntries-i)*100, "---")
		s.writeRecord(i, dummy)
	}
	return s.dev.Flush()
}
