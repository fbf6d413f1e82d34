// Package eeprom persists the generator seed and the ranked high-score table
// in a flat, byte-addressable storage device.
package eeprom

import (
	"fmt"
	"os"
)

// Device is a byte-addressable non-volatile store. Out-of-range reads return
// zero and out-of-range writes are dropped; neither faults.
type Device interface {
	// Size returns the addressable range in bytes.
	Size() int

	// ReadByte returns the byte at addr, or 0 when addr is out of range.
	ReadByte(addr int) byte

	// WriteByte stores b at addr; out-of-range addresses are ignored.
	WriteByte(addr int, b byte)

	// Flush commits pending writes to the backing medium.
	Flush() error
}

// MemDevice is an in-memory Device, used by tests and as a fallback when no
// image file is configured.
type MemDevice struct {
	data []byte
}

// NewMemDevice creates a zeroed in-memory device of the given size.
func NewMemDevice(size int) *MemDevice {
	return &MemDevice{data: make([]byte, size)}
}

func (d *MemDevice) Size() int { return len(d.data) }

func (d *MemDevice) ReadByte(addr int) byte {
	if addr < 0 || addr >= len(d.data) {
		return 0
	}
	return d.data[addr]
}

func (d *MemDevice) WriteByte(addr int, b byte) {
	if addr < 0 || addr >= len(d.data) {
		return
	}
	d.data[addr] = b
}

func (d *MemDevice) Flush() error { return nil }

// FileDevice is a Device backed by an image file on disk. The image is read
// fully at open; writes land in memory and reach disk on Flush.
type FileDevice struct {
	path  string
	data  []byte
	dirty bool
}

// OpenFileDevice opens (or creates, zero-filled) an image file of the given
// size. An existing image shorter than size is padded; a longer one keeps
// its extra bytes addressable.
func OpenFileDevice(path string, size int) (*FileDevice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read image %s: %w", path, err)
		}
		data = nil
	}
	if len(data) < size {
		data = append(data, make([]byte, size-len(data))...)
	}
	d := &FileDevice{path: path, data: data}
	if err := d.Flush(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *FileDevice) Size() int { return len(d.data) }

func (d *FileDevice) ReadByte(addr int) byte {
	if addr < 0 || addr >= len(d.data) {
		return 0
	}
	return d.data[addr]
}

func (d *FileDevice) WriteByte(addr int, b byte) {
	if addr < 0 || addr >= len(d.data) {
		return
	}
	d.data[addr] = b
	d.dirty = true
}

func (d *FileDevice) Flush() error {
	if err := os.WriteFile(d.path, d.data, 0o644); err != nil {
		return fmt.Errorf("write image %s: %w", d.path, err)
	}
	d.dirty = false
	return nil
}
