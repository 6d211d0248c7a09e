// Package format implements the version-0 binary look-up-table file
// format: a JSON header followed by per-map key and value slabs, read
// and written big-endian throughout. The binary-search reader is
// grounded on the teacher's Polyglot opening-book reader
// (internal/book/book.go), generalized from Polyglot's flat 16-byte
// records to this format's variable-length header and multi-map slabs.
package format

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

const (
	magic          = "RGU"
	version        = 0
	keySizeBytes   = 4
	valueSizeBytes = 2
)

// ErrNotFound is returned by Lookup when the key is absent from the
// requested map after a binary search — the "NotFound" error kind named
// in the error handling design.
var ErrNotFound = fmt.Errorf("key not found in look-up table")

// Table is a parsed LUT file: a sorted keys slab and a parallel values
// slab per map, held in memory as two contiguous byte slices (structure
// of arrays) for cache-friendly binary search on keys and O(1) value
// indexing after a hit. Read-only and safe for concurrent use by
// multiple goroutines once constructed.
type Table struct {
	header   json.RawMessage
	mapSizes []int32
	keys     []byte
	values   []byte
}

// Header returns the raw JSON header bytes, opaque to this package.
func (t *Table) Header() json.RawMessage { return t.header }

// NumMaps returns the number of maps stored in the table.
func (t *Table) NumMaps() int { return len(t.mapSizes) }

// MapSize returns the number of entries in map i.
func (t *Table) MapSize(i int) int { return int(t.mapSizes[i]) }

func (t *Table) mapOffset(mapIndex int) int64 {
	var offset int64
	for i := 0; i < mapIndex; i++ {
		offset += int64(t.mapSizes[i])
	}
	return offset
}

func (t *Table) keyAt(mapIndex int, index int64) uint32 {
	off := (t.mapOffset(mapIndex) + index) * keySizeBytes
	return binary.BigEndian.Uint32(t.keys[off : off+keySizeBytes])
}

func (t *Table) valueAt(mapIndex int, index int64) uint16 {
	off := (t.mapOffset(mapIndex) + index) * valueSizeBytes
	return binary.BigEndian.Uint16(t.values[off : off+valueSizeBytes])
}

// Lookup binary-searches map mapIndex for key, matching the file-format
// contract in spec section 6.1: keys within a map are sorted ascending.
// A miss returns ErrNotFound.
func (t *Table) Lookup(mapIndex int, key uint32) (uint16, error) {
	if mapIndex < 0 || mapIndex >= len(t.mapSizes) {
		return 0, fmt.Errorf("map index %d out of range [0, %d)", mapIndex, len(t.mapSizes))
	}

	size := int64(t.mapSizes[mapIndex])
	low, high := int64(0), size-1
	for low <= high {
		mid := (low + high) / 2
		midKey := t.keyAt(mapIndex, mid)
		switch {
		case midKey == key:
			return t.valueAt(mapIndex, mid), nil
		case midKey < key:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return 0, fmt.Errorf("%w: key %d in map %d", ErrNotFound, key, mapIndex)
}

// Load reads and fully parses a LUT file from path before returning any
// handle, matching the error-handling design's requirement that partial
// reads never leak a usable Table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening LUT file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a LUT file from an io.Reader, matching
// internal/book/book.go's LoadPolyglotReader shape: load the whole
// structure into memory, validating each fixed-size field as it goes.
func Read(r io.Reader) (*Table, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading LUT file: %w", err)
	}

	if len(contents) < 8 {
		return nil, fmt.Errorf("truncated LUT file: shorter than the fixed header")
	}
	if string(contents[0:3]) != magic {
		return nil, fmt.Errorf("invalid magic number %q, expected %q", contents[0:3], magic)
	}
	if contents[3] != version {
		return nil, fmt.Errorf("unsupported LUT version %d, only version 0 is implemented", contents[3])
	}

	headerLength := int32(binary.BigEndian.Uint32(contents[4:8]))
	if headerLength < 0 {
		return nil, fmt.Errorf("negative JSON header length %d", headerLength)
	}
	headerEnd := 8 + int(headerLength)
	if headerEnd+4 > len(contents) {
		return nil, fmt.Errorf("truncated LUT file: header extends past end of file")
	}
	header := json.RawMessage(contents[8:headerEnd])

	numMaps := int32(binary.BigEndian.Uint32(contents[headerEnd : headerEnd+4]))
	if numMaps < 0 {
		return nil, fmt.Errorf("negative map count %d", numMaps)
	}
	startOfMapSizes := headerEnd + 4
	mapSizesEnd := startOfMapSizes + 4*int(numMaps)
	if mapSizesEnd > len(contents) {
		return nil, fmt.Errorf("truncated LUT file: map size table extends past end of file")
	}

	mapSizes := make([]int32, numMaps)
	sumOfMapSizes := int64(0)
	for i := 0; i < int(numMaps); i++ {
		off := startOfMapSizes + 4*i
		size := int32(binary.BigEndian.Uint32(contents[off : off+4]))
		if size < 0 {
			return nil, fmt.Errorf("negative map size %d for map %d", size, i)
		}
		mapSizes[i] = size
		sumOfMapSizes += int64(size)
	}

	keysStart := mapSizesEnd
	keysEnd := keysStart + int(sumOfMapSizes)*keySizeBytes
	valuesEnd := keysEnd + int(sumOfMapSizes)*valueSizeBytes
	if valuesEnd > len(contents) {
		return nil, fmt.Errorf("truncated LUT file: keys/values slabs extend past end of file")
	}

	return &Table{
		header:   header,
		mapSizes: mapSizes,
		keys:     contents[keysStart:keysEnd],
		values:   contents[keysEnd:valuesEnd],
	}, nil
}

// Bytes reconstructs the exact version-0 binary encoding of t from its
// already-parsed fields. Used by internal/storage to persist a parsed
// Table into the LUT cache without re-deriving the file format's
// framing from scratch.
func (t *Table) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(version)

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(t.header)))
	buf.Write(lenBuf[:])
	buf.Write(t.header)

	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(t.mapSizes)))
	buf.Write(lenBuf[:])
	for _, size := range t.mapSizes {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(size))
		buf.Write(lenBuf[:])
	}

	buf.Write(t.keys)
	buf.Write(t.values)
	return buf.Bytes()
}

// MapData is one map's worth of key/value pairs, supplied to Write in
// ascending key order.
type MapData struct {
	Keys   []uint32
	Values []uint16
}

// Write serialises maps into the version-0 binary format, using header
// as the opaque JSON metadata blob. Each map's keys MUST already be
// sorted ascending; Write does not sort them, matching the reader's
// contract that binary search assumes pre-sorted keys.
func Write(w io.Writer, header any, maps []MapData) error {
	headerBytes, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("marshaling LUT header: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(version)

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(headerBytes)))
	buf.Write(lenBuf[:])
	buf.Write(headerBytes)

	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(maps)))
	buf.Write(lenBuf[:])

	for _, m := range maps {
		if len(m.Keys) != len(m.Values) {
			return fmt.Errorf("map has %d keys but %d values", len(m.Keys), len(m.Values))
		}
		if !sort.SliceIsSorted(m.Keys, func(i, j int) bool { return m.Keys[i] < m.Keys[j] }) {
			return fmt.Errorf("map keys must be sorted ascending")
		}
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(m.Keys)))
		buf.Write(lenBuf[:])
	}

	var keyBuf [keySizeBytes]byte
	for _, m := range maps {
		for _, k := range m.Keys {
			binary.BigEndian.PutUint32(keyBuf[:], k)
			buf.Write(keyBuf[:])
		}
	}

	var valueBuf [valueSizeBytes]byte
	for _, m := range maps {
		for _, v := range m.Values {
			binary.BigEndian.PutUint16(valueBuf[:], v)
			buf.Write(valueBuf[:])
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// WriteFile is Write targeting a file path, truncating/creating it.
func WriteFile(path string, header any, maps []MapData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating LUT file: %w", err)
	}
	defer f.Close()
	return Write(f, header, maps)
}
