// Binary encoding for lexicon blobs.
//
// The term table is stored in a compact binary layout; the transition edges
// use gob.
//
// Term table format (little-endian):
//
//	termCount: uint32
//	per term:
//	  termLen:   uint16
//	  term:      [termLen]byte
//	  slotCount: uint16
//	  slots:     [slotCount]× (present:uint8 + score:int64)
//
// Slot i holds the score for colour i. Terms are written in table order so the
// tokenizer's tie-breaking survives a round trip.
package bbolt

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"math"

	"github.com/corey/hue/internal/domain/lexicon"
)

// slotSize is the byte size of a single encoded colour slot.
const slotSize = 9

// encodeTerms encodes a term table. A single buffer is pre-allocated to
// avoid repeated growth.
func encodeTerms(table *lexicon.TermTable) ([]byte, error) {
	entries := table.Entries()

	// Header: 4 bytes (termCount)
	// Per term: 2 (termLen) + len(term) + 2 (slotCount) + slotCount*9
	totalSize := 4
	for _, e := range entries {
		totalSize += 2 + len(e.Term) + 2 + len(e.Scores)*slotSize
	}

	buf := make([]byte, totalSize)
	offset := 0

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(entries)))
	offset += 4

	for _, e := range entries {
		if len(e.Term) > math.MaxUint16 {
			return nil, fmt.Errorf("term too long: %d bytes", len(e.Term))
		}
		if len(e.Scores) > math.MaxUint16 {
			return nil, fmt.Errorf("term %q: too many colours: %d", e.Term, len(e.Scores))
		}
		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(e.Term)))
		offset += 2
		copy(buf[offset:], e.Term)
		offset += len(e.Term)

		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(e.Scores)))
		offset += 2
		for _, s := range e.Scores {
			v, ok := s.Get()
			if ok {
				buf[offset] = 1
			}
			binary.LittleEndian.PutUint64(buf[offset+1:], uint64(int64(v)))
			offset += slotSize
		}
	}

	return buf, nil
}

// decodeTerms decodes a term table. Every read is bounds-checked to avoid
// panics on corrupt data.
func decodeTerms(data []byte) (*lexicon.TermTable, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("term table too short: %d bytes", len(data))
	}

	offset := 0
	termCount := binary.LittleEndian.Uint32(data[offset:])
	offset += 4

	table := lexicon.NewTermTable()

	for i := uint32(0); i < termCount; i++ {
		if offset+2 > len(data) {
			return nil, fmt.Errorf("truncated at term %d length (offset %d)", i, offset)
		}
		termLen := int(binary.LittleEndian.Uint16(data[offset:]))
		offset += 2

		if offset+termLen > len(data) {
			return nil, fmt.Errorf("truncated at term %d (offset %d, need %d)", i, offset, termLen)
		}
		term := string(data[offset : offset+termLen])
		offset += termLen

		if offset+2 > len(data) {
			return nil, fmt.Errorf("truncated at term %d slot count (offset %d)", i, offset)
		}
		slotCount := int(binary.LittleEndian.Uint16(data[offset:]))
		offset += 2

		if offset+slotCount*slotSize > len(data) {
			return nil, fmt.Errorf("truncated at term %d slots (offset %d, need %d)", i, offset, slotCount*slotSize)
		}
		for c := 0; c < slotCount; c++ {
			present := data[offset] == 1
			score := int64(binary.LittleEndian.Uint64(data[offset+1:]))
			offset += slotSize
			if !present {
				continue
			}
			if err := table.Add(term, lexicon.Colour(c), int(score)); err != nil {
				return nil, fmt.Errorf("term %d: %w", i, err)
			}
		}
	}

	return table, nil
}

// encodeGob encodes a value using gob. Used for the transition edges, which
// are small and need no custom format.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob decodes gob-encoded data into target. Target must be a pointer.
func decodeGob(data []byte, target interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(target)
}
