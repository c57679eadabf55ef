// Package timesum builds, persists, and serves the TimeSumIndex: the
// reverse map from time_sum to every (month, day, minute, second)
// quadruple that produces it. The index is built once offline, persisted
// as a bbolt database, and loaded read-only into memory — consumers
// never touch the file after Load returns.
package timesum

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"potanist/internal/potanisterr"
)

// Entry is one calendar moment sharing a time_sum.
type Entry struct {
	Month, Day, Minute, Second uint8
}

// Index is the immutable, in-memory reverse map. Zero value is not
// usable; construct via Load or Build.
type Index struct {
	byTimeSum map[uint16][]Entry
}

const bucketName = "time_sum"

// maxDay returns the maximum valid day for a given month, with leap
// years intentionally ignored (February is always capped at 28) per the
// governing specification.
func maxDay(month int) int {
	switch month {
	case 2:
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// Build enumerates every (month, day, minute, second) quadruple and
// groups it by time_sum = month*day + minute + second. This is the
// offline, build-time construction step; the running engine only calls
// Load.
func Build() *Index {
	idx := &Index{byTimeSum: make(map[uint16][]Entry)}
	for month := 1; month <= 12; month++ {
		md := maxDay(month)
		for day := 1; day <= md; day++ {
			for minute := 0; minute <= 59; minute++ {
				for second := 0; second <= 59; second++ {
					ts := uint16(month*day + minute + second)
					idx.byTimeSum[ts] = append(idx.byTimeSum[ts], Entry{
						Month:  uint8(month),
						Day:    uint8(day),
						Minute: uint8(minute),
						Second: uint8(second),
					})
				}
			}
		}
	}
	return idx
}

// Save persists the index to a bbolt database at path: one bucket,
// big-endian uint16 time_sum keys, values the concatenated 4-byte
// (month,day,minute,second) tuples for that key.
func Save(idx *Index, path string) error {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return fmt.Errorf("timesum: create %s: %w", path, err)
	}
	defer db.Close()

	return db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		for ts, entries := range idx.byTimeSum {
			key := make([]byte, 2)
			binary.BigEndian.PutUint16(key, ts)

			value := make([]byte, 0, len(entries)*4)
			for _, e := range entries {
				value = append(value, e.Month, e.Day, e.Minute, e.Second)
			}
			if err := b.Put(key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load opens the persisted artifact read-only and copies its contents
// into memory, then closes the file handle. A missing or undecodable
// artifact is engine-fatal per spec: it is wrapped as
// potanisterr.ErrIndexUnavailable / ErrIndexCorrupt.
func Load(path string) (*Index, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{ReadOnly: true})
	if err != nil {
		return nil, potanisterr.WrapIndexUnavailable(err)
	}
	defer db.Close()

	idx := &Index{byTimeSum: make(map[uint16][]Entry)}

	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucketName)
		}
		return b.ForEach(func(k, v []byte) error {
			if len(k) != 2 || len(v)%4 != 0 {
				return fmt.Errorf("malformed record for key %x (value len %d)", k, len(v))
			}
			ts := binary.BigEndian.Uint16(k)
			entries := make([]Entry, 0, len(v)/4)
			for i := 0; i+3 < len(v); i += 4 {
				entries = append(entries, Entry{
					Month:  v[i],
					Day:    v[i+1],
					Minute: v[i+2],
					Second: v[i+3],
				})
			}
			idx.byTimeSum[ts] = entries
			return nil
		})
	})
	if err != nil {
		return nil, potanisterr.WrapIndexCorrupt(err)
	}

	return idx, nil
}

// Lookup returns every (month, day, minute, second) quadruple sharing
// the given time_sum. Absence is not an error: callers get an empty,
// nil-safe slice.
func (idx *Index) Lookup(timeSum uint16) []Entry {
	return idx.byTimeSum[timeSum]
}

// Len reports how many distinct time_sum keys the index holds.
func (idx *Index) Len() int {
	return len(idx.byTimeSum)
}
