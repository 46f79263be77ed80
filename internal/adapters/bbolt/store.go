// Package bbolt implements the ports.LexiconStore interface using bbolt
// (embedded B+ tree). All lexicons live under one top-level bucket; each
// lexicon gets a sub-bucket holding its term table, transition edges and a
// JSON summary. Writes are transactional; a crash mid-write cannot corrupt
// previously committed data.
package bbolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/corey/hue/internal/domain/lexicon"
	"github.com/corey/hue/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketLexicons = []byte("lexicons")
	keyTerms       = []byte("terms")
	keyTransitions = []byte("transitions")
	keyInfo        = []byte("info")
)

// ErrInvalidName is returned for an empty lexicon name.
var ErrInvalidName = errors.New("invalid lexicon name")

// Store implements ports.LexiconStore backed by bbolt.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveLexicon stores lex under name, replacing any previous lexicon.
func (s *Store) SaveLexicon(name string, lex *ports.Lexicon) error {
	if name == "" {
		return ErrInvalidName
	}
	if lex == nil || lex.Terms == nil {
		return fmt.Errorf("nil lexicon")
	}

	termsData, err := encodeTerms(lex.Terms)
	if err != nil {
		return fmt.Errorf("encode terms: %w", err)
	}
	var transData []byte
	if lex.Transitions != nil {
		transData, err = encodeGob(lex.Transitions.Edges())
		if err != nil {
			return fmt.Errorf("encode transitions: %w", err)
		}
	}
	info := ports.LexiconInfo{
		Name:        name,
		Terms:       lex.Terms.Len(),
		Transitions: lex.Transitions.Len(),
		HasTrans:    lex.Transitions != nil,
		SavedAt:     s.now().Unix(),
	}
	infoData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal info: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(bucketLexicons)
		if err != nil {
			return err
		}
		// Replace wholesale so a lexicon re-imported without transitions
		// does not keep the old ones.
		if err := root.DeleteBucket([]byte(name)); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		lb, err := root.CreateBucket([]byte(name))
		if err != nil {
			return err
		}
		if err := lb.Put(keyTerms, termsData); err != nil {
			return err
		}
		if transData != nil {
			if err := lb.Put(keyTransitions, transData); err != nil {
				return err
			}
		}
		return lb.Put(keyInfo, infoData)
	})
}

// LoadLexicon retrieves a stored lexicon.
// Returns nil, nil if no lexicon has that name.
func (s *Store) LoadLexicon(name string) (*ports.Lexicon, error) {
	var termsData, transData []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		lb := lexiconBucket(tx, name)
		if lb == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		termsData = copyBytes(lb.Get(keyTerms))
		transData = copyBytes(lb.Get(keyTransitions))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if termsData == nil {
		return nil, nil
	}

	terms, err := decodeTerms(termsData)
	if err != nil {
		return nil, fmt.Errorf("decode terms: %w", err)
	}
	lex := &ports.Lexicon{Terms: terms}

	if transData != nil {
		var edges []lexicon.Transition
		if err := decodeGob(transData, &edges); err != nil {
			return nil, fmt.Errorf("decode transitions: %w", err)
		}
		lex.Transitions = lexicon.NewTransitionTable()
		for _, e := range edges {
			lex.Transitions.Add(e.Prev, e.Colour, e.Score)
		}
	}

	return lex, nil
}

// ListLexicons returns a summary of every stored lexicon, sorted by name.
func (s *Store) ListLexicons() ([]ports.LexiconInfo, error) {
	var infos []ports.LexiconInfo

	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketLexicons)
		if root == nil {
			return nil
		}
		return root.ForEachBucket(func(k []byte) error {
			data := root.Bucket(k).Get(keyInfo)
			if data == nil {
				infos = append(infos, ports.LexiconInfo{Name: string(k)})
				return nil
			}
			var info ports.LexiconInfo
			if err := json.Unmarshal(data, &info); err != nil {
				return fmt.Errorf("unmarshal info for %q: %w", k, err)
			}
			infos = append(infos, info)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// DeleteLexicon removes a lexicon.
// Idempotent: deleting a nonexistent lexicon is not an error.
func (s *Store) DeleteLexicon(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketLexicons)
		if root == nil {
			return nil
		}
		if err := root.DeleteBucket([]byte(name)); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}

func lexiconBucket(tx *bolt.Tx, name string) *bolt.Bucket {
	root := tx.Bucket(bucketLexicons)
	if root == nil || name == "" {
		return nil
	}
	return root.Bucket([]byte(name))
}

func copyBytes(v []byte) []byte {
	if v == nil {
		return nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
