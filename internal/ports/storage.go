// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "github.com/corey/hue/internal/domain/lexicon"

// LexiconStore persists decoded tables under a name so they can be reused
// without re-reading the flat files. Solutions are never stored.
//
// Crash safety: SaveLexicon must be transactional. A crash mid-write must not
// corrupt previously committed lexicons.
type LexiconStore interface {
	// SaveLexicon stores lex under name, replacing any lexicon of that name.
	SaveLexicon(name string, lex *Lexicon) error

	// LoadLexicon retrieves a stored lexicon.
	// Returns nil, nil if no lexicon has that name.
	LoadLexicon(name string) (*Lexicon, error)

	// ListLexicons returns a summary of every stored lexicon, sorted by name.
	ListLexicons() ([]LexiconInfo, error)

	// DeleteLexicon removes a lexicon.
	// Idempotent: deleting a nonexistent lexicon is not an error.
	DeleteLexicon(name string) error
}

// Lexicon is a term table with an optional transition table.
type Lexicon struct {
	Terms       *lexicon.TermTable
	Transitions *lexicon.TransitionTable // nil when none was imported
}

// LexiconInfo summarizes a stored lexicon.
type LexiconInfo struct {
	Name        string `json:"name"`
	Terms       int    `json:"terms"`
	Transitions int    `json:"transitions"`
	HasTrans    bool   `json:"has_transitions"`
	SavedAt     int64  `json:"saved_at"` // unix seconds
}
