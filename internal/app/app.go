// Package app wires together all adapters and domain logic.
// It loads inputs from flat files or the lexicon store, tokenizes, runs the
// selected optimizer and hands results back to the command layer.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/corey/hue/internal/adapters/ahocorasick"
	"github.com/corey/hue/internal/adapters/bbolt"
	"github.com/corey/hue/internal/adapters/flatfile"
	"github.com/corey/hue/internal/domain/lexicon"
	"github.com/corey/hue/internal/domain/solver"
	"github.com/corey/hue/internal/domain/tokenize"
	"github.com/corey/hue/internal/log"
	"github.com/corey/hue/internal/ports"
)

var (
	// ErrLexiconNotFound is returned when a named lexicon is not in the store.
	ErrLexiconNotFound = errors.New("lexicon not found")

	// ErrNoTables is returned when neither a term file nor a lexicon is given.
	ErrNoTables = errors.New("no term table: pass a terms file or --lexicon")
)

// App is the top-level container wiring all components together.
type App struct {
	Paths    *Paths
	Settings Settings
	RunID    string
	DBPath   string

	log *log.Logger

	storeMu   sync.Mutex
	store     ports.LexiconStore
	closer    func() error
	openStore func() (ports.LexiconStore, func() error, error)
}

// Config holds initialization parameters for the App.
type Config struct {
	ProjectRoot string
	DBPath      string             // path to bbolt file (default: .hue/hue.db)
	Settings    *Settings          // nil = load .hue/config.yaml
	Store       ports.LexiconStore // optional: replaces the bbolt store
	Logger      *log.Logger        // nil = log.L
}

// New creates an App. The store is opened on first use so commands that only
// read flat files never take the database lock.
func New(cfg Config) (*App, error) {
	if cfg.ProjectRoot == "" {
		return nil, fmt.Errorf("project root required")
	}
	paths := NewPaths(cfg.ProjectRoot)
	if cfg.DBPath == "" {
		cfg.DBPath = paths.DB
	}

	var settings Settings
	if cfg.Settings != nil {
		settings = *cfg.Settings
		if err := settings.Validate(); err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
	} else {
		s, err := LoadSettings(paths.Config)
		if err != nil {
			return nil, err
		}
		settings = s
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.L
	}
	runID := uuid.NewString()

	a := &App{
		Paths:    paths,
		Settings: settings,
		RunID:    runID,
		DBPath:   cfg.DBPath,
		log:      logger.WithRun(runID),
	}
	if cfg.Store != nil {
		a.store = cfg.Store
	} else {
		a.openStore = func() (ports.LexiconStore, func() error, error) {
			if err := os.MkdirAll(filepath.Dir(a.DBPath), 0755); err != nil {
				return nil, nil, fmt.Errorf("create %s: %w", filepath.Dir(a.DBPath), err)
			}
			s, err := bbolt.NewStore(a.DBPath)
			if err != nil {
				return nil, nil, fmt.Errorf("open store: %w", err)
			}
			return s, s.Close, nil
		}
	}
	return a, nil
}

// Close releases the store if it was opened.
func (a *App) Close() error {
	a.storeMu.Lock()
	defer a.storeMu.Unlock()
	if a.closer == nil {
		return nil
	}
	err := a.closer()
	a.closer = nil
	a.store = nil
	return err
}

// Store returns the lexicon store, opening it on first use.
func (a *App) Store() (ports.LexiconStore, error) {
	a.storeMu.Lock()
	defer a.storeMu.Unlock()
	if a.store != nil {
		return a.store, nil
	}
	s, closer, err := a.openStore()
	if err != nil {
		return nil, err
	}
	a.store, a.closer = s, closer
	return s, nil
}

// Inputs names where a run's text and tables come from. Lexicon, when set,
// replaces TermsPath and TransitionsPath.
type Inputs struct {
	TextPath        string
	TermsPath       string
	TransitionsPath string
	Lexicon         string
}

// Files returns the input files a watch should follow.
func (in Inputs) Files() []string {
	files := []string{in.TextPath}
	if in.Lexicon != "" {
		return files
	}
	if in.TermsPath != "" {
		files = append(files, in.TermsPath)
	}
	if in.TransitionsPath != "" {
		files = append(files, in.TransitionsPath)
	}
	return files
}

// LoadTables reads the term and transition tables named by in. Transitions
// are nil when none were given.
func (a *App) LoadTables(in Inputs) (*ports.Lexicon, error) {
	if in.Lexicon != "" {
		store, err := a.Store()
		if err != nil {
			return nil, err
		}
		lex, err := store.LoadLexicon(in.Lexicon)
		if err != nil {
			return nil, fmt.Errorf("load lexicon %q: %w", in.Lexicon, err)
		}
		if lex == nil {
			return nil, fmt.Errorf("%w: %q", ErrLexiconNotFound, in.Lexicon)
		}
		a.log.Loaded("lexicon:"+in.Lexicon, lex.Terms.Len(), lex.Transitions.Len())
		return lex, nil
	}

	if in.TermsPath == "" {
		return nil, ErrNoTables
	}
	terms, err := flatfile.LoadTerms(in.TermsPath)
	if err != nil {
		return nil, err
	}
	lex := &ports.Lexicon{Terms: terms}
	if in.TransitionsPath != "" {
		lex.Transitions, err = flatfile.LoadTransitions(in.TransitionsPath)
		if err != nil {
			return nil, err
		}
	}
	a.log.Loaded("files", lex.Terms.Len(), lex.Transitions.Len())
	return lex, nil
}

// NewScanner returns the term scanner named by the settings.
func (a *App) NewScanner() ports.TermScanner {
	if a.Settings.Scanner == ScannerLinear {
		return &tokenize.LinearScanner{}
	}
	return &ahocorasick.Scanner{}
}

// Tokenizer builds a tokenizer for terms with the configured scanner.
func (a *App) Tokenizer(terms *lexicon.TermTable) (*tokenize.Tokenizer, error) {
	tok, err := tokenize.ForTable(terms, a.NewScanner())
	if err != nil {
		return nil, fmt.Errorf("build %s scanner: %w", a.Settings.Scanner, err)
	}
	return tok, nil
}

// Tokens loads the inputs and returns the token sequence of the text.
func (a *App) Tokens(in Inputs) ([]string, error) {
	text, err := flatfile.LoadText(in.TextPath)
	if err != nil {
		return nil, err
	}
	lex, err := a.LoadTables(in)
	if err != nil {
		return nil, err
	}
	tok, err := a.Tokenizer(lex.Terms)
	if err != nil {
		return nil, err
	}
	tokens := tok.Tokenize(text)
	a.log.Tokenized(len(text), len(tokens), a.Settings.Scanner)
	return tokens, nil
}

// Result is one solved run.
type Result struct {
	Problem  *solver.Problem
	Solution solver.Solution
}

// Problem loads the inputs and assembles a problem for variant v.
func (a *App) Problem(v solver.Variant, in Inputs) (*solver.Problem, error) {
	text, err := flatfile.LoadText(in.TextPath)
	if err != nil {
		return nil, err
	}
	lex, err := a.LoadTables(in)
	if err != nil {
		return nil, err
	}
	tok, err := a.Tokenizer(lex.Terms)
	if err != nil {
		return nil, err
	}
	p, err := solver.NewProblem(v, text, tok, lex.Terms, lex.Transitions)
	if err != nil {
		return nil, err
	}
	a.log.Tokenized(len(text), len(p.Tokens), a.Settings.Scanner)
	return p, nil
}

// Solve runs variant v over the inputs.
func (a *App) Solve(v solver.Variant, in Inputs) (*Result, error) {
	p, err := a.Problem(v, in)
	if err != nil {
		return nil, err
	}
	sol, err := solver.Solve(p)
	if err != nil {
		return nil, err
	}
	var score *int
	if s, ok := sol.Score.Get(); ok {
		score = &s
	}
	a.log.Solved(v.String(), len(p.Tokens), score)
	return &Result{Problem: p, Solution: sol}, nil
}

// CheckResult compares the DP optimum with exhaustive search.
type CheckResult struct {
	Tokens     []string
	DP         lexicon.Score
	Exhaustive lexicon.Score
	Best       []lexicon.Colour // nil when no colouring is feasible
}

// Agree reports whether both searches found the same optimum.
func (r *CheckResult) Agree() bool {
	return r.DP == r.Exhaustive
}

// Check solves the inputs with variant E and with exhaustive search.
func (a *App) Check(in Inputs) (*CheckResult, error) {
	p, err := a.Problem(solver.VariantE, in)
	if err != nil {
		return nil, err
	}
	dp, err := solver.Solve(p)
	if err != nil {
		return nil, err
	}
	ex, err := solver.SolveExhaustive(p)
	if err != nil {
		return nil, err
	}
	res := &CheckResult{
		Tokens:     p.Tokens,
		DP:         dp.Score,
		Exhaustive: ex.Score,
		Best:       ex.Colours(),
	}
	if !res.Agree() {
		a.log.Warn("dp and exhaustive disagree")
	}
	return res, nil
}

// Import decodes the table files and stores them under name.
func (a *App) Import(name, termsPath, transitionsPath string) (ports.LexiconInfo, error) {
	lex, err := a.LoadTables(Inputs{TermsPath: termsPath, TransitionsPath: transitionsPath})
	if err != nil {
		return ports.LexiconInfo{}, err
	}
	store, err := a.Store()
	if err != nil {
		return ports.LexiconInfo{}, err
	}
	if err := store.SaveLexicon(name, lex); err != nil {
		return ports.LexiconInfo{}, fmt.Errorf("save lexicon %q: %w", name, err)
	}
	a.log.Info("lexicon imported", log.Lexicon(name), log.Path(termsPath))
	return ports.LexiconInfo{
		Name:        name,
		Terms:       lex.Terms.Len(),
		Transitions: lex.Transitions.Len(),
		HasTrans:    lex.Transitions != nil,
	}, nil
}

// Lexicons lists stored lexicons.
func (a *App) Lexicons() ([]ports.LexiconInfo, error) {
	store, err := a.Store()
	if err != nil {
		return nil, err
	}
	return store.ListLexicons()
}

// Inspect loads a stored lexicon.
func (a *App) Inspect(name string) (*ports.Lexicon, error) {
	return a.LoadTables(Inputs{Lexicon: name})
}

// Remove deletes a stored lexicon. Removing a missing lexicon is not an error.
func (a *App) Remove(name string) error {
	store, err := a.Store()
	if err != nil {
		return err
	}
	return store.DeleteLexicon(name)
}

// DBExists reports whether the lexicon database file has been created.
func (a *App) DBExists() bool {
	_, err := os.Stat(a.DBPath)
	return err == nil
}
