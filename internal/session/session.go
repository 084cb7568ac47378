// Package session holds the mutable state of one assessment: per-action
// ratings, the lock set, and session metadata. The catalog it is bound to is
// never mutated.
//
// A Session is not safe for concurrent use; its operations run to completion
// on one logical caller (the MCP server serializes access with its own mutex).
package session

import (
	"fmt"

	"github.com/boardgov/govscore/internal/catalog"
)

// Metadata is free-form assessment context. Never schema-validated.
type Metadata struct {
	Organisation string
	Board        string
	Date         string
	Sector       string
}

// Placeholder values applied by consumers when fields are empty.
const (
	DefaultOrganisation = "Your organisation"
	DefaultBoard        = "Board / Committee"
	DefaultSector       = "generic"
)

// DisplayOrganisation returns the organisation name or its placeholder.
func (m Metadata) DisplayOrganisation() string {
	if m.Organisation == "" {
		return DefaultOrganisation
	}
	return m.Organisation
}

// DisplayBoard returns the board name or its placeholder.
func (m Metadata) DisplayBoard() string {
	if m.Board == "" {
		return DefaultBoard
	}
	return m.Board
}

// DisplaySector returns the sector key or its placeholder.
func (m Metadata) DisplaySector() string {
	if m.Sector == "" {
		return DefaultSector
	}
	return m.Sector
}

// UnknownActionError reports a rating attempt for a code not in the catalog.
type UnknownActionError struct {
	Code string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action code %s", e.Code)
}

// InvalidLevelError reports a level outside the action's defined levels.
type InvalidLevelError struct {
	Code  string
	Level int
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level %d for action %s", e.Level, e.Code)
}

// LockedError signals that a rating attempt hit a locked action without
// administrative mode. Control flow, not failure: the prior value is kept and
// the caller decides how to surface it.
type LockedError struct {
	Code string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("action %s is locked", e.Code)
}

// NothingToLockError signals a lock attempt on an unrated action.
type NothingToLockError struct {
	Code string
}

func (e *NothingToLockError) Error() string {
	return fmt.Sprintf("action %s has no rating to lock", e.Code)
}

// Session is the assessment engine state for one sitting.
type Session struct {
	cat     *catalog.Catalog
	ratings map[string]int
	locks   map[string]struct{}
	meta    Metadata
}

// New creates an empty session bound to a catalog.
func New(cat *catalog.Catalog) *Session {
	return &Session{
		cat:     cat,
		ratings: make(map[string]int),
		locks:   make(map[string]struct{}),
	}
}

// Catalog returns the catalog this session is bound to.
func (s *Session) Catalog() *catalog.Catalog {
	return s.cat
}

// Rate records a maturity level for an action. admin bypasses the lock gate;
// the session itself holds no admin notion.
func (s *Session) Rate(code string, level int, admin bool) error {
	act, _, ok := s.cat.FindAction(code)
	if !ok {
		return &UnknownActionError{Code: code}
	}
	if _, ok := act.LevelFor(level); !ok {
		return &InvalidLevelError{Code: code, Level: level}
	}
	if s.IsLocked(code) && !admin {
		return &LockedError{Code: code}
	}

	s.ratings[code] = level
	return nil
}

// Clear removes an action's rating. No-op when unrated or locked; a locked
// selection only changes through an explicit unlock-then-rate sequence.
func (s *Session) Clear(code string) {
	if s.IsLocked(code) {
		return
	}
	delete(s.ratings, code)
}

// Rating returns the chosen level for an action, if rated.
func (s *Session) Rating(code string) (int, bool) {
	level, ok := s.ratings[code]
	return level, ok
}

// Lock protects a rated action from further changes. Idempotent.
func (s *Session) Lock(code string) error {
	if _, rated := s.ratings[code]; !rated {
		return &NothingToLockError{Code: code}
	}
	s.locks[code] = struct{}{}
	return nil
}

// Unlock removes an action from the lock set. Idempotent.
func (s *Session) Unlock(code string) {
	delete(s.locks, code)
}

// IsLocked reports whether an action is in the lock set.
func (s *Session) IsLocked(code string) bool {
	_, ok := s.locks[code]
	return ok
}

// ClearLocks empties the lock set, keeping all ratings.
func (s *Session) ClearLocks() {
	s.locks = make(map[string]struct{})
}

// ResetAll clears every rating and every lock. Metadata is kept; CSV import
// overwrites it explicitly.
func (s *Session) ResetAll() {
	s.ratings = make(map[string]int)
	s.locks = make(map[string]struct{})
}

// PrefillMinimum rates every unlocked action at the given level, preserving
// locked actions and the lock set. Bulk-seeding for administrators.
func (s *Session) PrefillMinimum(level int) {
	for _, d := range s.cat.Domains {
		for _, a := range d.Actions {
			if s.IsLocked(a.Code) {
				continue
			}
			if _, ok := a.LevelFor(level); ok {
				s.ratings[a.Code] = level
			}
		}
	}
}

// RatedCount is the number of actions with a rating.
func (s *Session) RatedCount() int {
	return len(s.ratings)
}

// LockedCount is the size of the lock set.
func (s *Session) LockedCount() int {
	return len(s.locks)
}

// SetMetadata replaces the session metadata.
func (s *Session) SetMetadata(m Metadata) {
	s.meta = m
}

// Metadata returns the current session metadata.
func (s *Session) Metadata() Metadata {
	return s.meta
}

// Rebind attaches the session to a new catalog, pruning ratings and locks
// whose action codes no longer resolve. Used by catalog hot reload.
func (s *Session) Rebind(cat *catalog.Catalog) (pruned int) {
	s.cat = cat
	for code := range s.ratings {
		if _, _, ok := cat.FindAction(code); !ok {
			delete(s.ratings, code)
			pruned++
		}
	}
	for code := range s.locks {
		if _, rated := s.ratings[code]; !rated {
			delete(s.locks, code)
		}
	}
	return pruned
}
