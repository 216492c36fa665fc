// Package skipmap provides an in-memory ordered map over opaque byte
// keys, implemented as a skip list. Keys are unique and ordered by
// lexicographic byte comparison; insert, lookup and membership run in
// expected O(log n). The list is not safe for concurrent mutation.
package skipmap

import (
	"bytes"
	randv2 "math/rand/v2"
)

// SkipList is an ordered map from byte-slice keys to byte-slice values.
// The zero value is not usable; construct with New.
type SkipList struct {
	store *nodeStore
	// height is the highest level currently in use. It starts at 1 and
	// only grows, never past cfg.maxHeight.
	height int
	cfg    Config
	rng    randv2.Source
}

// New returns an empty SkipList.
func New(opts ...Option) *SkipList {
	cfg := NewConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	rng := cfg.src
	if rng == nil {
		rng = newRandSource()
	}
	return &SkipList{
		store:  newNodeStore(cfg.maxHeight),
		height: 1,
		cfg:    cfg,
		rng:    rng,
	}
}

// findGreaterOrEqual returns the first node whose key is >= key (nilID
// when no such node exists) and the splice journal: for every level,
// the last node visited before the search dropped down. Levels above
// the current height stay at head, which is exactly the predecessor
// they need if the list later grows into them.
//
// A node whose key equals the target stops the advance, so the
// returned node is the exact match when one exists.
func (l *SkipList) findGreaterOrEqual(key []byte) (nodeID, []nodeID) {
	journal := make([]nodeID, l.cfg.maxHeight) // zero value is headID
	curr := headID
	for level := l.height - 1; level >= 0; level-- {
		for {
			next := l.store.next(curr, level)
			if next == nilID || bytes.Compare(l.store.at(next).key, key) >= 0 {
				break
			}
			curr = next
		}
		journal[level] = curr
	}
	return l.store.next(curr, 0), journal
}

// Get returns the value stored under key. The boolean is false if the
// key is absent.
func (l *SkipList) Get(key []byte) ([]byte, bool) {
	candidate, _ := l.findGreaterOrEqual(key)
	if candidate == nilID {
		return nil, false
	}
	if n := l.store.at(candidate); bytes.Equal(n.key, key) {
		return n.value, true
	}
	return nil, false
}

// Contains reports whether key is present.
func (l *SkipList) Contains(key []byte) bool {
	_, ok := l.Get(key)
	return ok
}

// Insert adds key with the given value. Keys are unique: inserting a
// key that is already present returns ErrDuplicateKey and leaves the
// list unchanged. The list keeps the provided slices; callers must not
// mutate them afterwards.
func (l *SkipList) Insert(key, value []byte) error {
	candidate, journal := l.findGreaterOrEqual(key)
	if candidate != nilID && bytes.Equal(l.store.at(candidate).key, key) {
		return ErrDuplicateKey
	}

	height := l.randomHeight()
	if height > l.height {
		// The journal already records head for the newly activated
		// levels; no node has ever participated in them.
		l.height = height
	}

	id := l.store.alloc(key, value, height)
	for level := 0; level < height; level++ {
		pred := journal[level]
		// Read the predecessor's old link before overwriting it, so no
		// successor is lost.
		l.store.setNext(id, level, l.store.next(pred, level))
		l.store.setNext(pred, level, id)
	}
	return nil
}

// Len returns the number of entries.
func (l *SkipList) Len() int {
	return l.store.len()
}

// Height returns the highest level currently in use.
func (l *SkipList) Height() int {
	return l.height
}
