// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"sync"
)

// Locked serializes access to a Generator shared between goroutines.
// The interleaving of draws between goroutines is still up to the scheduler.
type Locked struct {
	mu sync.Mutex
	g  Generator
}

func NewLocked(g Generator) *Locked {
	return &Locked{g: g}
}

// Do runs f with exclusive access to the generator. f must not keep g.
func (l *Locked) Do(f func(g *Generator)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(&l.g)
}

// Snapshot returns a copy of the current state.
func (l *Locked) Snapshot() Generator {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g
}

func (l *Locked) Uint32() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Uint32()
}

func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Uint64()
}

func (l *Locked) ZeroToOne() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.ZeroToOne()
}

func (l *Locked) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Read(p)
}
