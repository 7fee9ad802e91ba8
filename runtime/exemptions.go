package runtime

import "sync"

// Exemptions is the set of sessions whose messages are sent anonymously.
// It lives as long as the process, nothing is persisted.
//
// Adds travel through the session worker while removals are applied at once,
// so adds still queued when their session leaves are counted as stale and ignored.
type Exemptions struct {
	mu       sync.RWMutex
	sessions map[string]struct{}
	queued   map[string]int
	stale    map[string]int
}

func NewExemptions() *Exemptions {
	return &Exemptions{
		sessions: make(map[string]struct{}),
		queued:   make(map[string]int),
		stale:    make(map[string]int),
	}
}

// Announce records an add on its way to the session worker.
func (e *Exemptions) Announce(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queued[sessionID]++
}

// Withdraw forgets an announced add that was never queued.
func (e *Exemptions) Withdraw(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.consume(sessionID)
}

func (e *Exemptions) Add(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.consume(sessionID) {
		return
	}
	e.sessions[sessionID] = struct{}{}
}

// Remove drops the session and invalidates the adds announced before it.
func (e *Exemptions) Remove(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, sessionID)
	if n := e.queued[sessionID]; n > 0 {
		e.stale[sessionID] = n
	}
}

// consume settles one announced add and reports whether it was stale.
func (e *Exemptions) consume(sessionID string) bool {
	n, ok := e.queued[sessionID]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(e.queued, sessionID)
	} else {
		e.queued[sessionID] = n - 1
	}

	s, ok := e.stale[sessionID]
	if !ok {
		return false
	}
	if s <= 1 {
		delete(e.stale, sessionID)
	} else {
		e.stale[sessionID] = s - 1
	}
	return true
}

func (e *Exemptions) Contains(sessionID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.sessions[sessionID]
	return ok
}

func (e *Exemptions) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.sessions)
}
