package state

import "sync"

// Well-known token slots. Per-entity operations use the entity id.
const (
	SlotList      = "list"
	SlotSingleton = "singleton"
)

// Token identifies one issued request.
type Token uint64

// Tokens tracks the latest request token per slot. The zero value is ready
// to use.
type Tokens struct {
	mu     sync.Mutex
	next   Token
	latest map[string]Token
}

// Issue returns a new token for slot and makes it the current one.
func (t *Tokens) Issue(slot string) Token {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.latest == nil {
		t.latest = make(map[string]Token)
	}
	t.next++
	t.latest[slot] = t.next
	return t.next
}

// Current reports whether tok is still the latest token for slot.
func (t *Tokens) Current(slot string, tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	latest, ok := t.latest[slot]
	return ok && latest == tok
}

// Invalidate makes every outstanding token for slot stale.
func (t *Tokens) Invalidate(slot string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.latest == nil {
		t.latest = make(map[string]Token)
	}
	t.next++
	t.latest[slot] = t.next
}
