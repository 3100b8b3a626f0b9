package draft

import (
	"sync"

	"github.com/google/uuid"
)

// Manager composes multiple independent draft instances side by side,
// one per form card. Deleting one instance never touches its siblings.
type Manager struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*Draft
	order  []uuid.UUID
}

func NewManager() *Manager {
	return &Manager{drafts: map[uuid.UUID]*Draft{}}
}

// NewForm adds a fresh draft and returns it.
func (m *Manager) NewForm() *Draft {
	d := New()
	m.mu.Lock()
	m.drafts[d.ID] = d
	m.order = append(m.order, d.ID)
	m.mu.Unlock()
	return d
}

// Get returns a draft by id.
func (m *Manager) Get(id uuid.UUID) (*Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	return d, ok
}

// Delete discards one draft as a whole unit.
func (m *Manager) Delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drafts[id]; !ok {
		return
	}
	delete(m.drafts, id)
	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Forms returns the drafts in creation order.
func (m *Manager) Forms() []*Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Draft, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.drafts[id])
	}
	return out
}
