package session

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Manager hands out the one live session per table. Sessions are created
// lazily (available, empty cart). The lock only makes the map safe under
// the HTTP server; a single editor per table is assumed beyond that.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uint]*Session
	taxRate  decimal.Decimal
	sink     StatusSink
}

func NewManager(taxRate decimal.Decimal, sink StatusSink) *Manager {
	return &Manager{
		sessions: make(map[uint]*Session),
		taxRate:  taxRate,
		sink:     sink,
	}
}

func (m *Manager) Get(tableID uint) *Session {
	m.mu.RLock()
	s, ok := m.sessions[tableID]
	m.mu.RUnlock()
	if ok {
		return s
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[tableID]; ok {
		return s
	}
	s = New(tableID, m.taxRate, m.sink)
	m.sessions[tableID] = s
	return s
}

// Restore seeds a session from the persisted table mirror at boot. The
// cart is in-memory only and does not survive a restart.
func (m *Manager) Restore(tableID uint, status Status, customerName string, guests int) {
	if guests < 1 {
		guests = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := New(tableID, m.taxRate, m.sink)
	s.status = status
	s.customerName = customerName
	s.guests = guests
	m.sessions[tableID] = s
}

func (m *Manager) Drop(tableID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, tableID)
}
