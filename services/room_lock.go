package services

import "sync"

// roomLocks hands out one mutex per room id, so the conflict re-check and
// the reservation insert of a booking attempt are atomic with respect to
// other in-process attempts on the same room. The map is bounded by the
// number of rooms and entries are never released.
type roomLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *roomLocks) forRoom(roomID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	return m
}
