package discord

import (
	"sync"
	"time"
)

// userLimiter: un uso por ventana por usuario. nil = sin límite.
type userLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
	now  func() time.Time
}

func newUserLimiter(window time.Duration) *userLimiter {
	if window <= 0 {
		return nil
	}
	return &userLimiter{next: map[string]time.Time{}, win: window, now: time.Now}
}

func (l *userLimiter) Allow(userID string) bool {
	if l == nil {
		return true
	}
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[userID]; ok && now.Before(until) {
		return false
	}
	// limpiamos vencidos para que el mapa no crezca sin límite
	for id, until := range l.next {
		if !now.Before(until) {
			delete(l.next, id)
		}
	}
	l.next[userID] = now.Add(l.win)
	return true
}
