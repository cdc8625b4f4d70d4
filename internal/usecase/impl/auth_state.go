package impl

import (
	"context"
	"sync"

	"shopradar/internal/domain/entity"
	"shopradar/internal/usecase"
)

type authState struct {
	mu        sync.RWMutex
	session   entity.Session
	listeners []usecase.AuthListener
}

// NewAuthState creates the device auth state, starting as guest.
func NewAuthState() usecase.AuthState {
	return &authState{}
}

// Current returns the current session.
func (a *authState) Current() entity.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.session
}

// Set replaces the session and notifies listeners.
func (a *authState) Set(ctx context.Context, session entity.Session) {
	a.mu.Lock()
	a.session = session
	listeners := make([]usecase.AuthListener, len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.Unlock()

	event := entity.AuthEventSignedOut
	if session.IsAuthenticated() {
		event = entity.AuthEventSignedIn
	}

	for _, listener := range listeners {
		listener(ctx, event, session)
	}
}

// Subscribe registers a listener.
func (a *authState) Subscribe(listener usecase.AuthListener) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.listeners = append(a.listeners, listener)
}
