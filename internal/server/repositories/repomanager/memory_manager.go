// Package repomanager provides a process-lifetime RepositoryManager that
// keeps every collection in memory. Each repository guards its own
// collection, so the manager itself holds no lock.
package repomanager

import (
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/users"
)

// MemoryRepositoryManager vends in-memory repositories. The same instance
// is returned on every call so all callers share one store.
type MemoryRepositoryManager struct {
	users       *users.MemoryRepository
	sessions    *sessions.MemoryRepository
	credentials *credentials.MemoryRepository
}

// Users returns the shared users.Repository.
func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

// Sessions returns the shared sessions.Repository.
func (m *MemoryRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

// Credentials returns the shared credentials.Repository.
func (m *MemoryRepositoryManager) Credentials() credentials.Repository {
	return m.credentials
}

// NewMemoryRepositoryManager constructs an empty in-memory store.
func NewMemoryRepositoryManager() RepositoryManager {
	return &MemoryRepositoryManager{
		users:       users.NewMemoryRepository(),
		sessions:    sessions.NewMemoryRepository(),
		credentials: credentials.NewMemoryRepository(),
	}
}
