package repomanager

import (
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Sessions() sessions.Repository
	Credentials() credentials.Repository
}
