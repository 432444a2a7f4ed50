// Package repomanager wires the credential store: it opens the database,
// runs migrations and hands out the repositories.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mkravets/biogate/internal/server/repositories/biometrics"
	"github.com/mkravets/biogate/internal/server/repositories/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Biometrics() biometrics.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
