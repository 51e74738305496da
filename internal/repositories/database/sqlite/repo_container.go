package sqlite

import (
	"database/sql"

	portsrepo "github.com/tripflow/tripflow_backend/internal/core/ports/repositories"
)

// RepositoryContainer bundles the SQLite implementations of every repository
// port over one shared database handle.
type RepositoryContainer struct {
	User      portsrepo.UserRepository
	Trip      portsrepo.TripRepository
	Step      portsrepo.StepRepository
	Checklist portsrepo.ChecklistRepository
	Journal   portsrepo.JournalRepository
}

// NewRepositoryContainer wires all repositories against the given database.
func NewRepositoryContainer(db *sql.DB) *RepositoryContainer {
	return &RepositoryContainer{
		User:      newSqliteUserRepository(db),
		Trip:      newSqliteTripRepository(db),
		Step:      newSqliteStepRepository(db),
		Checklist: newSqliteChecklistRepository(db),
		Journal:   newSqliteJournalRepository(db),
	}
}
