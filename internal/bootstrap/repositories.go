package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/database/postgres"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Puzzle repository.Puzzle
}

// InitializeRepositories creates all repository implementations on the shared pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Puzzle: postgres.NewPuzzleRepository(dbPool),
	}
}
