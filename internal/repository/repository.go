package repository

import "debate_live/internal/storage"

type Repositories struct {
	User      UserRepository
	FactCheck FactCheckRepository
	Debate    DebateRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:      NewUserRepository(db),
		FactCheck: NewFactCheckRepository(db),
		Debate:    NewDebateRepository(db),
	}
}
