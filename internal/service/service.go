package service

import (
	"debate_live/internal/repository"
)

type Services struct {
	User      *UserService
	FactCheck *FactCheckService
	Debate    *DebateService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		User:      NewUserService(repos.User),
		FactCheck: NewFactCheckService(repos.FactCheck),
		Debate:    NewDebateService(repos.Debate),
	}
}
