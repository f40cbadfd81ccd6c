package orchestrator

import (
	"github.com/glorpus-work/pulpctl/pkg/auth"
	"github.com/glorpus-work/pulpctl/pkg/command"
	"github.com/glorpus-work/pulpctl/pkg/consumer"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"github.com/glorpus-work/pulpctl/pkg/repository"
)

// PulpSessions opens one pulp.Admin session per distinct set of credentials, so
// resources sharing a login only authenticate once per pass.
type PulpSessions struct {
	runner *command.Runner
	opts   pulp.Options
	admins map[auth.Credentials]*pulp.Admin
}

// NewPulpSessions creates a session factory running commands through runner.
func NewPulpSessions(runner *command.Runner, opts pulp.Options) *PulpSessions {
	return &PulpSessions{
		runner: runner,
		opts:   opts,
		admins: make(map[auth.Credentials]*pulp.Admin),
	}
}

// Admin returns the session for creds, creating it on first use.
func (s *PulpSessions) Admin(creds auth.Credentials) *pulp.Admin {
	admin, ok := s.admins[creds]
	if !ok {
		admin = pulp.NewAdmin(s.runner, creds, s.opts)
		s.admins[creds] = admin
	}
	return admin
}

// Repositories implements SessionFactory.
func (s *PulpSessions) Repositories(creds auth.Credentials) RepositoryReconciler {
	return repository.NewReconciler(s.Admin(creds))
}

// Consumers implements SessionFactory.
func (s *PulpSessions) Consumers(creds auth.Credentials) ConsumerReconciler {
	return consumer.NewReconciler(s.Admin(creds))
}
