package handler

import (
	"context"
	"time"

	"github.com/qads-development/QADS-Backend/internal/model"
)

// Store is the persistence surface the handlers depend on
type Store interface {
	Ping(ctx context.Context) error

	CreateClient(ctx context.Context, client *model.Client) error
	GetClientByUsername(ctx context.Context, username string) (*model.Client, error)

	CreateEmployee(ctx context.Context, employee *model.Employee) error
	ListEmployees(ctx context.Context, clientID string) ([]model.Employee, error)
	DeleteEmployee(ctx context.Context, id, clientID string) (int64, error)
	UpdateEmployeePaid(ctx context.Context, id, clientID string, paid bool) (int64, error)

	CreateTask(ctx context.Context, task *model.Task) error
	ListTasks(ctx context.Context, clientID string) ([]model.Task, error)
	UpdateTaskDone(ctx context.Context, id, clientID string, done bool) (int64, error)
	DeleteTask(ctx context.Context, id, clientID string) (int64, error)

	CreateEvent(ctx context.Context, event *model.Event) error
	ListEvents(ctx context.Context, clientID string) ([]model.Event, error)
	DeleteEvent(ctx context.Context, id, clientID string) (int64, error)

	DashboardStats(ctx context.Context, clientID string) (*model.DashboardStats, error)
}

// Sessions issues session tokens at login
type Sessions interface {
	CreateSession(clientID string) (string, error)
	Len() int
}

// Handler serves the HTTP API on top of a Store and a session registry
type Handler struct {
	store      Store
	sessions   Sessions
	startedAt  time.Time
	bcryptCost int
}

// Option customizes a Handler
type Option func(*Handler)

// WithBcryptCost overrides the cost used to hash onboarding passwords
func WithBcryptCost(cost int) Option {
	return func(h *Handler) {
		h.bcryptCost = cost
	}
}

// New creates a Handler
func New(store Store, sessions Sessions, opts ...Option) *Handler {
	h := &Handler{
		store:      store,
		sessions:   sessions,
		startedAt:  time.Now(),
		bcryptCost: defaultBcryptCost,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
