package service

import (
	"context"
	"sync"

	dw "controlling_dishwasher"
	"controlling_dishwasher/internal/models"
	"controlling_dishwasher/internal/repository"

	"go.uber.org/zap"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Washer runs wash cycles against the simulated appliance.
type Washer interface {
	Start(ctx context.Context, p CycleParams) (CycleOutcome, error)
	Programs() []ProgramInfo
}

// Appliance exposes the operator controls of the simulated hardware.
type Appliance interface {
	OpenDoor(ctx context.Context) error
	CloseDoor(ctx context.Context) error
	CleanFilter(ctx context.Context) error
	SetFilterCapacity(ctx context.Context, percent float64) error
	InjectFault(ctx context.Context, p FaultParams) error
	ClearFaults(ctx context.Context) error
}

// Monitoring exposes the read-only appliance snapshot.
type Monitoring interface {
	GetState(ctx context.Context) (models.ApplianceState, error)
}

// EventLog exposes the maintenance log with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ApplianceEvent, error)
}

type Service struct {
	Washer
	Appliance
	Monitoring
	EventLog
	Authorization
}

// Deps carries settings that do not come from the repository layer.
type Deps struct {
	ControllerOptions []dw.Option
	Auth              AuthConfig
	Log               *zap.Logger
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	// cycles and operator controls take turns on the appliance row
	hw := &sync.Mutex{}
	washer := NewWasherService(repos.StateRepo, deps.ControllerOptions, deps.Log)
	washer.mu = hw
	appliance := NewApplianceService(repos.StateRepo, repos.EventRepo)
	appliance.mu = hw

	return &Service{
		Washer:        washer,
		Appliance:     appliance,
		Monitoring:    NewMonitoringService(repos.StateRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Authorization: NewAuthService(repos.Auth, deps.Auth),
	}
}
