package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"controlling_dishwasher/internal/models"
	"controlling_dishwasher/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockWasher struct {
	outcome   service.CycleOutcome
	startErr  error
	programs  []service.ProgramInfo
	lastStart service.CycleParams
	starts    int
}

func (m *mockWasher) Start(ctx context.Context, p service.CycleParams) (service.CycleOutcome, error) {
	m.starts++
	m.lastStart = p
	return m.outcome, m.startErr
}
func (m *mockWasher) Programs() []service.ProgramInfo { return m.programs }

type mockAppliance struct {
	err          error
	calls        []string
	lastCapacity float64
	lastFault    service.FaultParams
}

func (m *mockAppliance) OpenDoor(ctx context.Context) error {
	m.calls = append(m.calls, "open")
	return m.err
}
func (m *mockAppliance) CloseDoor(ctx context.Context) error {
	m.calls = append(m.calls, "close")
	return m.err
}
func (m *mockAppliance) CleanFilter(ctx context.Context) error {
	m.calls = append(m.calls, "clean")
	return m.err
}
func (m *mockAppliance) SetFilterCapacity(ctx context.Context, percent float64) error {
	m.calls = append(m.calls, "capacity")
	m.lastCapacity = percent
	return m.err
}
func (m *mockAppliance) InjectFault(ctx context.Context, p service.FaultParams) error {
	m.calls = append(m.calls, "fault")
	m.lastFault = p
	return m.err
}
func (m *mockAppliance) ClearFaults(ctx context.Context) error {
	m.calls = append(m.calls, "clear")
	return m.err
}

type mockMonitoring struct {
	mu    sync.Mutex
	state models.ApplianceState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.ApplianceState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.err
}

func (m *mockMonitoring) set(st models.ApplianceState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = st
}

type mockEventLog struct {
	resp     []models.ApplianceEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ApplianceEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
