package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	dw "controlling_dishwasher"
	"controlling_dishwasher/internal/models"
	"controlling_dishwasher/internal/service"
)

func doWithAuth(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd *bytes.Buffer
	if body != "" {
		rd = bytes.NewBufferString(body)
	} else {
		rd = &bytes.Buffer{}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func TestDishwasherHandlers_StateRequiresAuth(t *testing.T) {
	mon := &mockMonitoring{state: models.ApplianceState{ID: 1, DoorClosed: true, FilterCapacity: 80}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Monitoring: mon}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dishwasher/state", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	w = doWithAuth(r, http.MethodGet, "/api/v1/dishwasher/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("state status=%d, body=%s", w.Code, w.Body.String())
	}
	var st models.ApplianceState
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if !st.DoorClosed || st.FilterCapacity != 80 {
		t.Fatalf("unexpected state: %+v", st)
	}

	mon.err = errors.New("db down")
	if w := doWithAuth(r, http.MethodGet, "/api/v1/dishwasher/state", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestDishwasherHandlers_StartCycle(t *testing.T) {
	washer := &mockWasher{outcome: service.CycleOutcome{
		Program:    dw.ProgramIntensive,
		Status:     dw.StatusSuccess,
		RunMinutes: 120,
		FillLevel:  dw.FillLevelFull,
	}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Washer: washer}
	r := newTestRouter(s)

	w := doWithAuth(r, http.MethodPost, "/api/v1/dishwasher/start",
		`{"program":"INTENSIVE","tablets_used":true,"fill_level":"FULL"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("start status=%d, body=%s", w.Code, w.Body.String())
	}
	if washer.starts != 1 {
		t.Fatalf("expected one Start call, got %d", washer.starts)
	}
	want := service.CycleParams{Program: "INTENSIVE", TabletsUsed: true, FillLevel: "FULL"}
	if washer.lastStart != want {
		t.Fatalf("params: got %+v, want %+v", washer.lastStart, want)
	}
	var out service.CycleOutcome
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Status != dw.StatusSuccess || out.RunMinutes != 120 || out.FillLevel != dw.FillLevelFull {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestDishwasherHandlers_StartCycle_NonSuccessIsStill200(t *testing.T) {
	washer := &mockWasher{outcome: service.CycleOutcome{Program: dw.ProgramEco, Status: dw.StatusDoorOpen}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Washer: washer})

	w := doWithAuth(r, http.MethodPost, "/api/v1/dishwasher/start", `{"program":"ECO"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["status"] != string(dw.StatusDoorOpen) || out["run_minutes"].(float64) != 0 {
		t.Fatalf("unexpected outcome: %v", out)
	}
}

func TestDishwasherHandlers_StartCycle_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"missing program", `{"tablets_used":true}`, nil, http.StatusBadRequest},
		{"invalid request", `{"program":"BOIL"}`, fmt.Errorf("%w: unknown", service.ErrInvalidCycle), http.StatusBadRequest},
		{"repository failure", `{"program":"ECO"}`, errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			washer := &mockWasher{startErr: tc.err}
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Washer: washer})
			w := doWithAuth(r, http.MethodPost, "/api/v1/dishwasher/start", tc.body)
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestDishwasherHandlers_Programs(t *testing.T) {
	washer := &mockWasher{programs: []service.ProgramInfo{
		{Program: dw.ProgramEco, Minutes: 90},
		{Program: dw.ProgramIntensive, Minutes: 120},
	}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Washer: washer})

	w := doWithAuth(r, http.MethodGet, "/api/v1/dishwasher/programs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var got []service.ProgramInfo
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 2 || got[1].Minutes != 120 {
		t.Fatalf("unexpected programs: %+v", got)
	}

	washer.programs = nil
	if w := doWithAuth(r, http.MethodGet, "/api/v1/dishwasher/programs", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when controller options are invalid, got %d", w.Code)
	}
}

func TestDishwasherHandlers_ApplianceControls(t *testing.T) {
	app := &mockAppliance{}
	mon := &mockMonitoring{state: models.ApplianceState{ID: 1, DoorClosed: false, FilterCapacity: 33}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Appliance: app, Monitoring: mon})

	cases := []struct {
		method, path, body string
		wantStatus         string
	}{
		{http.MethodPost, "/api/v1/dishwasher/door/open", "", statusDoorOpened},
		{http.MethodPost, "/api/v1/dishwasher/door/close", "", statusDoorClosed},
		{http.MethodPost, "/api/v1/dishwasher/filter/clean", "", statusFilterCleaned},
		{http.MethodPut, "/api/v1/dishwasher/filter", `{"capacity":33}`, statusFilterSet},
		{http.MethodPost, "/api/v1/dishwasher/faults", `{"component":"PUMP","reason":"valve stuck"}`, statusFaultInjected},
		{http.MethodDelete, "/api/v1/dishwasher/faults", "", statusFaultsCleared},
	}
	for _, tc := range cases {
		w := doWithAuth(r, tc.method, tc.path, tc.body)
		if w.Code != http.StatusOK {
			t.Fatalf("%s %s: status=%d body=%s", tc.method, tc.path, w.Code, w.Body.String())
		}
		var resp struct {
			Status string                `json:"status"`
			State  models.ApplianceState `json:"state"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Status != tc.wantStatus || resp.State.FilterCapacity != 33 {
			t.Fatalf("%s %s: unexpected response %+v", tc.method, tc.path, resp)
		}
	}

	wantCalls := []string{"open", "close", "clean", "capacity", "fault", "clear"}
	if fmt.Sprint(app.calls) != fmt.Sprint(wantCalls) {
		t.Fatalf("calls=%v, want %v", app.calls, wantCalls)
	}
	if app.lastCapacity != 33 {
		t.Fatalf("capacity=%v", app.lastCapacity)
	}
	if app.lastFault != (service.FaultParams{Component: "PUMP", Reason: "valve stuck"}) {
		t.Fatalf("fault=%+v", app.lastFault)
	}
}

func TestDishwasherHandlers_ApplianceErrors(t *testing.T) {
	cases := []struct {
		name               string
		method, path, body string
		err                error
		want               int
	}{
		{"door already open", http.MethodPost, "/api/v1/dishwasher/door/open", "", service.ErrDoorAlreadyOpen, http.StatusConflict},
		{"door already closed", http.MethodPost, "/api/v1/dishwasher/door/close", "", service.ErrDoorClosed, http.StatusConflict},
		{"capacity out of range", http.MethodPut, "/api/v1/dishwasher/filter", `{"capacity":120}`, fmt.Errorf("%w: 120", service.ErrInvalidCapacity), http.StatusBadRequest},
		{"capacity missing", http.MethodPut, "/api/v1/dishwasher/filter", `{}`, nil, http.StatusBadRequest},
		{"bad component", http.MethodPost, "/api/v1/dishwasher/faults", `{"component":"DOOR","reason":"x"}`, service.ErrInvalidComponent, http.StatusBadRequest},
		{"storage failure", http.MethodPost, "/api/v1/dishwasher/filter/clean", "", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := &mockAppliance{err: tc.err}
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Appliance: app, Monitoring: &mockMonitoring{}})
			w := doWithAuth(r, tc.method, tc.path, tc.body)
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status=%d", w.Code)
	}
}
