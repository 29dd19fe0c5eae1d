package handlers

import (
	"errors"
	"net/http"

	"controlling_dishwasher/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK             = "ok"
	statusDoorOpened     = "door_opened"
	statusDoorClosed     = "door_closed"
	statusFilterCleaned  = "filter_cleaned"
	statusFilterSet      = "filter_set"
	statusFaultInjected  = "fault_injected"
	statusFaultsCleared  = "faults_cleared"
	errStartCycle        = "failed to start cycle"
	errGetState          = "failed to load state"
	errUpdateAppliance   = "failed to update appliance"
	errInvalidBodyPref   = "invalid body: "
	errControllerOptions = "controller misconfigured"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include current state if available (best-effort).
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	st, err := h.services.Monitoring.GetState(ctx)
	if err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// applianceError maps operator control errors to HTTP codes.
func (h *Handler) applianceError(c *gin.Context, logKey string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCapacity),
		errors.Is(err, service.ErrInvalidComponent),
		errors.Is(err, service.ErrFaultReason):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDoorAlreadyOpen),
		errors.Is(err, service.ErrDoorClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateAppliance, logKey, err)
	}
}

// StartCycleRequest is the payload of a wash cycle request.
type StartCycleRequest struct {
	// Washing program. Allowed: ECO, INTENSIVE, RINSE, NIAGARA
	Program string `json:"program" binding:"required" example:"ECO"`
	// Whether a detergent tablet was loaded
	TabletsUsed bool `json:"tablets_used" example:"true"`
	// Water fill level. Allowed: HALF, FULL. Empty uses the appliance default
	FillLevel string `json:"fill_level,omitempty" example:"FULL"`
}

// FilterCapacityRequest sets the dirt filter reading.
type FilterCapacityRequest struct {
	// Remaining usable capacity in percent, 0..100
	Capacity *float64 `json:"capacity" binding:"required" example:"33"`
}

// FaultRequest injects a hardware fault.
type FaultRequest struct {
	// Component to break. Allowed: PUMP, ENGINE
	Component string `json:"component" binding:"required" example:"PUMP"`
	// Human-readable fault description
	Reason string `json:"reason" binding:"required" example:"inlet valve stuck"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Start a wash cycle
// @Description  Door and filter problems are reported in the outcome status, not as HTTP errors.
// @Tags         dishwasher
// @Accept       json
// @Produce      json
// @Param        body  body      StartCycleRequest     true  "Cycle request"
// @Success      200   {object}  service.CycleOutcome
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/dishwasher/start [post]
// @Security     BearerAuth
func (h *Handler) startCycle(c *gin.Context) {
	var req StartCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	out, err := h.services.Washer.Start(c.Request.Context(), service.CycleParams{
		Program:     req.Program,
		TabletsUsed: req.TabletsUsed,
		FillLevel:   req.FillLevel,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCycle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errStartCycle, "cycle_start_failed", err, "program", req.Program)
		return
	}
	if h.log != nil {
		h.log.Infow("cycle_finished", "program", out.Program, "status", out.Status, "run_minutes", out.RunMinutes)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      List washing programs
// @Tags         dishwasher
// @Produce      json
// @Success      200  {array}   service.ProgramInfo
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dishwasher/programs [get]
// @Security     BearerAuth
func (h *Handler) listPrograms(c *gin.Context) {
	programs := h.services.Washer.Programs()
	if programs == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errControllerOptions})
		return
	}
	c.JSON(http.StatusOK, programs)
}

// @Summary      Get appliance state
// @Tags         dishwasher
// @Produce      json
// @Success      200  {object}  models.ApplianceState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dishwasher/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "appliance_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Open the door
// @Tags         appliance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dishwasher/door/open [post]
// @Security     BearerAuth
func (h *Handler) openDoor(c *gin.Context) {
	if err := h.services.Appliance.OpenDoor(c.Request.Context()); err != nil {
		h.applianceError(c, "door_open_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusDoorOpened, gin.H{})
}

// @Summary      Close the door
// @Tags         appliance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dishwasher/door/close [post]
// @Security     BearerAuth
func (h *Handler) closeDoor(c *gin.Context) {
	if err := h.services.Appliance.CloseDoor(c.Request.Context()); err != nil {
		h.applianceError(c, "door_close_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusDoorClosed, gin.H{})
}

// @Summary      Clean the dirt filter
// @Tags         appliance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dishwasher/filter/clean [post]
// @Security     BearerAuth
func (h *Handler) cleanFilter(c *gin.Context) {
	if err := h.services.Appliance.CleanFilter(c.Request.Context()); err != nil {
		h.applianceError(c, "filter_clean_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusFilterCleaned, gin.H{})
}

// @Summary      Set the dirt filter reading
// @Tags         appliance
// @Accept       json
// @Produce      json
// @Param        body  body      FilterCapacityRequest  true  "Capacity payload"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/dishwasher/filter [put]
// @Security     BearerAuth
func (h *Handler) setFilterCapacity(c *gin.Context) {
	var req FilterCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Appliance.SetFilterCapacity(c.Request.Context(), *req.Capacity); err != nil {
		h.applianceError(c, "filter_set_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusFilterSet, gin.H{"capacity": *req.Capacity})
}

// @Summary      Inject a hardware fault
// @Tags         appliance
// @Accept       json
// @Produce      json
// @Param        body  body      FaultRequest  true  "Fault payload"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/dishwasher/faults [post]
// @Security     BearerAuth
func (h *Handler) injectFault(c *gin.Context) {
	var req FaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	err := h.services.Appliance.InjectFault(c.Request.Context(), service.FaultParams{
		Component: req.Component,
		Reason:    req.Reason,
	})
	if err != nil {
		h.applianceError(c, "fault_inject_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusFaultInjected, gin.H{"component": req.Component})
}

// @Summary      Clear hardware faults
// @Tags         appliance
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dishwasher/faults [delete]
// @Security     BearerAuth
func (h *Handler) clearFaults(c *gin.Context) {
	if err := h.services.Appliance.ClearFaults(c.Request.Context()); err != nil {
		h.applianceError(c, "faults_clear_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusFaultsCleared, gin.H{})
}
