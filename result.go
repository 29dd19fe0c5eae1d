package controlling_dishwasher

// RunResult is the outcome of one call to DishWasher.Start.
type RunResult struct {
	status     Status
	runMinutes int
	err        error
}

func succeeded(minutes int) RunResult {
	return RunResult{status: StatusSuccess, runMinutes: minutes}
}

func rejected(status Status) RunResult {
	return RunResult{status: status}
}

func faulted(status Status, err error) RunResult {
	return RunResult{status: status, err: err}
}

func (r RunResult) Status() Status { return r.status }

// RunMinutes is the nominal cycle duration. It is zero unless Status is SUCCESS.
func (r RunResult) RunMinutes() int { return r.runMinutes }

// Err returns the collaborator fault behind an ERROR_PUMP, ERROR_PROGRAM or
// ERROR_SYSTEM status.
func (r RunResult) Err() error { return r.err }
