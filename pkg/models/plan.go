package models

// StepStatus represents the lifecycle state of a plan step.
type StepStatus string

// Step statuses. Transitions are monotonic (pending → running → completed
// or failed) except pending → skipped, which happens on cancellation or
// approval timeout.
const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// PlanStep is one unit of work within a Plan. ToolName is nil for
// reasoning-only steps, which the executor answers with the chat model
// directly.
type PlanStep struct {
	ID           int            `json:"id"`
	Description  string         `json:"description"`
	ToolName     *string        `json:"tool_name"`
	Params       map[string]any `json:"params,omitempty"`
	Dependencies []int          `json:"dependencies,omitempty"`
	Status       StepStatus     `json:"status"`
	Result       string         `json:"result,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// Plan is an ordered decomposition of a task. Plans are immutable after
// creation: re-planning produces a new Plan (and a new plan_created event).
// Step status is the only mutable part, and only the executor mutates it.
type Plan struct {
	Task     string      `json:"task"`
	Overview string      `json:"overview,omitempty"`
	Steps    []*PlanStep `json:"steps"`
}

// NextRunnable returns the first pending step whose dependencies have all
// completed, or nil when no step is currently runnable.
func (p *Plan) NextRunnable() *PlanStep {
	for _, step := range p.Steps {
		if step.Status != StepPending {
			continue
		}
		if p.dependenciesMet(step) {
			return step
		}
	}
	return nil
}

// IsComplete reports whether every step has reached a terminal step status.
func (p *Plan) IsComplete() bool {
	for _, step := range p.Steps {
		switch step.Status {
		case StepPending, StepRunning:
			return false
		}
	}
	return true
}

// HasFailed reports whether any step failed.
func (p *Plan) HasFailed() bool {
	for _, step := range p.Steps {
		if step.Status == StepFailed {
			return true
		}
	}
	return false
}

// Step returns the step with the given id, or nil.
func (p *Plan) Step(id int) *PlanStep {
	for _, step := range p.Steps {
		if step.ID == id {
			return step
		}
	}
	return nil
}

// Validate checks intra-plan dependency integrity: every dependency id must
// refer to a step within the plan, and the dependency graph must be acyclic.
func (p *Plan) Validate() error {
	byID := make(map[int]*PlanStep, len(p.Steps))
	for _, step := range p.Steps {
		if _, dup := byID[step.ID]; dup {
			return &PlanError{Reason: "duplicate step id", StepID: step.ID}
		}
		byID[step.ID] = step
	}
	for _, step := range p.Steps {
		for _, dep := range step.Dependencies {
			if _, ok := byID[dep]; !ok {
				return &PlanError{Reason: "dependency refers to unknown step", StepID: step.ID}
			}
		}
	}
	// Cycle detection via iterative DFS with colors.
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := make(map[int]int, len(p.Steps))
	var visit func(id int) bool
	visit = func(id int) bool {
		color[id] = grey
		for _, dep := range byID[id].Dependencies {
			switch color[dep] {
			case grey:
				return false
			case white:
				if !visit(dep) {
					return false
				}
			}
		}
		color[id] = black
		return true
	}
	for id := range byID {
		if color[id] == white {
			if !visit(id) {
				return &PlanError{Reason: "dependency cycle", StepID: id}
			}
		}
	}
	return nil
}

func (p *Plan) dependenciesMet(step *PlanStep) bool {
	for _, dep := range step.Dependencies {
		depStep := p.Step(dep)
		if depStep == nil || depStep.Status != StepCompleted {
			return false
		}
	}
	return true
}

// PlanError reports a structural problem in a plan.
type PlanError struct {
	Reason string
	StepID int
}

func (e *PlanError) Error() string {
	return "invalid plan: " + e.Reason
}
