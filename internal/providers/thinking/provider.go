package thinking

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wardfs/wardfs/internal/infrastructure/logging"
	"github.com/wardfs/wardfs/internal/types"
)

// Thought is one validated step of a reasoning chain.
type Thought struct {
	Thought           string `json:"thought"`
	ThoughtNumber     int    `json:"thoughtNumber"`
	TotalThoughts     int    `json:"totalThoughts"`
	NextThoughtNeeded bool   `json:"nextThoughtNeeded"`
	IsRevision        bool   `json:"isRevision,omitempty"`
	RevisesThought    int    `json:"revisesThought,omitempty"`
	BranchFromThought int    `json:"branchFromThought,omitempty"`
	BranchID          string `json:"branchId,omitempty"`
	NeedsMoreThoughts bool   `json:"needsMoreThoughts,omitempty"`
}

// Provider records sequential reasoning steps with revision and branch
// tracking. History is process-lifetime state guarded by a mutex.
type Provider struct {
	mu       sync.Mutex
	history  []Thought
	branches map[string][]Thought
	logger   *logging.Logger
}

// NewProvider creates a sequential thinking provider
func NewProvider(logger *logging.Logger) *Provider {
	return &Provider{
		branches: make(map[string][]Thought),
		logger:   logger.Named("thinking"),
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "thinking",
		Name:        "Sequential Thinking Service",
		Description: "Step-by-step reasoning with revisions and branches",
		Category:    types.CategoryReasoning,
		Capabilities: []string{
			"sequential", "revision", "branching",
		},
		Tools: []types.Tool{
			{
				ID:          "thinking.sequential",
				Name:        "Sequential Thought",
				Description: "Record one step of a dynamic, revisable reasoning chain",
				Parameters: []types.Parameter{
					{Name: "thought", Type: "string", Description: "The reasoning step", Required: true},
					{Name: "thoughtNumber", Type: "number", Description: "Position in the chain (1-based)", Required: true},
					{Name: "totalThoughts", Type: "number", Description: "Current estimate of chain length", Required: true},
					{Name: "nextThoughtNeeded", Type: "boolean", Description: "Whether another step follows", Required: true},
					{Name: "isRevision", Type: "boolean", Description: "Marks a revision of an earlier step", Required: false},
					{Name: "revisesThought", Type: "number", Description: "Step being revised", Required: false},
					{Name: "branchFromThought", Type: "number", Description: "Step this branch forks from", Required: false},
					{Name: "branchId", Type: "string", Description: "Branch identifier", Required: false},
					{Name: "needsMoreThoughts", Type: "boolean", Description: "Chain needs extending past the estimate", Required: false},
				},
				Returns: "object",
			},
		},
	}
}

// Execute runs a thinking tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "thinking.sequential":
		return p.sequential(params)
	default:
		msg := "unknown tool: " + toolID
		return &types.Result{Success: false, Error: &msg}, nil
	}
}

func (p *Provider) sequential(params map[string]interface{}) (*types.Result, error) {
	thought, err := parseThought(params)
	if err != nil {
		msg := err.Error()
		return &types.Result{Success: false, Error: &msg}, nil
	}

	// The estimate grows when the chain outruns it.
	if thought.ThoughtNumber > thought.TotalThoughts {
		thought.TotalThoughts = thought.ThoughtNumber
	}

	p.mu.Lock()
	p.history = append(p.history, thought)
	if thought.BranchFromThought > 0 && thought.BranchID != "" {
		p.branches[thought.BranchID] = append(p.branches[thought.BranchID], thought)
	}
	branchIDs := make([]string, 0, len(p.branches))
	for id := range p.branches {
		branchIDs = append(branchIDs, id)
	}
	historyLen := len(p.history)
	p.mu.Unlock()

	p.logger.Info("thought recorded",
		zap.String("rendered", renderThought(thought)),
		zap.Int("number", thought.ThoughtNumber),
		zap.Int("total", thought.TotalThoughts),
	)

	return &types.Result{
		Success: true,
		Data: map[string]interface{}{
			"thoughtNumber":        thought.ThoughtNumber,
			"totalThoughts":        thought.TotalThoughts,
			"nextThoughtNeeded":    thought.NextThoughtNeeded,
			"branches":             branchIDs,
			"thoughtHistoryLength": historyLen,
		},
	}, nil
}

func parseThought(params map[string]interface{}) (Thought, error) {
	var t Thought

	text, ok := params["thought"].(string)
	if !ok || text == "" {
		return t, fmt.Errorf("thought must be a non-empty string")
	}

	number, ok := intParam(params["thoughtNumber"])
	if !ok || number < 1 {
		return t, fmt.Errorf("thoughtNumber must be a positive integer")
	}

	total, ok := intParam(params["totalThoughts"])
	if !ok || total < 1 {
		return t, fmt.Errorf("totalThoughts must be a positive integer")
	}

	next, ok := params["nextThoughtNeeded"].(bool)
	if !ok {
		return t, fmt.Errorf("nextThoughtNeeded must be a boolean")
	}

	t = Thought{
		Thought:           text,
		ThoughtNumber:     number,
		TotalThoughts:     total,
		NextThoughtNeeded: next,
	}

	if v, ok := params["isRevision"].(bool); ok {
		t.IsRevision = v
	}
	if v, ok := intParam(params["revisesThought"]); ok {
		t.RevisesThought = v
	}
	if v, ok := intParam(params["branchFromThought"]); ok {
		t.BranchFromThought = v
	}
	if v, ok := params["branchId"].(string); ok {
		t.BranchID = v
	}
	if v, ok := params["needsMoreThoughts"].(bool); ok {
		t.NeedsMoreThoughts = v
	}

	return t, nil
}

// intParam accepts the numeric shapes JSON decoding produces.
func intParam(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// renderThought draws the step as a bordered box for log output.
func renderThought(t Thought) string {
	prefix := "Thought"
	suffix := ""
	switch {
	case t.IsRevision:
		prefix = "Revision"
		suffix = fmt.Sprintf(" (revising thought %d)", t.RevisesThought)
	case t.BranchFromThought > 0:
		prefix = "Branch"
		suffix = fmt.Sprintf(" (from thought %d, id: %s)", t.BranchFromThought, t.BranchID)
	}

	header := fmt.Sprintf("%s %d/%d%s", prefix, t.ThoughtNumber, t.TotalThoughts, suffix)
	width := len(header)
	if len(t.Thought) > width {
		width = len(t.Thought)
	}
	width += 2

	border := strings.Repeat("-", width)
	return fmt.Sprintf("\n+%s+\n| %-*s |\n+%s+\n| %-*s |\n+%s+",
		border, width-2, header, border, width-2, t.Thought, border)
}
