package enemy

import (
	_ "embed"
	"fmt"

	"github.com/d5/tengo/v2"
)

//go:embed chaser.tengo
var chaserSource []byte

// Brain runs the enemy's scripted state machine. The script sees two
// globals, state (current state name) and dist (tile distance to the
// player), and assigns the chosen state to next. Keeping the decision
// in a script lets the chase tuning change without a rebuild.
type Brain struct {
	compiled *tengo.Compiled
}

// NewBrain compiles the embedded chaser script.
func NewBrain() (*Brain, error) {
	return newBrain(chaserSource)
}

func newBrain(src []byte) (*Brain, error) {
	script := tengo.NewScript(src)
	if err := script.Add("state", ""); err != nil {
		return nil, fmt.Errorf("enemy: add state: %w", err)
	}
	if err := script.Add("dist", 0); err != nil {
		return nil, fmt.Errorf("enemy: add dist: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("enemy: compile brain: %w", err)
	}
	return &Brain{compiled: compiled}, nil
}

// Next evaluates one step of the state machine and returns the state
// the enemy should be in.
func (b *Brain) Next(state string, dist int) (string, error) {
	if err := b.compiled.Set("state", state); err != nil {
		return state, fmt.Errorf("enemy: set state: %w", err)
	}
	if err := b.compiled.Set("dist", dist); err != nil {
		return state, fmt.Errorf("enemy: set dist: %w", err)
	}
	if err := b.compiled.Run(); err != nil {
		return state, fmt.Errorf("enemy: run brain: %w", err)
	}
	next := b.compiled.Get("next").String()
	if next == "" {
		return state, fmt.Errorf("enemy: brain chose empty state")
	}
	return next, nil
}
