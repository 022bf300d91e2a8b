package entity

// AIKind selects the behavior a monster runs on its activation.
type AIKind string

const (
	// AIBasic chases the player when visible and attacks when adjacent.
	AIBasic AIKind = "basic"
	// AIConfused stumbles one random step per activation until the timer
	// runs out, then restores the saved behavior.
	AIConfused AIKind = "confused"
)

// AIState is the behavior tag plus the bounded-depth confusion payload.
// Confusion saves the behavior it replaced; it never nests.
type AIState struct {
	Kind AIKind `json:"kind"`
	// Saved is the pre-confusion behavior, restored when TurnsLeft goes
	// negative. Only meaningful while Kind is AIConfused.
	Saved AIKind `json:"saved,omitempty"`
	// TurnsLeft counts down once per activation. The effect ends on the
	// activation after it would drop below zero, so it lasts TurnsLeft+1
	// activations from application.
	TurnsLeft int `json:"turnsLeft,omitempty"`
}

// BasicAI returns the default chase-and-attack behavior.
func BasicAI() *AIState {
	return &AIState{Kind: AIBasic}
}

// Confuse wraps the previous behavior in a confusion timer. Re-applying
// confusion to an already-confused state refreshes the timer and keeps the
// original saved behavior, so recovery always restores the true underlying
// AI rather than a stale confusion.
func Confuse(prev *AIState, turns int) *AIState {
	saved := AIBasic
	if prev != nil {
		if prev.Kind == AIConfused {
			saved = prev.Saved
		} else {
			saved = prev.Kind
		}
	}
	return &AIState{Kind: AIConfused, Saved: saved, TurnsLeft: turns}
}

// Restore returns the saved pre-confusion behavior.
func (s *AIState) Restore() *AIState {
	return &AIState{Kind: s.Saved}
}
