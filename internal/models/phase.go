package models

// Phase represents the current stage of a round's lifecycle
type Phase string

const (
	// PhaseRoleAssignment indicates a session exists but roles have not been dealt
	PhaseRoleAssignment Phase = "role-assignment"

	// PhaseCardDistribution indicates roles are dealt and the sipahi may guess
	PhaseCardDistribution Phase = "card-distribution"

	// PhaseReveal indicates the guess is resolved and all cards are face up
	PhaseReveal Phase = "reveal"

	// PhaseScoring indicates scores are being applied
	PhaseScoring Phase = "scoring"

	// PhaseRoundComplete indicates the round is scored and the next may begin
	PhaseRoundComplete Phase = "round-complete"

	// PhaseGameFinished indicates the final round is scored; terminal
	PhaseGameFinished Phase = "game-finished"
)

// GuessResolved reports whether the phase implies a resolved guess for the
// current round. The session invariant ties guess presence to these phases.
func (p Phase) GuessResolved() bool {
	switch p {
	case PhaseReveal, PhaseScoring, PhaseRoundComplete, PhaseGameFinished:
		return true
	default:
		return false
	}
}
