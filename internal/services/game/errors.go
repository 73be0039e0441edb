package game

// GameError is a deterministic rule violation. These are reported to the
// acting caller only and never change session state.
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound    GameError = "no session exists for this room"
	ErrInvalidPlayerCount GameError = "exactly four players are required"
	ErrInvalidTotalRounds GameError = "total rounds must be between 1 and 10"
	ErrInvalidPhase       GameError = "action is not allowed in the current phase"
	ErrNotSipahi          GameError = "only the sipahi may guess"
	ErrChorUnassigned     GameError = "no player holds the chor card"
	ErrGuessAlreadyMade   GameError = "a guess was already made this round"
	ErrNoGuessYet         GameError = "no guess has been made yet"
	ErrRoundNotComplete   GameError = "the round is not complete"

	ErrNilConfig      GameError = "config cannot be nil"
	ErrNilSessionRepo GameError = "session repository cannot be nil"
	ErrNilClock       GameError = "clock cannot be nil"
	ErrNilShuffler    GameError = "shuffler cannot be nil"
	ErrNilBroadcaster GameError = "broadcaster cannot be nil"
)

// Kind returns a stable machine-readable identifier for the rejection,
// used in the error payload sent back to the acting viewer.
func (e GameError) Kind() string {
	switch e {
	case ErrSessionNotFound:
		return "session_not_found"
	case ErrInvalidPlayerCount:
		return "invalid_player_count"
	case ErrInvalidTotalRounds:
		return "invalid_total_rounds"
	case ErrInvalidPhase:
		return "invalid_phase"
	case ErrNotSipahi:
		return "not_sipahi"
	case ErrChorUnassigned:
		return "chor_unassigned"
	case ErrGuessAlreadyMade:
		return "guess_already_made"
	case ErrNoGuessYet:
		return "no_guess_yet"
	case ErrRoundNotComplete:
		return "round_not_complete"
	default:
		return "internal"
	}
}
