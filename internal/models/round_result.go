package models

// RoundScore is one player's line in a round's scoring breakdown
type RoundScore struct {
	// PlayerName is the display name at the time of scoring
	PlayerName string

	// Role is the role the player held this round
	Role Role

	// Points is the base value awarded for the role this round
	Points int

	// TotalPoints is the cumulative total after this round, including
	// any wrong-guess transfer
	TotalPoints int
}

// RoundResult is the immutable record of one scored round. The ordered
// sequence of results is the game's audit trail; never rewritten.
type RoundResult struct {
	// Round is the 1-based round number
	Round int

	// Results holds one entry per player, in seat order
	Results []RoundScore
}
