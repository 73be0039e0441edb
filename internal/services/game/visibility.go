package game

import (
	"sort"
	"time"

	"github.com/khelghar/rajamantri/internal/models"
)

// RedactedView is the wire-ready projection of a session for one viewer.
// It is recomputed from the session for every viewer on every broadcast;
// nothing here is cached or shared between viewers.
type RedactedView struct {
	RoomCode     string            `json:"roomCode"`
	Phase        models.Phase      `json:"phase"`
	CurrentRound int               `json:"currentRound"`
	TotalRounds  int               `json:"totalRounds"`
	Players      []ViewPlayer      `json:"players"`
	Cards        []ViewCard        `json:"cards"`
	Guess        *ViewGuess        `json:"guess,omitempty"`
	RoundResults []ViewRoundResult `json:"roundResults"`
	CanAct       bool              `json:"canAct"`
	Ranking      []RankEntry       `json:"ranking,omitempty"`
}

// ViewPlayer is a player as any viewer may see them
type ViewPlayer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ViewCard is a card as one viewer may see it. Role is empty while the
// card is hidden from this viewer; owner identity stays visible.
type ViewCard struct {
	PlayerID   string      `json:"playerId"`
	PlayerName string      `json:"playerName"`
	Role       models.Role `json:"role,omitempty"`
	IsRevealed bool        `json:"isRevealed"`
}

// ViewGuess mirrors the round's resolved guess
type ViewGuess struct {
	GuessedPlayerID string    `json:"guessedPlayerId"`
	IsCorrect       bool      `json:"isCorrect"`
	ResolvedAt      time.Time `json:"resolvedAt"`
}

// ViewRoundScore is one line of a scored round
type ViewRoundScore struct {
	PlayerName  string      `json:"playerName"`
	Role        models.Role `json:"role"`
	Points      int         `json:"points"`
	TotalPoints int         `json:"totalPoints"`
}

// ViewRoundResult is one scored round in the audit trail
type ViewRoundResult struct {
	Round   int              `json:"round"`
	Results []ViewRoundScore `json:"results"`
}

// RankEntry is one row of the final standings
type RankEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Points     int    `json:"points"`
}

// Redact computes the view of a session one viewer is allowed to see.
// A card's role is shown only if the phase reveals everything, the role
// announces itself (raja, sipahi), or the viewer owns the card.
func Redact(sess *models.Session, viewerID string) *RedactedView {
	view := &RedactedView{
		RoomCode:     sess.RoomCode,
		Phase:        sess.Phase,
		CurrentRound: sess.CurrentRound,
		TotalRounds:  sess.TotalRounds,
		Players:      make([]ViewPlayer, 0, len(sess.Players)),
		Cards:        make([]ViewCard, 0, len(sess.Cards)),
		RoundResults: make([]ViewRoundResult, 0, len(sess.RoundResults)),
	}

	for _, p := range sess.Players {
		view.Players = append(view.Players, ViewPlayer{
			ID:     p.ID,
			Name:   p.Name,
			Points: p.Points,
		})
	}

	fullReveal := sess.Phase.GuessResolved()

	for _, c := range sess.Cards {
		visible := fullReveal || c.Role.IsPublic() || c.PlayerID == viewerID

		vc := ViewCard{
			PlayerID:   c.PlayerID,
			IsRevealed: visible,
		}
		if p := sess.PlayerByID(c.PlayerID); p != nil {
			vc.PlayerName = p.Name
		}
		if visible {
			vc.Role = c.Role
		}

		view.Cards = append(view.Cards, vc)
	}

	if sess.Guess != nil {
		view.Guess = &ViewGuess{
			GuessedPlayerID: sess.Guess.GuessedPlayerID,
			IsCorrect:       sess.Guess.IsCorrect,
			ResolvedAt:      sess.Guess.ResolvedAt,
		}
	}

	for _, rr := range sess.RoundResults {
		vr := ViewRoundResult{
			Round:   rr.Round,
			Results: make([]ViewRoundScore, 0, len(rr.Results)),
		}
		for _, rs := range rr.Results {
			vr.Results = append(vr.Results, ViewRoundScore{
				PlayerName:  rs.PlayerName,
				Role:        rs.Role,
				Points:      rs.Points,
				TotalPoints: rs.TotalPoints,
			})
		}
		view.RoundResults = append(view.RoundResults, vr)
	}

	if sipahi := sess.PlayerByRole(models.RoleSipahi); sipahi != nil {
		view.CanAct = sess.Phase == models.PhaseCardDistribution &&
			sess.Guess == nil &&
			sipahi.ID == viewerID
	}

	if sess.Phase == models.PhaseGameFinished {
		view.Ranking = ranking(sess)
	}

	return view
}

// ranking sorts players by descending points; ties keep seat order, so
// the sort must be stable. Rank 1 is the winner.
func ranking(sess *models.Session) []RankEntry {
	entries := make([]RankEntry, 0, len(sess.Players))
	for _, p := range sess.Players {
		entries = append(entries, RankEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Points:     p.Points,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
