package game

import (
	"time"

	"github.com/khelghar/rajamantri/internal/models"
	"github.com/khelghar/rajamantri/internal/shuffle"
)

// The transitions below validate everything before touching the session,
// so a failed transition leaves the record exactly as it was loaded.

// startRound deals a fresh round: new shuffle, new cards, cleared guess.
// Legal from role-assignment (first round) and round-complete (later
// rounds) only.
func startRound(sess *models.Session, shuffler shuffle.Shuffler, now time.Time) error {
	if sess.Phase != models.PhaseRoleAssignment && sess.Phase != models.PhaseRoundComplete {
		return ErrInvalidPhase
	}

	roles := shuffler.Shuffle()
	for i, p := range sess.Players {
		p.Role = roles[i]
	}

	// Cards are rebuilt wholesale each round; raja and sipahi start
	// face up, the others stay hidden until the guess resolves.
	cards := make([]*models.Card, 0, len(sess.Players))
	for _, p := range sess.Players {
		cards = append(cards, &models.Card{
			PlayerID:   p.ID,
			Role:       p.Role,
			IsRevealed: p.Role.IsPublic(),
		})
	}

	sess.Cards = cards
	sess.Guess = nil
	sess.Phase = models.PhaseCardDistribution
	sess.UpdatedAt = now

	return nil
}

// submitGuess records the sipahi's accusation, reveals all cards and
// moves the session to the reveal phase. The guess-already-made check
// runs first so a duplicate submission reports as such even though the
// phase has already moved on.
func submitGuess(sess *models.Session, viewerID, targetID string, now time.Time) error {
	if sess.Guess != nil {
		return ErrGuessAlreadyMade
	}

	if sess.Phase != models.PhaseCardDistribution {
		return ErrInvalidPhase
	}

	sipahi := sess.PlayerByRole(models.RoleSipahi)
	if sipahi == nil || sipahi.ID != viewerID {
		return ErrNotSipahi
	}

	// Should not happen after a deal, but enforced anyway
	chor := sess.PlayerByRole(models.RoleChor)
	if chor == nil {
		return ErrChorUnassigned
	}

	sess.Guess = &models.Guess{
		GuessedPlayerID: targetID,
		IsCorrect:       targetID == chor.ID,
		ResolvedAt:      now,
	}

	for _, c := range sess.Cards {
		c.IsRevealed = true
	}

	sess.Phase = models.PhaseReveal
	sess.UpdatedAt = now

	return nil
}

// calculateScores scores the revealed round, appends the immutable
// round result and either completes the round or finishes the game.
// The guess check runs first: scoring before any guess reports the
// missing guess, not the phase.
func calculateScores(sess *models.Session, now time.Time) (models.RoundResult, error) {
	if sess.Guess == nil {
		return models.RoundResult{}, ErrNoGuessYet
	}

	if sess.Phase != models.PhaseReveal {
		return models.RoundResult{}, ErrInvalidPhase
	}

	scores, err := applyScores(sess)
	if err != nil {
		return models.RoundResult{}, err
	}

	result := models.RoundResult{
		Round:   sess.CurrentRound,
		Results: scores,
	}
	sess.RoundResults = append(sess.RoundResults, result)

	if sess.CurrentRound < sess.TotalRounds {
		sess.Phase = models.PhaseRoundComplete
	} else {
		sess.Phase = models.PhaseGameFinished
	}
	sess.UpdatedAt = now

	return result, nil
}

// advanceRound moves a completed round to the next deal
func advanceRound(sess *models.Session, shuffler shuffle.Shuffler, now time.Time) error {
	if sess.Phase != models.PhaseRoundComplete {
		return ErrRoundNotComplete
	}

	sess.CurrentRound++

	return startRound(sess, shuffler, now)
}
