package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khelghar/rajamantri/internal/models"
)

func scoringSession(isCorrect bool) *models.Session {
	return &models.Session{
		RoomCode:     "ABC123",
		Phase:        models.PhaseReveal,
		CurrentRound: 1,
		TotalRounds:  3,
		Players: []*models.Player{
			{ID: "p1", Name: "Asha", Role: models.RoleRaja},
			{ID: "p2", Name: "Bina", Role: models.RoleMantri},
			{ID: "p3", Name: "Chand", Role: models.RoleChor},
			{ID: "p4", Name: "Dev", Role: models.RoleSipahi},
		},
		Guess: &models.Guess{
			GuessedPlayerID: "p3",
			IsCorrect:       isCorrect,
			ResolvedAt:      time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC),
		},
	}
}

func TestApplyScoresRequiresGuess(t *testing.T) {
	sess := scoringSession(true)
	sess.Guess = nil

	_, err := applyScores(sess)
	require.ErrorIs(t, err, ErrNoGuessYet)

	// Session untouched on failure
	for _, p := range sess.Players {
		assert.Zero(t, p.Points)
	}
}

func TestApplyScoresCorrectGuess(t *testing.T) {
	sess := scoringSession(true)

	scores, err := applyScores(sess)
	require.NoError(t, err)
	require.Len(t, scores, 4)

	assert.Equal(t, 1000, sess.PlayerByRole(models.RoleRaja).Points)
	assert.Equal(t, 800, sess.PlayerByRole(models.RoleMantri).Points)
	assert.Equal(t, 0, sess.PlayerByRole(models.RoleChor).Points)
	assert.Equal(t, 500, sess.PlayerByRole(models.RoleSipahi).Points)

	// Total awarded equals the base sum, no transfer
	total := 0
	for _, p := range sess.Players {
		total += p.Points
	}
	assert.Equal(t, 2300, total)
}

func TestApplyScoresIncorrectGuessTransfersSipahiValue(t *testing.T) {
	sess := scoringSession(false)

	scores, err := applyScores(sess)
	require.NoError(t, err)
	require.Len(t, scores, 4)

	// The transfer moves exactly 500 from sipahi to chor; totals are
	// never swapped outright
	assert.Equal(t, 1000, sess.PlayerByRole(models.RoleRaja).Points)
	assert.Equal(t, 800, sess.PlayerByRole(models.RoleMantri).Points)
	assert.Equal(t, 500, sess.PlayerByRole(models.RoleChor).Points)
	assert.Equal(t, 0, sess.PlayerByRole(models.RoleSipahi).Points)

	// Conservation holds: the transfer is zero-sum
	total := 0
	for _, p := range sess.Players {
		total += p.Points
	}
	assert.Equal(t, 2300, total)
}

func TestApplyScoresIncorrectGuessWithExistingTotals(t *testing.T) {
	sess := scoringSession(false)
	sess.PlayerByRole(models.RoleChor).Points = 1500
	sess.PlayerByRole(models.RoleSipahi).Points = 300

	_, err := applyScores(sess)
	require.NoError(t, err)

	// Base then transfer: chor 1500+0+500, sipahi 300+500-500
	assert.Equal(t, 2000, sess.PlayerByRole(models.RoleChor).Points)
	assert.Equal(t, 300, sess.PlayerByRole(models.RoleSipahi).Points)
}

func TestApplyScoresBreakdownInSeatOrder(t *testing.T) {
	sess := scoringSession(true)

	scores, err := applyScores(sess)
	require.NoError(t, err)

	require.Len(t, scores, 4)
	assert.Equal(t, "Asha", scores[0].PlayerName)
	assert.Equal(t, models.RoleRaja, scores[0].Role)
	assert.Equal(t, 1000, scores[0].Points)
	assert.Equal(t, 1000, scores[0].TotalPoints)

	assert.Equal(t, "Dev", scores[3].PlayerName)
	assert.Equal(t, models.RoleSipahi, scores[3].Role)
	assert.Equal(t, 500, scores[3].Points)
	assert.Equal(t, 500, scores[3].TotalPoints)
}
