package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khelghar/rajamantri/internal/models"
)

// fixedShuffler always deals the same permutation
type fixedShuffler struct {
	roles [4]models.Role
}

func (f *fixedShuffler) Shuffle() [4]models.Role {
	return f.roles
}

var canonicalDeal = &fixedShuffler{
	roles: [4]models.Role{models.RoleRaja, models.RoleMantri, models.RoleChor, models.RoleSipahi},
}

func newTestSession(phase models.Phase) *models.Session {
	return &models.Session{
		RoomCode:     "ABC123",
		Phase:        phase,
		CurrentRound: 1,
		TotalRounds:  3,
		Players: []*models.Player{
			{ID: "p1", Name: "Asha"},
			{ID: "p2", Name: "Bina"},
			{ID: "p3", Name: "Chand"},
			{ID: "p4", Name: "Dev"},
		},
	}
}

var testNow = time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)

func TestStartRoundDealsCards(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)

	err := startRound(sess, canonicalDeal, testNow)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseCardDistribution, sess.Phase)
	assert.Nil(t, sess.Guess)
	require.Len(t, sess.Cards, 4)

	// Roles land in seat order of the dealt permutation
	assert.Equal(t, models.RoleRaja, sess.Players[0].Role)
	assert.Equal(t, models.RoleMantri, sess.Players[1].Role)
	assert.Equal(t, models.RoleChor, sess.Players[2].Role)
	assert.Equal(t, models.RoleSipahi, sess.Players[3].Role)

	// Raja and sipahi start face up, mantri and chor hidden
	assert.True(t, sess.Cards[0].IsRevealed)
	assert.False(t, sess.Cards[1].IsRevealed)
	assert.False(t, sess.Cards[2].IsRevealed)
	assert.True(t, sess.Cards[3].IsRevealed)
}

func TestStartRoundRejectsWrongPhase(t *testing.T) {
	for _, phase := range []models.Phase{
		models.PhaseCardDistribution,
		models.PhaseReveal,
		models.PhaseGameFinished,
	} {
		sess := newTestSession(phase)

		err := startRound(sess, canonicalDeal, testNow)
		require.ErrorIs(t, err, ErrInvalidPhase, "phase %s", phase)
		assert.Empty(t, sess.Cards)
	}
}

func TestSubmitGuessCorrect(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)
	require.NoError(t, startRound(sess, canonicalDeal, testNow))

	err := submitGuess(sess, "p4", "p3", testNow)
	require.NoError(t, err)

	require.NotNil(t, sess.Guess)
	assert.True(t, sess.Guess.IsCorrect)
	assert.Equal(t, "p3", sess.Guess.GuessedPlayerID)
	assert.Equal(t, testNow, sess.Guess.ResolvedAt)
	assert.Equal(t, models.PhaseReveal, sess.Phase)

	for _, c := range sess.Cards {
		assert.True(t, c.IsRevealed)
	}
}

func TestSubmitGuessIncorrect(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)
	require.NoError(t, startRound(sess, canonicalDeal, testNow))

	err := submitGuess(sess, "p4", "p2", testNow)
	require.NoError(t, err)

	require.NotNil(t, sess.Guess)
	assert.False(t, sess.Guess.IsCorrect)
}

func TestSubmitGuessIdempotency(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)
	require.NoError(t, startRound(sess, canonicalDeal, testNow))
	require.NoError(t, submitGuess(sess, "p4", "p3", testNow))

	firstGuess := *sess.Guess

	// The second call reports the duplicate and changes nothing
	err := submitGuess(sess, "p4", "p2", testNow.Add(time.Minute))
	require.ErrorIs(t, err, ErrGuessAlreadyMade)
	assert.Equal(t, firstGuess, *sess.Guess)
	assert.Equal(t, models.PhaseReveal, sess.Phase)
}

func TestSubmitGuessOnlySipahiMayAct(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)
	require.NoError(t, startRound(sess, canonicalDeal, testNow))

	for _, viewer := range []string{"p1", "p2", "p3", "stranger"} {
		err := submitGuess(sess, viewer, "p3", testNow)
		require.ErrorIs(t, err, ErrNotSipahi, "viewer %s", viewer)
		assert.Nil(t, sess.Guess)
	}
}

func TestSubmitGuessChorUnassigned(t *testing.T) {
	sess := newTestSession(models.PhaseCardDistribution)
	sess.Players[3].Role = models.RoleSipahi

	err := submitGuess(sess, "p4", "p1", testNow)
	require.ErrorIs(t, err, ErrChorUnassigned)
	assert.Nil(t, sess.Guess)
}

func TestSubmitGuessWrongPhase(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)

	err := submitGuess(sess, "p4", "p3", testNow)
	require.ErrorIs(t, err, ErrInvalidPhase)
}

func TestCalculateScoresBeforeGuess(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)
	require.NoError(t, startRound(sess, canonicalDeal, testNow))

	_, err := calculateScores(sess, testNow)
	require.ErrorIs(t, err, ErrNoGuessYet)
	assert.Empty(t, sess.RoundResults)
	assert.Equal(t, models.PhaseCardDistribution, sess.Phase)
}

func TestCalculateScoresCompletesRound(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)
	require.NoError(t, startRound(sess, canonicalDeal, testNow))
	require.NoError(t, submitGuess(sess, "p4", "p3", testNow))

	result, err := calculateScores(sess, testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Round)
	require.Len(t, result.Results, 4)
	assert.Equal(t, models.PhaseRoundComplete, sess.Phase)
	require.Len(t, sess.RoundResults, 1)
}

func TestCalculateScoresFinishesFinalRound(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)
	sess.TotalRounds = 1
	require.NoError(t, startRound(sess, canonicalDeal, testNow))
	require.NoError(t, submitGuess(sess, "p4", "p3", testNow))

	_, err := calculateScores(sess, testNow)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseGameFinished, sess.Phase)
}

func TestCalculateScoresTwiceRejected(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)
	require.NoError(t, startRound(sess, canonicalDeal, testNow))
	require.NoError(t, submitGuess(sess, "p4", "p3", testNow))

	_, err := calculateScores(sess, testNow)
	require.NoError(t, err)

	// Round is complete; scoring again is a phase violation and the
	// audit trail stays untouched
	_, err = calculateScores(sess, testNow)
	require.ErrorIs(t, err, ErrInvalidPhase)
	assert.Len(t, sess.RoundResults, 1)
}

func TestAdvanceRoundDealsNextRound(t *testing.T) {
	sess := newTestSession(models.PhaseRoleAssignment)
	require.NoError(t, startRound(sess, canonicalDeal, testNow))
	require.NoError(t, submitGuess(sess, "p4", "p2", testNow))

	_, err := calculateScores(sess, testNow)
	require.NoError(t, err)

	err = advanceRound(sess, canonicalDeal, testNow)
	require.NoError(t, err)

	assert.Equal(t, 2, sess.CurrentRound)
	assert.Equal(t, models.PhaseCardDistribution, sess.Phase)
	assert.Nil(t, sess.Guess)
	require.Len(t, sess.Cards, 4)
	assert.False(t, sess.Cards[2].IsRevealed)

	// The previous round's record survives the new deal
	require.Len(t, sess.RoundResults, 1)
}

func TestAdvanceRoundRequiresCompletedRound(t *testing.T) {
	for _, phase := range []models.Phase{
		models.PhaseRoleAssignment,
		models.PhaseCardDistribution,
		models.PhaseReveal,
		models.PhaseGameFinished,
	} {
		sess := newTestSession(phase)
		sess.CurrentRound = 1

		err := advanceRound(sess, canonicalDeal, testNow)
		require.ErrorIs(t, err, ErrRoundNotComplete, "phase %s", phase)
		assert.Equal(t, 1, sess.CurrentRound)
	}
}
