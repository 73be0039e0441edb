package game

import "github.com/khelghar/rajamantri/internal/models"

// Base point values per role. These are rules, not stored data.
var rolePoints = map[models.Role]int{
	models.RoleRaja:   1000,
	models.RoleMantri: 800,
	models.RoleSipahi: 500,
	models.RoleChor:   0,
}

// applyScores awards every player their role's base value, applies the
// wrong-guess transfer and returns the per-player breakdown in seat
// order. The transfer moves exactly the sipahi base value from the
// sipahi's cumulative total to the chor's; totals are never swapped
// outright, which would make the rule order-dependent.
//
// The guess check is enforced here as well as in the state machine so
// the engine stays safe if invoked directly.
func applyScores(sess *models.Session) ([]models.RoundScore, error) {
	if sess.Guess == nil {
		return nil, ErrNoGuessYet
	}

	for _, p := range sess.Players {
		p.Points += rolePoints[p.Role]
	}

	if !sess.Guess.IsCorrect {
		sipahi := sess.PlayerByRole(models.RoleSipahi)
		chor := sess.PlayerByRole(models.RoleChor)

		if sipahi != nil && chor != nil {
			transfer := rolePoints[models.RoleSipahi]
			sipahi.Points -= transfer
			chor.Points += transfer
		}
	}

	scores := make([]models.RoundScore, 0, len(sess.Players))
	for _, p := range sess.Players {
		scores = append(scores, models.RoundScore{
			PlayerName:  p.Name,
			Role:        p.Role,
			Points:      rolePoints[p.Role],
			TotalPoints: p.Points,
		})
	}

	return scores, nil
}
