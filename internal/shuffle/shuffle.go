package shuffle

import (
	"math/rand"
	"time"

	"github.com/khelghar/rajamantri/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/khelghar/rajamantri/internal/shuffle Shuffler

// Shuffler deals the four roles in a random order
type Shuffler interface {
	// Shuffle returns a permutation of the four roles. Every one of the
	// 24 orderings must be equally likely.
	Shuffle() [4]models.Role
}

// Config for the role shuffler
type Config struct {
	// Optional seed for deterministic tests
	Seed int64
}

// FisherYates implements Shuffler with an in-place uniform permutation.
// A comparator-based "sort by coin flip" is not uniform and must not be
// used here.
type FisherYates struct {
	random *rand.Rand
}

// New creates a new role shuffler
func New(cfg *Config) *FisherYates {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &FisherYates{
		random: rand.New(source),
	}
}

// Shuffle returns the four roles in uniformly random order
func (f *FisherYates) Shuffle() [4]models.Role {
	roles := models.Roles
	f.random.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})
	return roles
}
