package draw

import (
	crand "crypto/rand"
	"errors"
	"math/big"
	"math/rand"
	"sync"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_drawer.go github.com/KirkDiggler/fortune/internal/draw Drawer

// ErrEmptyRange is returned when asked to pick from nothing
var ErrEmptyRange = errors.New("cannot draw from an empty range")

// Drawer picks an index uniformly from [0, n)
type Drawer interface {
	Pick(n int) (int, error)
}

// Config for the drawer
type Config struct {
	// Optional seed for testing. Zero means crypto/rand.
	Seed int64
}

// New creates a drawer. Without a seed every pick comes from crypto/rand so
// outcomes cannot be predicted from earlier spins.
func New(cfg *Config) Drawer {
	if cfg != nil && cfg.Seed != 0 {
		return &seeded{random: rand.New(rand.NewSource(cfg.Seed))}
	}
	return &secure{}
}

type secure struct{}

func (secure) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}

	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// seeded is reproducible across runs. rand.Rand is not safe for concurrent
// use, hence the mutex.
type seeded struct {
	mu     sync.Mutex
	random *rand.Rand
}

func (s *seeded) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n), nil
}
