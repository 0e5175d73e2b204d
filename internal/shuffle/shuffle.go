// Package shuffle provides in-place randomization of card sequences.
package shuffle

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"card-game-service/internal/domain"
)

// Shuffler permutes card slices uniformly at random. It owns its random
// source behind a mutex so concurrent games can share one instance.
type Shuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Shuffler seeded from crypto-quality entropy.
func New() *Shuffler {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return NewSeeded(time.Now().UnixNano())
	}
	return NewSeeded(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewSeeded returns a deterministic Shuffler for tests.
func NewSeeded(seed int64) *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle permutes the cards in place.
func (s *Shuffler) Shuffle(cards []domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rnd.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
