package game

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// NewTarget draws a target number in [1,100].
func NewTarget() int {
	return rand.IntN(100) + 1
}

// Chances per difficulty.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

func chancesFor(difficulty string) int {
	switch difficulty {
	case DifficultyMedium:
		return 5
	case DifficultyHard:
		return 3
	default:
		return 10
	}
}

// Single is the single-player guessing game: one server-held target,
// a fixed number of chances, plain-text feedback per guess.
type Single struct {
	mu         sync.Mutex
	target     int
	maxChances int
	attempts   int
	newTarget  func() int
}

func NewSingle() *Single {
	s := &Single{newTarget: NewTarget}
	s.target = s.newTarget()
	s.maxChances = chancesFor("")
	return s
}

// Start resets the game with a fresh target and the chance budget
// for the given difficulty.
func (s *Single) Start(difficulty string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maxChances = chancesFor(difficulty)
	s.attempts = 0
	s.target = s.newTarget()
}

// Guess evaluates one guess and returns the feedback text.
func (s *Single) Guess(n int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts++
	left := s.maxChances - s.attempts

	switch {
	case n == s.target:
		return fmt.Sprintf("Congratulations! %d is the number! You guessed it in %d tries!", n, s.attempts)
	case left <= 0:
		return fmt.Sprintf("Game over! The correct number was: %d", s.target)
	case n > s.target:
		return fmt.Sprintf("%d is too high! Try again. Guesses left: %d", n, left)
	default:
		return fmt.Sprintf("%d is too low! Try again. Guesses left: %d", n, left)
	}
}

// Attempts reports how many guesses the current game has used.
func (s *Single) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}
