package game

import (
	"strings"
	"testing"
)

func fixedTarget(n int) func() int {
	return func() int { return n }
}

func TestSingleGuessFeedback(t *testing.T) {
	s := NewSingle()
	s.newTarget = fixedTarget(42)
	s.Start(DifficultyMedium)

	cases := []struct {
		guess int
		want  string
	}{
		{50, "50 is too high! Try again. Guesses left: 4"},
		{10, "10 is too low! Try again. Guesses left: 3"},
		{42, "Congratulations! 42 is the number! You guessed it in 3 tries!"},
	}

	for _, tc := range cases {
		if got := s.Guess(tc.guess); got != tc.want {
			t.Fatalf("Guess(%d) = %q; want %q", tc.guess, got, tc.want)
		}
	}

	if s.Attempts() != 3 {
		t.Fatalf("Attempts() = %d; want 3", s.Attempts())
	}
}

func TestSingleRunsOutOfChances(t *testing.T) {
	s := NewSingle()
	s.newTarget = fixedTarget(42)
	s.Start(DifficultyHard)

	for i := 0; i < 2; i++ {
		if got := s.Guess(1); !strings.Contains(got, "too low") {
			t.Fatalf("guess %d: got %q; want too-low feedback", i+1, got)
		}
	}

	got := s.Guess(1)
	if !strings.Contains(got, "Game over") || !strings.Contains(got, "42") {
		t.Fatalf("final guess: got %q; want game-over feedback naming the target", got)
	}
}

func TestSingleStartResetsAttempts(t *testing.T) {
	s := NewSingle()
	s.newTarget = fixedTarget(7)
	s.Start(DifficultyEasy)

	s.Guess(50)
	s.Guess(60)
	s.Start(DifficultyEasy)

	if s.Attempts() != 0 {
		t.Fatalf("Attempts() after restart = %d; want 0", s.Attempts())
	}
}

func TestNewTargetRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if n := NewTarget(); n < 1 || n > 100 {
			t.Fatalf("NewTarget() = %d; want within [1,100]", n)
		}
	}
}
