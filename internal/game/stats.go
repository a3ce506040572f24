package game

// Stats summarises the rounds finished in one session. Nothing is persisted.
type Stats struct {
	Played    int
	Won       int
	Streak    int
	MaxStreak int
	// Distribution counts wins by number of attempts (index 0 = one attempt).
	Distribution [MaxAttempts]int
}

// Record adds a finished round.
func (s *Stats) Record(r *Round) {
	switch r.State() {
	case StateWon:
		s.Played++
		s.Won++
		s.Streak++
		s.MaxStreak = max(s.MaxStreak, s.Streak)
		if n := r.Attempts(); n >= 1 && n <= MaxAttempts {
			s.Distribution[n-1]++
		}
	case StateLost:
		s.Played++
		s.Streak = 0
	}
}

// WinRate returns the percentage of rounds won, 0 when none were played.
func (s Stats) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return s.Won * 100 / s.Played
}
