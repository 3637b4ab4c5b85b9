package game

// Stats tracks the statistics of the current game and the session high score
type Stats struct {
	// Score of the current game
	Score int

	// Level starts at 1 and increments on each wave clear
	Level int

	// ShipsLeft counts the lives remaining
	ShipsLeft int

	// HighScore survives new games for the life of the process
	HighScore int

	// Active gates simulation updates
	Active bool
}

// NewStats creates inactive stats for a fresh process
func NewStats(settings *Settings) *Stats {
	s := &Stats{}
	s.Reset(settings)
	return s
}

// Reset restores the per-game statistics; the high score is left untouched
func (s *Stats) Reset(settings *Settings) {
	s.ShipsLeft = settings.ShipLimit
	s.Score = 0
	s.Level = 1
}

// AddScore adds points and reports whether the high score moved
func (s *Stats) AddScore(points int) bool {
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}
