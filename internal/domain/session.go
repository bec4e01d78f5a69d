package domain

import "fmt"

// Session is the set of games bowled on one date. Games are numbered by
// their position, starting at 1.
type Session struct {
	date  Date
	games []Game
}

// SessionStats collects a session's roll-up statistics.
type SessionStats struct {
	Games               int     `json:"games"`
	Average             float64 `json:"average"`
	HighGame            int     `json:"high_game"`
	LowGame             int     `json:"low_game"`
	PinCount            int     `json:"pin_count"`
	StrikeRate          float64 `json:"strike_rate"`
	SpareRate           float64 `json:"spare_rate"`
	OpenFrameRate       float64 `json:"open_frame_rate"`
	CleanFrameRate      float64 `json:"clean_frame_rate"`
	AvgFirstBallPinfall float64 `json:"avg_first_ball_pinfall"`
}

// NewSession returns an empty session for date.
func NewSession(date Date) *Session {
	return &Session{date: date}
}

// NewSessionWithGames returns a session holding games as given. Game numbers
// are kept, so externally numbered data can be checked with IsValid.
func NewSessionWithGames(date Date, games []Game) *Session {
	s := &Session{date: date, games: make([]Game, len(games))}
	copy(s.games, games)
	return s
}

// Date returns the session date.
func (s *Session) Date() Date {
	return s.date
}

// Games returns a copy of the session's games in order.
func (s *Session) Games() []Game {
	out := make([]Game, len(s.games))
	copy(out, s.games)
	return out
}

// Len returns the number of games.
func (s *Session) Len() int {
	return len(s.games)
}

// NextNumber returns the number the next added game will receive.
func (s *Session) NextNumber() int {
	return len(s.games) + 1
}

// AddGame appends g, numbering it after the games already held. Any number
// g carried is ignored. The stored game is returned.
func (s *Session) AddGame(g Game) Game {
	g = g.WithNumber(s.NextNumber())
	s.games = append(s.games, g)
	return g
}

// Game returns the game numbered num.
func (s *Session) Game(num int) (Game, error) {
	if num < 1 || num > len(s.games) {
		return Game{}, fmt.Errorf("%w: game %d on %s", ErrGameNotFound, num, s.date)
	}
	return s.games[num-1], nil
}

// ReplaceGame swaps in g for the game with the same number.
func (s *Session) ReplaceGame(g Game) error {
	if g.Number() < 1 || g.Number() > len(s.games) {
		return fmt.Errorf("%w: game %d on %s", ErrGameNotFound, g.Number(), s.date)
	}
	s.games[g.Number()-1] = g
	return nil
}

// RemoveGame deletes the game numbered num and renumbers the games after it.
func (s *Session) RemoveGame(num int) (Game, error) {
	removed, err := s.Game(num)
	if err != nil {
		return Game{}, err
	}
	s.games = append(s.games[:num-1], s.games[num:]...)
	for i := num - 1; i < len(s.games); i++ {
		s.games[i] = s.games[i].WithNumber(i + 1)
	}
	return removed, nil
}

// IsValid reports whether games are numbered 1..n in order and every game is valid.
func (s *Session) IsValid() bool {
	for i, g := range s.games {
		if g.Number() != i+1 || !g.IsValid() {
			return false
		}
	}
	return true
}

// Average is the mean game score. An empty session averages 0.
func (s *Session) Average() float64 {
	if len(s.games) == 0 {
		return 0
	}
	return float64(s.total(Game.Score)) / float64(len(s.games))
}

// StrikeRate is total strikes over total strike chances, 0 when there were none.
func (s *Session) StrikeRate() float64 {
	return ratio(s.total(Game.NumStrikes), s.total(Game.StrikeChances))
}

// SpareRate is total spares over total spare chances, 0 when there were none.
func (s *Session) SpareRate() float64 {
	return ratio(s.total(Game.NumSpares), s.total(Game.SpareChances))
}

// OpenFrameRate is the share of all frames that were open.
func (s *Session) OpenFrameRate() float64 {
	return ratio(s.total(Game.OpenFrames), len(s.games)*FramesPerGame)
}

// CleanFrameRate is the share of all frames that were a strike or spare.
func (s *Session) CleanFrameRate() float64 {
	return ratio(s.total(Game.CleanFrames), len(s.games)*FramesPerGame)
}

// AvgFirstBallPinfall is the mean of each game's first-ball average.
func (s *Session) AvgFirstBallPinfall() float64 {
	if len(s.games) == 0 {
		return 0
	}
	var sum float64
	for _, g := range s.games {
		sum += g.AvgFirstBallPinfall()
	}
	return sum / float64(len(s.games))
}

// Stats computes every roll-up statistic at once.
func (s *Session) Stats() SessionStats {
	st := SessionStats{
		Games:               len(s.games),
		Average:             s.Average(),
		PinCount:            s.total(Game.PinCount),
		StrikeRate:          s.StrikeRate(),
		SpareRate:           s.SpareRate(),
		OpenFrameRate:       s.OpenFrameRate(),
		CleanFrameRate:      s.CleanFrameRate(),
		AvgFirstBallPinfall: s.AvgFirstBallPinfall(),
	}
	for i, g := range s.games {
		score := g.Score()
		if i == 0 || score > st.HighGame {
			st.HighGame = score
		}
		if i == 0 || score < st.LowGame {
			st.LowGame = score
		}
	}
	return st
}

func (s *Session) total(metric func(Game) int) int {
	total := 0
	for _, g := range s.games {
		total += metric(g)
	}
	return total
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
