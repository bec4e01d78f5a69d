// Package document converts sessions to and from the JSON document layout
// shared by the file and bbolt repositories: one document per date, each
// game holding the raw throws of its ten frames.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/bft-labs/bowltrack/internal/domain"
)

// Session is the stored form of a domain.Session.
type Session struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// Game is the stored form of a domain.Game. Frames holds the throws of
// each frame in order; an unrecorded frame is an empty list.
type Game struct {
	Number int     `json:"game"`
	Frames [][]int `json:"frames"`
}

// FromSession converts a domain session to its document form.
func FromSession(s *domain.Session) Session {
	doc := Session{
		Date:  s.Date().Key(),
		Games: make([]Game, 0, s.Len()),
	}
	for _, g := range s.Games() {
		doc.Games = append(doc.Games, FromGame(g))
	}
	return doc
}

// FromGame converts a domain game to its document form.
func FromGame(g domain.Game) Game {
	doc := Game{Number: g.Number(), Frames: make([][]int, 0, domain.FramesPerGame)}
	for _, f := range g.Frames() {
		doc.Frames = append(doc.Frames, f.Throws())
	}
	return doc
}

// ToSession converts the document back to a domain session. Game numbers
// are kept as stored.
func (d Session) ToSession() (*domain.Session, error) {
	date, err := domain.ParseKey(d.Date)
	if err != nil {
		return nil, err
	}
	games := make([]domain.Game, 0, len(d.Games))
	for _, gd := range d.Games {
		g, err := gd.ToGame()
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", gd.Number, err)
		}
		games = append(games, g)
	}
	return domain.NewSessionWithGames(date, games), nil
}

// ToGame converts the document back to a domain game.
func (d Game) ToGame() (domain.Game, error) {
	return domain.NewGameFromThrows(d.Number, d.Frames)
}

// Marshal encodes a session as indented JSON.
func Marshal(s *domain.Session) ([]byte, error) {
	return json.MarshalIndent(FromSession(s), "", "  ")
}

// Unmarshal decodes a session written by Marshal.
func Unmarshal(data []byte) (*domain.Session, error) {
	var doc Session
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return doc.ToSession()
}
