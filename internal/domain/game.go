package domain

// Game aggregates one optional shoe and the set of registered players,
// keyed by a caller-supplied id. The shoe is absent until the first deck is
// added. Player order is insertion order.
type Game struct {
	ID      int       `json:"gameId"`
	Players []*Player `json:"players"`
	Shoe    *Shoe     `json:"shoe,omitempty"`
}

// NewGame returns a game with no players and no shoe.
func NewGame(id int) *Game {
	return &Game{ID: id}
}

// AddPlayer appends the player to the game.
func (g *Game) AddPlayer(player *Player) {
	g.Players = append(g.Players, player)
}

// RemovePlayer deletes the player with the given id, preserving the order of
// the rest. It reports whether a player was removed.
func (g *Game) RemovePlayer(playerID int) bool {
	for i, p := range g.Players {
		if p.ID == playerID {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	players := make([]*Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = p.Clone()
	}
	return &Game{ID: g.ID, Players: players, Shoe: g.Shoe.Clone()}
}
