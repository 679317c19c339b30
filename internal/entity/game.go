package entity

import "time"

const (
	LocalType   = "local"
	WithBotType = "bot"
)

// GameState is a snapshot of one engine.
type GameState struct {
	Grid        Grid    `json:"grid"`
	Turn        Player  `json:"turn"`
	Terminated  bool    `json:"terminated"`
	LastOutcome Outcome `json:"last_outcome"`
}

// Game is a hosted session around a single engine.
type Game struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	State     GameState `json:"state"`
	Winner    Player    `json:"winner,omitempty"`
	BotMark   Player    `json:"bot_mark,omitempty"`
	Moves     int       `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGame(id, gameType string) *Game {
	now := time.Now().UTC()

	return &Game{
		ID:   id,
		Type: gameType,
		State: GameState{
			Turn:        PlayerX,
			LastOutcome: OutcomeOngoing,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (that *Game) IsFinished() bool {
	return that.State.Terminated
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) IsDraw() bool {
	return that.State.Terminated && that.State.LastOutcome == OutcomeDraw
}

// Record - stores the engine snapshot taken after mover's move.
func (that *Game) Record(mover Player, state GameState) {
	that.State = state
	that.Moves++
	that.UpdatedAt = time.Now().UTC()

	if state.LastOutcome.IsWin() {
		that.Winner = mover
	}
}

func IsKnownGameType(gameType string) bool {
	return gameType == LocalType || gameType == WithBotType
}
