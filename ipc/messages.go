package ipc

// Inbound message types sent by the host engine.
const (
	TypeHello    = "hello"
	TypeTick     = "tick"
	TypeGameOver = "game_over"
)

// TypeAck closes the engine's request; it is the last frame written for it.
const TypeAck = "ack"

type HelloMessage struct {
	Player      string `json:"player"`
	Motherships []int  `json:"motherships"`
}

// GameOverMessage ends the match; all controller state is dropped.
type GameOverMessage struct {
	Winner string `json:"winner,omitempty"`
	Tick   int    `json:"tick"`
}

type AckMessage struct {
	Status   string `json:"status"`
	Tick     int    `json:"tick,omitempty"`
	Commands int    `json:"commands,omitempty"`
}
