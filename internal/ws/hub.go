package ws

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"

	"guessduel/internal/game"
	"guessduel/internal/logger"
)

// Update colors: the guesser sees neutral text, the opponent a highlight.
const (
	colorSelf = "black"
	colorPeer = "#3182ce"
)

// Hub coordinates duels. All shared state lives behind one mutex and
// every inbound event runs its full contract under it, so each handler
// observes and leaves a consistent view.
type Hub struct {
	mu      sync.Mutex
	connSeq int64

	clients   map[string]*Client
	connRoom  map[string]string    // connID -> roomID
	roomConns map[string][2]string // roomID -> member connIDs
	sessions  map[string]int       // roomID -> target number
	votes     map[string]*rematchVote
	waitingID string // matchmaking queue of size one

	newTarget func() int
	log       *slog.Logger
}

// rematchVote is the per-room two-slot accumulator. It is deleted as
// soon as both slots fill or the room dies.
type rematchVote struct {
	first  string
	second string
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		connRoom:  make(map[string]string),
		roomConns: make(map[string][2]string),
		sessions:  make(map[string]int),
		votes:     make(map[string]*rematchVote),
		newTarget: game.NewTarget,
		log:       logger.With("component", "hub"),
	}
}

// Register assigns a fresh connection handle and tracks the client.
func (h *Hub) Register(conn *websocket.Conn) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connSeq++
	c := &Client{
		ID:   "c" + strconv.FormatInt(h.connSeq, 10),
		Conn: conn,
		Send: make(chan []byte, sendQueueSize),
		hub:  h,
	}
	h.clients[c.ID] = c
	connectionsActive.Inc()

	h.log.Info("connected", "conn", c.ID)
	return c
}

// route decodes one inbound frame and dispatches it. Malformed frames
// and unknown types are dropped at this boundary.
func (h *Hub) route(c *Client, raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.log.Debug("dropping malformed frame", "conn", c.ID, "error", err)
		return
	}

	switch env.Type {
	case MsgJoin:
		h.Join(c)

	case MsgMakeGuess:
		var p GuessPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			h.log.Debug("dropping bad guess payload", "conn", c.ID, "error", err)
			return
		}
		h.Guess(c, int(p.Guess))

	case MsgSendChat:
		var p ChatPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return
		}
		h.Chat(c, p.Msg)

	case MsgTyping:
		var p TypingPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return
		}
		h.Typing(c, p.IsTyping)

	case MsgRequestRematch:
		h.RequestRematch(c)

	default:
		h.log.Debug("unknown message type", "conn", c.ID, "type", env.Type)
	}
}

// Join enters matchmaking. The first joiner waits; the second is paired
// with the waiting one into a fresh room and session. A connection that
// is already waiting or already in a room is ignored.
func (h *Hub) Join(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, live := h.clients[c.ID]; !live {
		return
	}
	if h.connRoom[c.ID] != "" {
		h.log.Debug("join ignored, already in a room", "conn", c.ID)
		return
	}
	if h.waitingID == c.ID {
		h.log.Debug("join ignored, already waiting", "conn", c.ID)
		return
	}

	if h.waitingID == "" {
		h.waitingID = c.ID
		h.log.Info("player waiting", "conn", c.ID)
		return
	}

	waiting := h.waitingID
	h.waitingID = ""

	// Room ID derives from the first participant's handle, which is
	// unique among live connections.
	roomID := "duel_" + waiting
	target := h.newTarget()

	h.roomConns[roomID] = [2]string{waiting, c.ID}
	h.connRoom[waiting] = roomID
	h.connRoom[c.ID] = roomID
	h.sessions[roomID] = target
	duelsStarted.Inc()

	h.log.Info("match started", "room", roomID, "target", target)

	start := Message{Type: MsgGameStart, Payload: GameStartPayload{RandomNum: target}}
	h.send(waiting, start)
	h.send(c.ID, start)
}

// Guess evaluates one multiplayer guess against the room's target.
// Out-of-context guesses (no room, no live session) are silent no-ops.
func (h *Hub) Guess(c *Client, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	roomID := h.connRoom[c.ID]
	if roomID == "" {
		return
	}
	target, live := h.sessions[roomID]
	if !live {
		return
	}

	guessesTotal.Inc()
	peer := h.peerOf(roomID, c.ID)

	if n == target {
		delete(h.sessions, roomID)
		duelsFinished.Inc()

		h.send(c.ID, Message{Type: MsgGameOver, Payload: GameOverPayload{
			Winner: true,
			Msg:    fmt.Sprintf("You won! The number was %d!", target),
		}})
		h.send(peer, Message{Type: MsgGameOver, Payload: GameOverPayload{
			Winner: false,
			Msg:    fmt.Sprintf("You lost. Opponent guessed %d.", target),
		}})

		h.log.Info("duel won", "room", roomID, "winner", c.ID)
		return
	}

	feedback := "Too low!"
	if n > target {
		feedback = "Too high!"
	}

	h.send(c.ID, Message{Type: MsgGameUpdate, Payload: GameUpdatePayload{
		Msg:   fmt.Sprintf("You guessed %d: %s", n, feedback),
		Color: colorSelf,
	}})
	h.send(peer, Message{Type: MsgGameUpdate, Payload: GameUpdatePayload{
		Msg:   fmt.Sprintf("Opponent guessed %d: %s", n, feedback),
		Color: colorPeer,
	}})
}

// Chat relays a chat line to the whole room, sender included, so both
// sides render from the same event.
func (h *Hub) Chat(c *Client, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	roomID := h.connRoom[c.ID]
	if roomID == "" {
		return
	}

	chatRelayed.Inc()
	msg := Message{Type: MsgReceiveChat, Payload: ReceiveChatPayload{Msg: text, SenderID: c.ID}}
	for _, id := range h.roomConns[roomID] {
		h.send(id, msg)
	}
}

// Typing forwards a presence signal to the opponent only.
func (h *Hub) Typing(c *Client, isTyping bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	roomID := h.connRoom[c.ID]
	if roomID == "" {
		return
	}

	h.send(h.peerOf(roomID, c.ID), Message{
		Type:    MsgDisplayTyping,
		Payload: DisplayTypingPayload{IsTyping: isTyping},
	})
}

// RequestRematch records a rematch vote. The first vote notifies the
// opponent; once both sides have voted the room gets a fresh session
// and both receive game_start. Repeat votes from the same connection
// have no effect.
func (h *Hub) RequestRematch(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	roomID := h.connRoom[c.ID]
	if roomID == "" {
		return
	}

	v := h.votes[roomID]
	if v == nil {
		v = &rematchVote{}
		h.votes[roomID] = v
	}

	switch {
	case v.first == c.ID || v.second == c.ID:
		h.log.Debug("duplicate rematch vote", "conn", c.ID, "room", roomID)
		return
	case v.first == "":
		v.first = c.ID
	default:
		v.second = c.ID
	}

	if v.first != "" && v.second != "" {
		delete(h.votes, roomID)

		target := h.newTarget()
		h.sessions[roomID] = target
		duelsStarted.Inc()

		h.log.Info("rematch started", "room", roomID, "target", target)

		start := Message{Type: MsgGameStart, Payload: GameStartPayload{RandomNum: target}}
		for _, id := range h.roomConns[roomID] {
			h.send(id, start)
		}
		return
	}

	h.send(h.peerOf(roomID, c.ID), Message{Type: MsgRematchRequested})
}

// OnDisconnect clears everything the connection touched: the waiting
// slot, the room and its session (notifying the opponent) and any
// rematch vote. Safe to call more than once.
func (h *Hub) OnDisconnect(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, live := h.clients[c.ID]; !live {
		return
	}
	delete(h.clients, c.ID)
	connectionsActive.Dec()

	if h.waitingID == c.ID {
		h.waitingID = ""
		h.log.Info("waiting player disconnected", "conn", c.ID)
	}

	roomID := h.connRoom[c.ID]
	delete(h.connRoom, c.ID)
	if roomID == "" {
		h.log.Info("disconnected", "conn", c.ID)
		return
	}

	peer := h.peerOf(roomID, c.ID)
	if _, live := h.sessions[roomID]; live {
		h.send(peer, Message{Type: MsgOpponentLeft})
		delete(h.sessions, roomID)
		h.log.Info("duel ended by disconnect", "room", roomID, "conn", c.ID)
	}
	delete(h.votes, roomID)

	// The room dies with the first disconnect. Releasing the survivor's
	// room association frees them to rejoin matchmaking; the room ID is
	// never reused since it derives from the connection sequence.
	delete(h.connRoom, peer)
	delete(h.roomConns, roomID)

	h.log.Info("disconnected", "conn", c.ID)
}

// peerOf returns the other member of the room, or "" if there is none.
func (h *Hub) peerOf(roomID, connID string) string {
	members := h.roomConns[roomID]
	switch connID {
	case members[0]:
		return members[1]
	case members[1]:
		return members[0]
	}
	return ""
}

// send queues a message for one connection. A dead connection or a full
// queue drops the message; the wire offers no delivery guarantee beyond
// per-connection ordering anyway.
func (h *Hub) send(connID string, msg Message) {
	c, ok := h.clients[connID]
	if !ok {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("marshal failed", "type", msg.Type, "error", err)
		return
	}

	select {
	case c.Send <- data:
	default:
		h.log.Warn("send queue full, dropping message", "conn", connID, "type", msg.Type)
	}
}
