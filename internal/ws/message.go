package ws

import (
	"encoding/json"
	"strconv"
	"strings"
)

// client → server
const (
	MsgJoin           = "join"
	MsgMakeGuess      = "make_guess"
	MsgSendChat       = "send_chat"
	MsgTyping         = "typing"
	MsgRequestRematch = "request_rematch"
)

// server → client
const (
	MsgGameStart        = "game_start"
	MsgGameUpdate       = "game_update"
	MsgGameOver         = "game_over"
	MsgReceiveChat      = "receive_chat"
	MsgDisplayTyping    = "display_typing"
	MsgOpponentLeft     = "opponent_left"
	MsgRematchRequested = "rematch_requested"
)

// Message is an outbound event.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// envelope is the inbound frame; payloads are decoded per type at the
// boundary so malformed frames never reach the hub.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// FlexInt accepts both JSON numbers and numeric strings; clients send
// the guess either way.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// client → server payloads
type GuessPayload struct {
	Guess FlexInt `json:"guess"`
}

type ChatPayload struct {
	Msg string `json:"msg"`
}

type TypingPayload struct {
	IsTyping bool `json:"isTyping"`
}

// server → client payloads
type GameStartPayload struct {
	RandomNum int `json:"randomNum"`
}

type GameUpdatePayload struct {
	Msg   string `json:"msg"`
	Color string `json:"color"`
}

type GameOverPayload struct {
	Winner bool   `json:"winner"`
	Msg    string `json:"msg"`
}

type ReceiveChatPayload struct {
	Msg      string `json:"msg"`
	SenderID string `json:"senderID"`
}

type DisplayTypingPayload struct {
	IsTyping bool `json:"isTyping"`
}
