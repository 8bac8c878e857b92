// Manual smoke run: connects two duel clients to a running server,
// plays one game to completion and prints every event.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

type message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func dial(url string) (*websocket.Conn, chan message) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", url, err)
	}

	out := make(chan message, 16)
	go func() {
		defer close(out)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var m message
			if err := json.Unmarshal(data, &m); err != nil {
				continue
			}
			out <- m
		}
	}()
	return conn, out
}

func send(conn *websocket.Conn, typ string, payload any) {
	m := map[string]any{"type": typ}
	if payload != nil {
		m["payload"] = payload
	}
	if err := conn.WriteJSON(m); err != nil {
		log.Fatalf("write %s: %v", typ, err)
	}
}

func waitFor(name string, ch chan message, typ string) message {
	deadline := time.After(5 * time.Second)
	for {
		select {
		case m, ok := <-ch:
			if !ok {
				log.Fatalf("%s: connection closed while waiting for %s", name, typ)
			}
			fmt.Printf("%s <- %s %s\n", name, m.Type, m.Payload)
			if m.Type == typ {
				return m
			}
		case <-deadline:
			log.Fatalf("%s: timed out waiting for %s", name, typ)
		}
	}
}

func main() {
	base := os.Getenv("WS_URL")
	if base == "" {
		base = "ws://localhost:8080/ws"
	}

	connA, chA := dial(base)
	defer connA.Close()
	connB, chB := dial(base)
	defer connB.Close()

	send(connA, "join", nil)
	send(connB, "join", nil)

	start := waitFor("A", chA, "game_start")
	waitFor("B", chB, "game_start")

	var p struct {
		RandomNum int `json:"randomNum"`
	}
	if err := json.Unmarshal(start.Payload, &p); err != nil {
		log.Fatalf("decode game_start: %v", err)
	}

	send(connA, "send_chat", map[string]any{"msg": "gl hf"})
	waitFor("B", chB, "receive_chat")

	// One deliberately wrong guess, then the winning one.
	send(connA, "make_guess", map[string]any{"guess": p.RandomNum%100 + 1})
	waitFor("B", chB, "game_update")

	send(connA, "make_guess", map[string]any{"guess": p.RandomNum})
	waitFor("A", chA, "game_over")
	waitFor("B", chB, "game_over")

	send(connA, "request_rematch", nil)
	waitFor("B", chB, "rematch_requested")
	send(connB, "request_rematch", nil)
	waitFor("A", chA, "game_start")
	waitFor("B", chB, "game_start")

	fmt.Println("smoke run complete")
}
