package ws

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	connectionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "duel_connections_active",
		Help: "Currently registered websocket connections",
	})
	duelsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "duel_sessions_started_total",
		Help: "Duel sessions created by matchmaking or rematch",
	})
	duelsFinished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "duel_sessions_won_total",
		Help: "Duel sessions ended by a winning guess",
	})
	guessesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "duel_guesses_total",
		Help: "Multiplayer guesses evaluated",
	})
	chatRelayed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "duel_chat_messages_total",
		Help: "Chat messages relayed between participants",
	})
)

func init() {
	prometheus.MustRegister(connectionsActive, duelsStarted, duelsFinished, guessesTotal, chatRelayed)
}
