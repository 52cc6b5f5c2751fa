package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizzfoot_games_started_total",
		Help: "Games started, by mode.",
	}, []string{"mode"})

	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizzfoot_games_finished_total",
		Help: "Games finished, by mode and outcome.",
	}, []string{"mode", "outcome"})

	wsMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizzfoot_ws_messages_total",
		Help: "WebSocket messages handled, by type.",
	}, []string{"type"})

	questionTimeouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quizzfoot_question_timeouts_total",
		Help: "Quiz questions auto-answered on deadline.",
	})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quizzfoot_active_sessions",
		Help: "Live game sessions.",
	})
)
