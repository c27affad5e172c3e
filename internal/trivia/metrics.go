package trivia

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quizDraws = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "quiz_draws_total",
		Help:      "Quiz draws by outcome (served, exhausted).",
	}, []string{"result"})

	searchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "search_requests_total",
		Help:      "Question searches by outcome (hit, miss).",
	}, []string{"result"})
)
