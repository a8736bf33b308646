package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "tank_registrations_total", Help: "Total successful registrations"},
	)
	DuplicateRegistrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "tank_duplicate_registrations_total", Help: "Total registrations rejected for a duplicate email"},
	)
	ScoreSubmissions = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "tank_score_submissions_total", Help: "Total score submissions received"},
	)
	AcceptedScores = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "tank_accepted_scores_total", Help: "Total score submissions that improved a participant's best"},
	)
)

func Register() {
	prometheus.MustRegister(Registrations, DuplicateRegistrations, ScoreSubmissions, AcceptedScores)
}
