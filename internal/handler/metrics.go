package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voting_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voting_logins_total",
			Help: "Total number of login attempts by method and status.",
		},
		[]string{"method", "status"},
	)

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voting_token_verifications_total",
			Help: "Total number of bearer token verification attempts by status.",
		},
		[]string{"status"},
	)

	votesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voting_votes_total",
			Help: "Total number of vote toggles by action.",
		},
		[]string{"action"},
	)

	bansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voting_bans_total",
		Help: "Total number of user bans.",
	})
)
