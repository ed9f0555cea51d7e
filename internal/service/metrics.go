package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	reasonCreate       = "create"
	reasonReassign     = "reassign"
	reasonDeactivation = "deactivation"
)

var (
	reviewerAssignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewer_assignments_total",
			Help: "Number of reviewers assigned to pull requests",
		},
		[]string{"reason"},
	)

	// Assignments dropped during deactivation because no replacement was available.
	reviewerRemovalsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviewer_removals_total",
			Help: "Number of reviewer assignments removed without replacement",
		},
	)
)
