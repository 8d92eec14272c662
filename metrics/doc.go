// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics counts registrations and votes with Prometheus.

A Collector is an election.Observer:

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	e := election.New(candidates, election.WithObserver(m))

Exposed series:

	panchayat_registrations_total{outcome="accepted|refused"}
	panchayat_votes_total{outcome="accepted|not_registered|already_voted|invalid_candidate"}

WriteText dumps a registry in the Prometheus text format, which is how the
command line tool reports metrics after a run.
*/
package metrics
