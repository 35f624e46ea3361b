package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Attribute keys used on the service's instruments.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrVoteKind    = attribute.Key("vote.kind")
	AttrOutcome     = attribute.Key("vote.outcome")
	AttrStatus      = attribute.Key("proposal.status")
	AttrEventType   = attribute.Key("event.type")
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// VotesTotal counts CastVote calls by kind and outcome.
	VotesTotal metric.Int64Counter
	// ProposalsFinalized counts proposals leaving pending, by final status.
	ProposalsFinalized metric.Int64Counter
	DecisionEdits      metric.Int64Counter
	// NotificationsTotal counts deliveries by sink and result.
	NotificationsTotal metric.Int64Counter
}

type instrumentSpec struct {
	name, desc, unit string
}

var (
	serverDuration = instrumentSpec{"http.server.request.duration", "Duration of incoming HTTP requests", "s"}
	serverTotal    = instrumentSpec{"http.server.request.total", "Incoming HTTP requests", "{request}"}
	clientDuration = instrumentSpec{"http.client.request.duration", "Duration of outgoing HTTP requests", "s"}
	clientTotal    = instrumentSpec{"http.client.request.total", "Outgoing HTTP requests", "{request}"}
	votesTotal     = instrumentSpec{"decisionnote.votes.total", "Votes cast on proposals", "{vote}"}
	finalized      = instrumentSpec{"decisionnote.proposals.finalized", "Proposals that reached a terminal status", "{proposal}"}
	decisionEdits  = instrumentSpec{"decisionnote.decisions.edits", "Committed decision edits", "{edit}"}
	notifications  = instrumentSpec{"decisionnote.notifications.total", "Notification deliveries", "{notification}"}
)

// NewMetrics registers every instrument on a meter named scope. All
// registration failures are reported together.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	var errs []error

	histogram := func(s instrumentSpec) metric.Float64Histogram {
		h, err := meter.Float64Histogram(s.name, metric.WithDescription(s.desc), metric.WithUnit(s.unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", s.name, err))
		}
		return h
	}
	counter := func(s instrumentSpec) metric.Int64Counter {
		c, err := meter.Int64Counter(s.name, metric.WithDescription(s.desc), metric.WithUnit(s.unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", s.name, err))
		}
		return c
	}

	m := &Metrics{
		ServerRequestDuration: histogram(serverDuration),
		ServerRequestTotal:    counter(serverTotal),
		ClientRequestDuration: histogram(clientDuration),
		ClientRequestTotal:    counter(clientTotal),
		VotesTotal:            counter(votesTotal),
		ProposalsFinalized:    counter(finalized),
		DecisionEdits:         counter(decisionEdits),
		NotificationsTotal:    counter(notifications),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// NewNoopMetrics returns instruments that record nothing.
func NewNoopMetrics() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider(), "noop")
	return m
}
