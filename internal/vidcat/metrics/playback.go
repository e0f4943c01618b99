// Package metrics exposes the Prometheus series for the catalog API. Labels
// never carry user, video or token identifiers.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Playback stages.
const (
	StageIssue  = "issue"
	StageRedeem = "redeem"
)

// Playback rejection reasons.
const (
	ReasonMalformed   = "malformed"
	ReasonSignature   = "signature"
	ReasonExpired     = "expired"
	ReasonNotFound    = "not_found"
	ReasonUnavailable = "unavailable"
)

var (
	PlaybackIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidcat_playback_issued_total",
		Help: "Playback tokens issued",
	})

	PlaybackRedeemedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidcat_playback_redeemed_total",
		Help: "Playback tokens redeemed for a destination",
	})

	PlaybackRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidcat_playback_rejected_total",
		Help: "Playback requests and redemptions refused, by stage and reason",
	}, []string{"stage", "reason"})
)

func RecordPlaybackIssued() { PlaybackIssuedTotal.Inc() }

func RecordPlaybackRedeemed() { PlaybackRedeemedTotal.Inc() }

// RecordPlaybackRejected counts a refusal. Unknown labels collapse to
// "unknown" to keep cardinality fixed.
func RecordPlaybackRejected(stage, reason string) {
	PlaybackRejectedTotal.WithLabelValues(normalizeStage(stage), normalizeReason(reason)).Inc()
}

func normalizeStage(stage string) string {
	switch s := strings.ToLower(strings.TrimSpace(stage)); s {
	case StageIssue, StageRedeem:
		return s
	default:
		return "unknown"
	}
}

func normalizeReason(reason string) string {
	switch r := strings.ToLower(strings.TrimSpace(reason)); r {
	case ReasonMalformed, ReasonSignature, ReasonExpired, ReasonNotFound, ReasonUnavailable:
		return r
	default:
		return "unknown"
	}
}
