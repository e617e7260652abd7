package metrics

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type SigningMetrics struct {
	opts metric.MeasurementOption

	requestsCounter metric.Int64Counter
	errorsCounter   metric.Int64Counter
	signingLatency  metric.Float64Histogram

	blockDeltaGauge metric.Int64ObservableGauge
	blockDeltas     *sync.Map

	startTimeGauge metric.Int64ObservableGauge
}

// NewSigningMetrics initializes metrics for the signing service
func NewSigningMetrics(ctx context.Context, meter metric.Meter, env, id, version string) (*SigningMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("instance", id),
		attribute.String("version", version),
	)

	requestsCounter, err := meter.Int64Counter(
		"signing.Requests",
		metric.WithDescription("Number of signing requests routed to message handlers"),
	)
	if err != nil {
		return nil, err
	}
	errorsCounter, err := meter.Int64Counter(
		"signing.Errors",
		metric.WithDescription("Number of signing requests that failed handling"),
	)
	if err != nil {
		return nil, err
	}
	signingLatency, err := meter.Float64Histogram("signing.LatencySeconds")
	if err != nil {
		return nil, err
	}

	blockDeltas := &sync.Map{}
	blockDeltaGauge, err := meter.Int64ObservableGauge(
		"signing.BlockDelta",
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			blockDeltas.Range(func(domainID, delta any) bool {
				result.Observe(
					delta.(int64),
					opts,
					metric.WithAttributes(attribute.Int64("domainID", domainID.(int64))),
				)
				return true
			})
			return nil
		}),
		metric.WithDescription("Difference between the chain head and the latest indexed block"),
	)
	if err != nil {
		return nil, err
	}

	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"signing.StartTimeSeconds",
		metric.WithDescription("Start time of the signing service"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &SigningMetrics{
		opts:            opts,
		requestsCounter: requestsCounter,
		errorsCounter:   errorsCounter,
		signingLatency:  signingLatency,
		blockDeltaGauge: blockDeltaGauge,
		blockDeltas:     blockDeltas,
		startTimeGauge:  startTimeGauge,
	}, nil
}

// TrackDepositMessage counts a signing request entering the relayer
func (m *SigningMetrics) TrackDepositMessage(msg *message.Message) {
	m.requestsCounter.Add(
		context.Background(),
		1,
		m.opts,
		metric.WithAttributes(attribute.String("type", string(msg.Type))),
	)
}

// TrackExecutionError counts a signing request whose handler returned an error
func (m *SigningMetrics) TrackExecutionError(msg *message.Message) {
	m.errorsCounter.Add(
		context.Background(),
		1,
		m.opts,
		metric.WithAttributes(attribute.String("type", string(msg.Type))),
	)
}

// TrackSuccessfulExecutionLatency records the time between the request
// entering the message channel and its signature being produced
func (m *SigningMetrics) TrackSuccessfulExecutionLatency(msg *message.Message) {
	m.signingLatency.Record(
		context.Background(),
		time.Since(msg.Timestamp).Seconds(),
		m.opts,
		metric.WithAttributes(attribute.String("type", string(msg.Type))),
	)
}

// TrackBlockDelta records how far the indexer lags behind the chain head
func (m *SigningMetrics) TrackBlockDelta(domainID uint64, head *big.Int, current *big.Int) {
	m.blockDeltas.Store(
		// nolint:gosec
		int64(domainID),
		new(big.Int).Sub(head, current).Int64(),
	)
}
