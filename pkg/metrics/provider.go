package metrics

import (
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// NewMeterProvider returns a MeterProvider whose instruments are exported
// through reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, errors.Wrap(err, "could not create otel exporter")
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
