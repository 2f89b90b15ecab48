package camera

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/Carmen-Shannon/oxy-rig/engine/camera"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// rigInstruments groups the counters and histograms a Rig records per update.
type rigInstruments struct {
	updates        metric.Int64Counter
	missingPrimary metric.Int64Counter
	blendFactor    metric.Float64Histogram
}

// newRigInstruments creates the rig instruments on m. Instruments that fail to register are
// replaced with no-op instruments so recording never needs a nil check.
func newRigInstruments(m metric.Meter) (rigInstruments, error) {
	fallback := noop.NewMeterProvider().Meter(instrumentationName)
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	updates, err := m.Int64Counter("camera.rig.updates",
		metric.WithDescription("Frames in which the primary camera was placed"),
		metric.WithUnit("{frame}"),
	)
	if err != nil {
		keep(err)
		updates, _ = fallback.Int64Counter("camera.rig.updates")
	}

	missing, err := m.Int64Counter("camera.rig.missing_primary",
		metric.WithDescription("Frames skipped because no primary camera existed"),
		metric.WithUnit("{frame}"),
	)
	if err != nil {
		keep(err)
		missing, _ = fallback.Int64Counter("camera.rig.missing_primary")
	}

	blend, err := m.Float64Histogram("camera.rig.blend_factor",
		metric.WithDescription("Interpolation factor applied toward the desired transform"),
	)
	if err != nil {
		keep(err)
		blend, _ = fallback.Float64Histogram("camera.rig.blend_factor")
	}

	return rigInstruments{
		updates:        updates,
		missingPrimary: missing,
		blendFactor:    blend,
	}, firstErr
}
