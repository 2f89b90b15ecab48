package camera

// FocusTrackerOption is a functional option for configuring a FocusTracker.
type FocusTrackerOption func(*focusTrackerImpl)

// WithRandomSource sets the source used by ForwardRandomized. A nil source keeps the default.
//
// Parameters:
//   - src: uniform [0, 1) sample source
//
// Returns:
//   - FocusTrackerOption: functional option to set the random source
func WithRandomSource(src RandomSource) FocusTrackerOption {
	return func(f *focusTrackerImpl) {
		if src != nil {
			f.random = src
		}
	}
}

// WithCorrectedJitterScale makes ForwardRandomized use the sampled pitch and yaw directly as
// radians, so rangeDeg describes the real cone size.
//
// Returns:
//   - FocusTrackerOption: functional option to enable the corrected jitter scale
func WithCorrectedJitterScale() FocusTrackerOption {
	return func(f *focusTrackerImpl) {
		f.correctedJitter = true
	}
}

// WithCorrectedFlatForward makes ForwardFlat flatten the forward vector instead of the right vector.
//
// Returns:
//   - FocusTrackerOption: functional option to enable the corrected flat forward
func WithCorrectedFlatForward() FocusTrackerOption {
	return func(f *focusTrackerImpl) {
		f.correctedFlatAxis = true
	}
}
