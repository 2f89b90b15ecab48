package camera

// PlacementSolverOption is a functional option for configuring a PlacementSolver.
type PlacementSolverOption func(*placementSolverImpl)

// WithSmoothingRate sets the blend rate per second. Values <= 0 fall back to DefaultSmoothingRate.
//
// Parameters:
//   - rate: blend rate per second
//
// Returns:
//   - PlacementSolverOption: functional option to set the smoothing rate
func WithSmoothingRate(rate float32) PlacementSolverOption {
	return func(s *placementSolverImpl) {
		if rate <= 0 {
			rate = DefaultSmoothingRate
		}
		s.smoothingRate = rate
	}
}

// WithUnclampedBlend disables clamping of the blend factor. Large time steps then
// extrapolate past the desired transform instead of stopping on it.
//
// Returns:
//   - PlacementSolverOption: functional option to disable blend clamping
func WithUnclampedBlend() PlacementSolverOption {
	return func(s *placementSolverImpl) {
		s.clampBlend = false
	}
}
