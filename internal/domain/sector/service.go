package sector

import "context"

// SettingsService manages the per-shift sector layouts and headcount targets
// behind the settings page.
type SettingsService interface {
	// GetConfig returns the layout for a shift; shifts never configured get
	// an empty layout rather than an error.
	GetConfig(ctx context.Context, shift string) (ConfigResponse, error)

	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)

	// GetTargets returns every shift's headcount target, defaults filled in.
	GetTargets(ctx context.Context) (TargetsResponse, error)

	UpdateTargets(ctx context.Context, req UpdateTargetsRequest) (TargetsResponse, error)
}
