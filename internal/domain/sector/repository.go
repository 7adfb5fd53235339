package sector

import (
	"context"
	"encoding/json"
)

type SectorRepository interface {
	// GetConfigByShift retrieves the sector layout for a shift
	GetConfigByShift(ctx context.Context, shift string) (SectorConfiguration, error)

	// UpsertConfig replaces the layout JSON for a shift
	UpsertConfig(ctx context.Context, shift string, config json.RawMessage) (SectorConfiguration, error)

	// GetTargetByShift retrieves the headcount target for a shift
	GetTargetByShift(ctx context.Context, shift string) (HeadcountTarget, error)

	// ListTargets retrieves every configured headcount target
	ListTargets(ctx context.Context) ([]HeadcountTarget, error)

	// UpsertTarget replaces the headcount target for a shift
	UpsertTarget(ctx context.Context, shift string, value int) (HeadcountTarget, error)
}
