package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/sector"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
)

// emptyConfig is what shifts without a stored layout report back.
var emptyConfig = json.RawMessage(`{"sectors":[]}`)

type settingsService struct {
	sectorRepo sector.SectorRepository
}

func NewSettingsService(sectorRepo sector.SectorRepository) sector.SettingsService {
	return &settingsService{sectorRepo: sectorRepo}
}

// GetConfig implements sector.SettingsService.
func (s *settingsService) GetConfig(ctx context.Context, shift string) (sector.ConfigResponse, error) {
	cfg, err := s.sectorRepo.GetConfigByShift(ctx, shift)
	if err != nil {
		if errors.Is(err, sector.ErrConfigNotFound) {
			return sector.ConfigResponse{Shift: shift, Config: emptyConfig}, nil
		}
		return sector.ConfigResponse{}, err
	}

	return sector.ToConfigResponse(cfg), nil
}

// UpdateConfig implements sector.SettingsService.
func (s *settingsService) UpdateConfig(ctx context.Context, req sector.UpdateConfigRequest) (sector.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return sector.ConfigResponse{}, err
	}

	cfg, err := s.sectorRepo.UpsertConfig(ctx, req.Shift, req.Config)
	if err != nil {
		return sector.ConfigResponse{}, err
	}

	return sector.ToConfigResponse(cfg), nil
}

// GetTargets implements sector.SettingsService.
func (s *settingsService) GetTargets(ctx context.Context) (sector.TargetsResponse, error) {
	targets, err := s.sectorRepo.ListTargets(ctx)
	if err != nil {
		return sector.TargetsResponse{}, err
	}

	resp := sector.TargetsResponse{Targets: map[string]int{}}
	for _, shift := range validator.Shifts {
		resp.Targets[shift] = sector.DefaultTargetValue
	}
	for _, target := range targets {
		resp.Targets[target.ShiftName] = target.TargetValue
	}

	return resp, nil
}

// UpdateTargets implements sector.SettingsService.
func (s *settingsService) UpdateTargets(ctx context.Context, req sector.UpdateTargetsRequest) (sector.TargetsResponse, error) {
	if err := req.Validate(); err != nil {
		return sector.TargetsResponse{}, err
	}

	for shift, value := range req.Targets {
		if _, err := s.sectorRepo.UpsertTarget(ctx, shift, value); err != nil {
			return sector.TargetsResponse{}, err
		}
	}

	return s.GetTargets(ctx)
}
