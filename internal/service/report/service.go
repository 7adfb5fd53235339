package report

import (
	"context"
	"errors"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/operation"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/report"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/route"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/sector"
	"golang.org/x/sync/errgroup"
)

type reportService struct {
	routineService operation.RoutineService
	sectorRepo     sector.SectorRepository
	routeRepo      route.RouteRepository
}

func NewReportService(
	routineService operation.RoutineService,
	sectorRepo sector.SectorRepository,
	routeRepo route.RouteRepository,
) report.ReportService {
	return &reportService{
		routineService: routineService,
		sectorRepo:     sectorRepo,
		routeRepo:      routeRepo,
	}
}

// GetSnapshot implements report.ReportService. The inputs are independent
// reads, so they load in parallel; the aggregation itself is pure.
func (s *reportService) GetSnapshot(ctx context.Context, date, shift string) (report.Snapshot, error) {
	var (
		routine  operation.RoutineResponse
		cfg      sector.Config
		target   int
		realized float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		routine, err = s.routineService.GetRoutine(gctx, date, shift)
		return err
	})

	g.Go(func() error {
		stored, err := s.sectorRepo.GetConfigByShift(gctx, shift)
		if err != nil {
			if errors.Is(err, sector.ErrConfigNotFound) {
				return nil
			}
			return err
		}
		cfg, err = stored.Parse()
		return err
	})

	g.Go(func() error {
		stored, err := s.sectorRepo.GetTargetByShift(gctx, shift)
		if err != nil {
			if errors.Is(err, sector.ErrTargetNotFound) {
				target = sector.DefaultTargetValue
				return nil
			}
			return err
		}
		target = stored.TargetValue
		return nil
	})

	g.Go(func() error {
		var err error
		realized, err = s.routeRepo.SumTonnage(gctx, date, shift)
		return err
	})

	if err := g.Wait(); err != nil {
		return report.Snapshot{}, err
	}

	return buildSnapshot(date, shift, routine, cfg, target, realized), nil
}

func buildSnapshot(date, shift string, routine operation.RoutineResponse, cfg sector.Config, shiftTarget int, realized float64) report.Snapshot {
	kpiBySector := map[string]*report.SectorKPI{}
	order := make([]string, 0, len(cfg.Sectors)+1)

	for _, sec := range cfg.Sectors {
		kpiBySector[sec.Key] = &report.SectorKPI{
			Key:    sec.Key,
			Label:  sec.Label,
			Target: sec.Target,
		}
		order = append(order, sec.Key)
	}

	unassigned := &report.SectorKPI{
		Key:   report.UnassignedSectorKey,
		Label: report.UnassignedSectorLabel,
	}

	for _, entry := range routine.AttendanceLog {
		kpi, ok := kpiBySector[entry.Sector]
		if !ok {
			kpi = unassigned
		}

		kpi.Allocated++
		switch entry.Status {
		case operation.EntryPresent:
			kpi.Present++
		case operation.EntryAbsent, operation.EntrySick:
			kpi.AbsentOrSick++
		case operation.EntryVacation, operation.EntryAway:
			kpi.VacationOrAway++
		}
	}

	if unassigned.Allocated > 0 {
		kpiBySector[unassigned.Key] = unassigned
		order = append(order, unassigned.Key)
	}

	snapshot := report.Snapshot{
		Date:            date,
		Shift:           shift,
		Sectors:         make([]report.SectorKPI, 0, len(order)),
		PlannedTonnage:  routine.Tonnage,
		RealizedTonnage: realized,
	}

	for _, key := range order {
		kpi := kpiBySector[key]
		kpi.Vacancies = max(0, kpi.Target-kpi.Allocated)
		kpi.Gap = max(0, kpi.Target-kpi.Present)

		snapshot.Sectors = append(snapshot.Sectors, *kpi)
		snapshot.Totals.Allocated += kpi.Allocated
		snapshot.Totals.Present += kpi.Present
		snapshot.Totals.AbsentOrSick += kpi.AbsentOrSick
		snapshot.Totals.VacationOrAway += kpi.VacationOrAway
	}

	snapshot.Totals.Target = shiftTarget
	snapshot.Totals.Vacancies = max(0, shiftTarget-snapshot.Totals.Allocated)
	snapshot.Totals.Gap = max(0, shiftTarget-snapshot.Totals.Present)

	if shiftTarget > 0 {
		snapshot.PresencePct = float64(snapshot.Totals.Present) / float64(shiftTarget) * 100
	}
	if snapshot.Totals.Present > 0 {
		snapshot.Productivity = routine.Tonnage / float64(snapshot.Totals.Present)
	}

	return snapshot
}
