package agenda

import (
	"context"
	"sync"

	"clinicsched/models"

	"go.uber.org/zap"
)

// fetchAll fans out one range fetch per staff member and joins the results.
// Fetches are independent, so a failure for one staff member is logged and
// contributes an empty set; it never aborts the others. Results are
// concatenated in selection order so the aggregate is deterministic.
func (svc *DefaultAgendaService) fetchAll(ctx context.Context, staff []models.Staff, from, to string) []models.Appointment {
	results := make([][]models.Appointment, len(staff))

	var wg sync.WaitGroup
	for i, s := range staff {
		wg.Add(1)
		go func(i int, staffID string) {
			defer wg.Done()
			appts, err := svc.Appointments.FetchRange(ctx, staffID, from, to)
			if err != nil {
				svc.Logger.Warn("Appointment fetch failed, staff contributes no appointments",
					zap.String("staffId", staffID),
					zap.String("from", from),
					zap.String("to", to),
					zap.Error(err))
				return
			}
			results[i] = appts
		}(i, s.ID)
	}
	wg.Wait()

	var all []models.Appointment
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}
