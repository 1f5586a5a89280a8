package store

import (
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

// computeMTTR derives mean-time-to-repair figures from completed work
// orders carrying both start and completion dates. Every grouping is an
// unweighted mean of the order's duration in hours; a multi-technician
// order contributes its full duration to each technician's bucket.
// Recomputing with unchanged inputs yields identical output.
func computeMTTR(workOrders []entities.WorkOrder, now time.Time) entities.MTTRData {
	byAircraft := map[string][]float64{}
	byCategory := map[string][]float64{}
	byTechnician := map[string][]float64{}
	var all []float64
	onTime := 0

	for i := range workOrders {
		wo := &workOrders[i]
		if wo.Status != constants.WorkOrderCompleted || wo.StartDate == nil || wo.CompletedDate == nil {
			continue
		}
		hours := wo.CompletedDate.Sub(*wo.StartDate).Hours()
		all = append(all, hours)
		byAircraft[wo.TailNumber] = append(byAircraft[wo.TailNumber], hours)
		byCategory[string(wo.Category)] = append(byCategory[string(wo.Category)], hours)
		for _, tech := range wo.AssignedTo {
			byTechnician[tech] = append(byTechnician[tech], hours)
		}
		if !wo.CompletedDate.After(wo.DueDate) {
			onTime++
		}
	}

	data := entities.MTTRData{
		Overall:        mean(all),
		ByAircraft:     meanMap(byAircraft),
		ByCategory:     meanMap(byCategory),
		ByTechnician:   meanMap(byTechnician),
		CompletedCount: len(all),
		LastCalculated: now,
	}
	if len(all) > 0 {
		data.OnTimeRate = float64(onTime) / float64(len(all))
	}
	return data
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func meanMap(groups map[string][]float64) map[string]float64 {
	out := make(map[string]float64, len(groups))
	for k, v := range groups {
		out[k] = mean(v)
	}
	return out
}
