// Package risk implements the milestone delay-risk engine: resource cost
// model, planned spend schedule, actuals sourcing, the three-layer risk
// score and the advisory rules evaluated against it.
//
// Everything in this package is a pure function of its arguments. Callers
// supply the milestone snapshot, the actual-spend series and an explicit
// as-of date; the package performs no I/O and holds no state.
package risk

import "github.com/epc-intel/models"

// LabourCost returns the full planned labour cost of a milestone:
// sum of count x daily rate x hired days per category.
func LabourCost(labourers models.LabourerList) float64 {
	var total float64
	for _, l := range labourers {
		total += float64(l.Count) * l.DailyRate * float64(l.Days)
	}
	return total
}

// MaterialCost returns the full planned material cost: sum of quantity x unit cost.
func MaterialCost(materials models.MaterialList) float64 {
	var total float64
	for _, m := range materials {
		total += m.Quantity * m.UnitCost
	}
	return total
}

// MachineCost returns the full planned machinery cost:
// sum of units x daily rate x rental days per machine type.
func MachineCost(machines models.MachineList) float64 {
	var total float64
	for _, m := range machines {
		total += float64(m.Count) * m.DailyRate * float64(m.Days)
	}
	return total
}

// PlannedTotal returns the milestone's full planned spend across all resource lists.
// Empty lists contribute zero; there are no error conditions.
func PlannedTotal(ms models.Milestone) float64 {
	return LabourCost(ms.Labourers) + MaterialCost(ms.Materials) + MachineCost(ms.Machines)
}
