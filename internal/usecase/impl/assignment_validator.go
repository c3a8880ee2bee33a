package impl

import (
	"fleetroute/internal/domain/entity"
)

// ValidateAssignments re-checks solver output against the zone restrictions.
// A vehicle is flagged when any of its assigned jobs lies inside one of its
// forbidden zones. Assignments are never modified.
func ValidateAssignments(result entity.SolverResult, jobs []entity.Job, profiles *ProfileSet) []entity.Violation {
	var violations []entity.Violation
	for _, assignment := range result.Assignments {
		profile := profiles.ForVehicle(assignment.VehicleIndex)
		if !profile.Restricted() {
			continue
		}

		var flagged []int
		var labels []string
		for _, job := range assignment.JobIndices() {
			if profile.Forbids(jobs[job].Position) {
				flagged = append(flagged, job)
				labels = append(labels, jobs[job].DisplayLabel())
			}
		}
		if len(flagged) == 0 {
			continue
		}

		violations = append(violations, entity.Violation{
			VehicleIndex: assignment.VehicleIndex,
			JobIndices:   flagged,
			JobLabels:    labels,
		})
	}

	return violations
}
