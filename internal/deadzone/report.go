package deadzone

// Report summarizes a set of detected dead zones.
type Report struct {
	TotalZones       int
	CountBySeverity  map[Severity]int
	HasCriticalZones bool
}

// GenerateReport tallies zones per severity and flags whether any Critical
// zone is present.
func GenerateReport(zones []DeadZone) Report {
	report := Report{CountBySeverity: map[Severity]int{}}
	for _, z := range zones {
		report.TotalZones++
		report.CountBySeverity[z.Severity]++
		if z.Severity == SeverityCritical {
			report.HasCriticalZones = true
		}
	}
	return report
}

// Improvement is one suggested remediation action for a dead zone.
type Improvement struct {
	Zone     DeadZone
	Priority int
	Action   string
}

// SuggestImprovements emits one action per Critical or High zone, ordered
// by the zones slice's order, each carrying its severity's priority.
func SuggestImprovements(zones []DeadZone) []Improvement {
	var suggestions []Improvement
	for _, z := range zones {
		if z.Severity != SeverityCritical && z.Severity != SeverityHigh {
			continue
		}
		suggestions = append(suggestions, Improvement{
			Zone:     z,
			Priority: z.Severity.Priority(),
			Action:   actionFor(z),
		})
	}
	return suggestions
}

func actionFor(z DeadZone) string {
	if z.Severity == SeverityCritical {
		return "add an access point near this area's centroid"
	}
	return "consider repositioning or boosting power for the nearest access point"
}
