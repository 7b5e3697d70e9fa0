package advisory

import (
	"fmt"
	"strings"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

// EmptyTimelineSummary is returned for an empty history without ever
// touching the generation service.
const EmptyTimelineSummary = "• No records found\n• History empty\n• Monitoring required"

// LocalInsight derives three responder bullets from the profile alone.
// It is deterministic for a given profile and never fails, which makes
// it the floor the advisory surface can always fall back to.
func LocalInsight(d profile.HealthData) string {
	lines := make([]string, 0, 3)

	if d.Allergies != "" && !strings.EqualFold(d.Allergies, "none") {
		lines = append(lines, fmt.Sprintf("• ALERT: %s ALLERGY", strings.ToUpper(d.Allergies)))
	} else {
		lines = append(lines, "• NO KNOWN DRUG ALLERGIES")
	}

	if d.ChronicDiseases != "" && !strings.EqualFold(d.ChronicDiseases, "none") {
		first := strings.TrimSpace(strings.Split(d.ChronicDiseases, ",")[0])
		lines = append(lines, fmt.Sprintf("• MONITOR: %s", strings.ToUpper(first)))
	} else {
		lines = append(lines, "• STABLE CHRONIC HISTORY")
	}

	lines = append(lines, "• VERIFY IDENTITY VIA QR SCAN")
	return strings.Join(lines, "\n")
}

// LocalSummary counts events per category and renders the snapshot
// bullets, pluralized by count.
func LocalSummary(events []timeline.Event) string {
	var labs, surgeries, prescriptions int
	for _, e := range events {
		switch e.Category {
		case timeline.CategoryLabs:
			labs++
		case timeline.CategorySurgeries:
			surgeries++
		case timeline.CategoryPrescriptions:
			prescriptions++
		}
	}

	lines := make([]string, 0, 3)
	if labs > 0 {
		lines = append(lines, fmt.Sprintf("• %d Lab Result%s logged", labs, plural(labs)))
	} else {
		lines = append(lines, "• No recent lab records")
	}
	if surgeries > 0 {
		lines = append(lines, fmt.Sprintf("• %d Surgery record%s found", surgeries, plural(surgeries)))
	} else {
		lines = append(lines, "• No recent surgeries")
	}
	if prescriptions > 0 {
		lines = append(lines, fmt.Sprintf("• %d Active prescription%s", prescriptions, plural(prescriptions)))
	} else {
		lines = append(lines, "• No active prescriptions")
	}

	return strings.Join(lines, "\n")
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
