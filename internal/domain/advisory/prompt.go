package advisory

import (
	"fmt"
	"strings"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

func insightPrompt(d profile.HealthData) string {
	return fmt.Sprintf(`Act as an Emergency Medicine Specialist. Based on the profile below, provide 3 critical ACTION-ORIENTED bullets for paramedics or responders.
Use direct, punchy commands (e.g., "Check glucose", "Avoid Ibuprofen").

Profile: %s, Blood: %s, Allergies: %s, Chronic: %s

Output exactly 3 short lines.`, d.FullName, d.BloodGroup, d.Allergies, d.ChronicDiseases)
}

func summaryPrompt(events []timeline.Event) string {
	records := make([]string, 0, len(events))
	for _, e := range events {
		records = append(records, fmt.Sprintf("%s: %s", e.Category, e.Title))
	}

	return fmt.Sprintf(`Review these medical records and provide a 'Current Health Snapshot'.
STRICT REQUIREMENT: Provide EXACTLY 3 punchy, one-line bullet points.

Records: %s`, strings.Join(records, ", "))
}
