package insight

import (
	"fmt"
	"strings"

	"github.com/campuscare/healthbot/internal/domain"
)

// SynthesizeProfile derives short free-text insights about the user from the
// aggregate of their messages in the window. Five independent rules run in a
// fixed order (sleep, stress, physical, lifestyle, engagement) and the output
// preserves that order. A rule that finds nothing emits nothing.
func SynthesizeProfile(turns []domain.ChatTurn) []string {
	var profile []string

	var sb strings.Builder
	for i, turn := range turns {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.ToLower(turn.UserMessage))
	}
	blob := sb.String()

	// Sleep
	if strings.Contains(blob, "sleep") || strings.Contains(blob, "tired") || strings.Contains(blob, "insomnia") {
		var issues []string
		if strings.Contains(blob, "can't sleep") || strings.Contains(blob, "insomnia") {
			issues = append(issues, "insomnia")
		}
		if strings.Contains(blob, "tired") || strings.Contains(blob, "fatigue") {
			issues = append(issues, "fatigue")
		}
		if len(issues) > 0 {
			profile = append(profile, "Sleep concerns: "+strings.Join(issues, ", "))
		}
	}

	// Stress
	if strings.Contains(blob, "stress") || strings.Contains(blob, "anxiety") || strings.Contains(blob, "overwhelmed") {
		var sources []string
		if strings.Contains(blob, "exam") || strings.Contains(blob, "test") || strings.Contains(blob, "study") {
			sources = append(sources, "academic stress")
		}
		if strings.Contains(blob, "work") || strings.Contains(blob, "job") {
			sources = append(sources, "work stress")
		}
		if strings.Contains(blob, "social") || strings.Contains(blob, "relationship") {
			sources = append(sources, "social stress")
		}
		if len(sources) > 0 {
			profile = append(profile, "Stress sources: "+strings.Join(sources, ", "))
		} else {
			profile = append(profile, "General stress/anxiety concerns")
		}
	}

	// Physical symptoms
	var symptoms []string
	if strings.Contains(blob, "headache") || strings.Contains(blob, "migraine") {
		symptoms = append(symptoms, "headaches")
	}
	if strings.Contains(blob, "back pain") || strings.Contains(blob, "neck pain") {
		symptoms = append(symptoms, "musculoskeletal pain")
	}
	if strings.Contains(blob, "stomach") || strings.Contains(blob, "digestive") {
		symptoms = append(symptoms, "digestive issues")
	}
	if len(symptoms) > 0 {
		profile = append(profile, "Physical symptoms: "+strings.Join(symptoms, ", "))
	}

	// Lifestyle factors
	var factors []string
	if strings.Contains(blob, "diet") || strings.Contains(blob, "eating") || strings.Contains(blob, "nutrition") {
		factors = append(factors, "nutrition concerns")
	}
	if strings.Contains(blob, "exercise") || strings.Contains(blob, "fitness") || strings.Contains(blob, "workout") {
		factors = append(factors, "fitness/exercise")
	}
	if strings.Contains(blob, "student") || strings.Contains(blob, "college") || strings.Contains(blob, "university") {
		factors = append(factors, "student lifestyle")
	}
	if len(factors) > 0 {
		profile = append(profile, "Lifestyle factors: "+strings.Join(factors, ", "))
	}

	// Engagement
	if len(turns) >= 5 {
		profile = append(profile, fmt.Sprintf("Active user with %d previous conversations", len(turns)))
	}

	return profile
}
