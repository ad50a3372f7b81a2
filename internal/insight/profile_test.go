package insight

import (
	"reflect"
	"testing"
)

func TestSynthesizeProfile_AcademicStress(t *testing.T) {
	turns := turnsFromMessages("exam stress is killing me")

	profile := SynthesizeProfile(turns)
	if want := []string{"Stress sources: academic stress"}; !reflect.DeepEqual(profile, want) {
		t.Errorf("expected %v, got %v", want, profile)
	}
}

func TestSynthesizeProfile_GenericStressFallback(t *testing.T) {
	turns := turnsFromMessages("I am completely overwhelmed")

	profile := SynthesizeProfile(turns)
	if want := []string{"General stress/anxiety concerns"}; !reflect.DeepEqual(profile, want) {
		t.Errorf("expected %v, got %v", want, profile)
	}
}

func TestSynthesizeProfile_SleepSubConcerns(t *testing.T) {
	turns := turnsFromMessages("I can't sleep and I am always tired")

	profile := SynthesizeProfile(turns)
	if want := []string{"Sleep concerns: insomnia, fatigue"}; !reflect.DeepEqual(profile, want) {
		t.Errorf("expected %v, got %v", want, profile)
	}
}

func TestSynthesizeProfile_SleepTriggerWithoutSubConcern(t *testing.T) {
	// "sleep" alone trips the trigger but matches neither sub-concern, so
	// the rule emits nothing.
	turns := turnsFromMessages("my sleep schedule moved around")

	if profile := SynthesizeProfile(turns); len(profile) != 0 {
		t.Errorf("expected no fragments, got %v", profile)
	}
}

func TestSynthesizeProfile_PhysicalSymptomsListed(t *testing.T) {
	turns := turnsFromMessages("constant headache and my stomach aches too")

	profile := SynthesizeProfile(turns)
	if want := []string{"Physical symptoms: headaches, digestive issues"}; !reflect.DeepEqual(profile, want) {
		t.Errorf("expected %v, got %v", want, profile)
	}
}

func TestSynthesizeProfile_LifestyleFactors(t *testing.T) {
	turns := turnsFromMessages("my diet at college leaves no time for exercise")

	profile := SynthesizeProfile(turns)
	want := []string{"Lifestyle factors: nutrition concerns, fitness/exercise, student lifestyle"}
	if !reflect.DeepEqual(profile, want) {
		t.Errorf("expected %v, got %v", want, profile)
	}
}

func TestSynthesizeProfile_EngagementFragment(t *testing.T) {
	turns := turnsFromMessages("one", "two", "three", "four", "five")

	profile := SynthesizeProfile(turns)
	if want := []string{"Active user with 5 previous conversations"}; !reflect.DeepEqual(profile, want) {
		t.Errorf("expected %v, got %v", want, profile)
	}
}

func TestSynthesizeProfile_RuleOrderFixed(t *testing.T) {
	turns := turnsFromMessages(
		"tired all the time",
		"anxiety about my job",
	)

	profile := SynthesizeProfile(turns)
	want := []string{
		"Sleep concerns: fatigue",
		"Stress sources: work stress",
	}
	if !reflect.DeepEqual(profile, want) {
		t.Errorf("expected sleep before stress, got %v", profile)
	}
}

func TestSynthesizeProfile_EmptyWindow(t *testing.T) {
	if profile := SynthesizeProfile(nil); len(profile) != 0 {
		t.Errorf("expected empty profile, got %v", profile)
	}
}
