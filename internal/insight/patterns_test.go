package insight

import (
	"reflect"
	"testing"

	"github.com/campuscare/healthbot/internal/domain"
)

func turnsFromMessages(messages ...string) []domain.ChatTurn {
	turns := make([]domain.ChatTurn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, domain.ChatTurn{UserMessage: m, BotResponse: "ok"})
	}
	return turns
}

func TestAnalyzePatterns_SingleMentionsNeverTag(t *testing.T) {
	// Two distinct terms, one mention each: threshold is per-term, not combined.
	turns := turnsFromMessages(
		"so much stress lately",
		"a bit of anxiety before class",
	)

	if tags := AnalyzePatterns(turns); len(tags) != 0 {
		t.Errorf("expected no tags for single mentions, got %v", tags)
	}
}

func TestAnalyzePatterns_RanksByFrequency(t *testing.T) {
	turns := turnsFromMessages(
		"I cannot sleep at night",
		"sleep keeps escaping me",
		"bad sleep again, and my diet is poor",
		"my diet needs fixing",
	)

	tags := AnalyzePatterns(turns)
	if want := []string{"sleep", "diet"}; !reflect.DeepEqual(tags, want) {
		t.Errorf("expected %v, got %v", want, tags)
	}
}

func TestAnalyzePatterns_CapsAtThree(t *testing.T) {
	turns := turnsFromMessages(
		"sleep diet exam fever",
		"sleep diet exam fever",
	)

	tags := AnalyzePatterns(turns)
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, got %d: %v", len(tags), tags)
	}
}

func TestAnalyzePatterns_TiesFollowLexiconOrder(t *testing.T) {
	// diet and sleep both recur twice; sleep is declared first in the lexicon.
	turns := turnsFromMessages(
		"diet and sleep trouble",
		"diet and sleep trouble again",
	)

	tags := AnalyzePatterns(turns)
	if want := []string{"sleep", "diet"}; !reflect.DeepEqual(tags, want) {
		t.Errorf("expected lexicon-order tie-break %v, got %v", want, tags)
	}
}

func TestAnalyzePatterns_SubstringMatchIsPermissive(t *testing.T) {
	// "stressed" contains "stress"; containment is deliberate.
	turns := turnsFromMessages(
		"feeling stressed out",
		"so stressed about everything",
	)

	tags := AnalyzePatterns(turns)
	if len(tags) != 1 || tags[0] != "stress" {
		t.Errorf("expected [stress], got %v", tags)
	}
}

func TestAnalyzePatterns_Idempotent(t *testing.T) {
	turns := turnsFromMessages(
		"sleep badly, headache all day",
		"headache again after no sleep",
		"third day of headache",
	)

	first := AnalyzePatterns(turns)
	second := AnalyzePatterns(turns)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical output on repeated calls: %v vs %v", first, second)
	}
}

func TestAnalyzePatterns_IgnoresBotResponses(t *testing.T) {
	turns := []domain.ChatTurn{
		{UserMessage: "hello there", BotResponse: "try to sleep more, sleep matters"},
		{UserMessage: "ok", BotResponse: "sleep is important"},
	}

	if tags := AnalyzePatterns(turns); len(tags) != 0 {
		t.Errorf("bot responses must not feed the counter, got %v", tags)
	}
}
