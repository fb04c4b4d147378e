package model

import (
	"reflect"
	"testing"
)

func TestTestScoresKeepsFirstPositionLastValue(t *testing.T) {
	ts := NewTestScores()
	ts.Set("B", SkillScores{SkillVocabulary: 4})
	ts.Set("A", SkillScores{SkillVocabulary: 5})
	ts.Set("B", SkillScores{SkillVocabulary: 9})

	if got, want := ts.Codes(), []string{"B", "A"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Codes() = %v, want %v", got, want)
	}
	if ts.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ts.Len())
	}
	if s, ok := ts.Get("B"); !ok || s[SkillVocabulary] != 9 {
		t.Fatalf("Get(B) = %v, %v", s, ok)
	}
	if _, ok := ts.Get("C"); ok {
		t.Fatalf("Get(C) should be missing")
	}

	// Codes 返回副本
	codes := ts.Codes()
	codes[0] = "X"
	if ts.Codes()[0] != "B" {
		t.Fatalf("Codes() must not expose internal order")
	}
}

func TestSkillScoresMean(t *testing.T) {
	if m := (SkillScores{}).Mean(); m != 0 {
		t.Fatalf("empty Mean() = %v", m)
	}
	s := SkillScores{SkillPronunciation: 7, SkillBehavior: 8}
	if m := s.Mean(); m != 7.5 {
		t.Fatalf("Mean() = %v, want 7.5", m)
	}
}

func TestReportHeaders(t *testing.T) {
	want := []string{
		"student_code",
		"Pronunciation",
		"Communication & Interaction",
		"Vocabulary",
		"Listening for Detail",
		"Listening for Main Idea",
		"Behavior",
		"Final Report Comment",
	}
	if got := ReportHeaders(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ReportHeaders() = %v", got)
	}
}
