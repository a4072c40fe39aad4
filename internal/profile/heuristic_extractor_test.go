package profile

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `John Smith
john.smith@example.com | (555) 123-4567

Senior engineer with 6 years of experience building web services.
Skills: Python, Django, Docker, AWS, PostgreSQL, Git
Bachelor of Science in Computer Science`

func TestHeuristicExtractorSampleResume(t *testing.T) {
	got := NewHeuristicExtractor().Extract(context.Background(), sampleResume)

	if got.Name != "John Smith" {
		t.Fatalf("Name = %q", got.Name)
	}
	if got.Email != "john.smith@example.com" {
		t.Fatalf("Email = %q", got.Email)
	}
	if got.Phone != "(555) 123-4567" {
		t.Fatalf("Phone = %q", got.Phone)
	}
	if got.TotalExperienceYears != 6 {
		t.Fatalf("TotalExperienceYears = %v", got.TotalExperienceYears)
	}
	for _, want := range []string{"Python", "Django", "Docker", "AWS", "PostgreSQL", "Git"} {
		if !containsString(got.Skills, want) {
			t.Fatalf("Skills missing %q: %v", want, got.Skills)
		}
	}
	if len(got.Experience) != 1 || got.Experience[0].Title != "Senior Engineer" {
		t.Fatalf("Experience = %+v", got.Experience)
	}
	if len(got.Education) != 1 || got.Education[0].Degree != "Bachelor of Science" {
		t.Fatalf("Education = %+v", got.Education)
	}
	if !reflect.DeepEqual(got.Languages, []string{"English"}) {
		t.Fatalf("Languages = %v", got.Languages)
	}
	if !strings.Contains(got.Summary, "6+ years") {
		t.Fatalf("Summary = %q", got.Summary)
	}
}

func TestHeuristicExtractorEmptyResume(t *testing.T) {
	got := NewHeuristicExtractor().Extract(context.Background(), "")

	if got.Name != "Unknown Candidate" {
		t.Fatalf("Name = %q", got.Name)
	}
	if got.Email != NotSpecified || got.Phone != NotSpecified {
		t.Fatalf("contact fields = %q / %q", got.Email, got.Phone)
	}
	if len(got.Skills) != 0 {
		t.Fatalf("Skills = %v, want empty", got.Skills)
	}
	if got.TotalExperienceYears != 0 {
		t.Fatalf("TotalExperienceYears = %v", got.TotalExperienceYears)
	}
	if len(got.Education) != 1 || got.Education[0].Year != NotSpecified {
		t.Fatalf("Education = %+v", got.Education)
	}
}

func TestHeuristicExtractorSkillCap(t *testing.T) {
	text := strings.Join(skillVocabulary, " ")
	got := NewHeuristicExtractor().Extract(context.Background(), text)
	if len(got.Skills) != maxDetectedSkills {
		t.Fatalf("len(Skills) = %d, want %d", len(got.Skills), maxDetectedSkills)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
