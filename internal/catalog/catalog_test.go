package catalog

import "testing"

func TestSurveyLookups(t *testing.T) {
	all := Surveys()
	if len(all) == 0 {
		t.Fatalf("catalog is empty")
	}
	for _, s := range all {
		if s.ID == "" || s.Title == "" || s.Category == "" {
			t.Fatalf("incomplete survey: %+v", s)
		}
		if len(s.Questions) == 0 {
			t.Fatalf("survey %s has no questions", s.ID)
		}
		if got := SurveyByID(s.ID); got == nil || got.Title != s.Title {
			t.Fatalf("lookup failed for %s", s.ID)
		}
	}
}

func TestSurveyFallbacks(t *testing.T) {
	if got := SurveyByID("nope"); got != nil {
		t.Fatalf("unknown id must yield nil")
	}
	if got := SurveyTitle("nope"); got != "Desconhecido" {
		t.Fatalf("title fallback: %q", got)
	}
	if got := SurveyCategory("nope"); got != "geral" {
		t.Fatalf("category fallback: %q", got)
	}
}

func TestQuestionText(t *testing.T) {
	s := Surveys()[0]
	q := s.Questions[0]
	if got := QuestionText(s.ID, q.ID); got != q.Text {
		t.Fatalf("question text: %q", got)
	}
	// unknown question ids come back as the id itself
	if got := QuestionText(s.ID, "zz"); got != "zz" {
		t.Fatalf("unknown question fallback: %q", got)
	}
}

func TestBuiltinResourcesAreCopied(t *testing.T) {
	a := BuiltinResources()
	if len(a) == 0 {
		t.Fatalf("no builtin resources")
	}
	a[0].Title = "mutated"
	b := BuiltinResources()
	if b[0].Title == "mutated" {
		t.Fatalf("BuiltinResources must return a copy")
	}
}

func TestChecklistSections(t *testing.T) {
	sections := ChecklistSections()
	if len(sections) == 0 {
		t.Fatalf("no checklist sections")
	}
	seen := map[string]bool{}
	for _, sec := range sections {
		if len(sec.Items) == 0 {
			t.Fatalf("section %s has no items", sec.Title)
		}
		for _, item := range sec.Items {
			if seen[item.ID] {
				t.Fatalf("duplicate checklist item id %s", item.ID)
			}
			seen[item.ID] = true
		}
	}
}
