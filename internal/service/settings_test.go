package service

import (
	"context"
	"sort"
	"testing"
)

func TestSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(nil)
	got := svc.Get(context.Background(), "")
	if len(got.Departments) == 0 || len(got.ReportCategories) == 0 {
		t.Fatalf("defaults missing: %+v", got)
	}
	if !sort.StringsAreSorted(got.Departments) {
		t.Fatalf("departments must come back sorted: %v", got.Departments)
	}
	if got.CustomGuideQuestions == nil {
		t.Fatalf("guide questions must be an empty list, not nil")
	}
}

func TestCloneDefaultsIsIsolated(t *testing.T) {
	a := cloneDefaults()
	a.Departments[0] = "mutated"
	b := cloneDefaults()
	if b.Departments[0] == "mutated" {
		t.Fatalf("cloneDefaults must not share backing arrays")
	}
}
