package service

import (
	"strings"
	"testing"

	"workacare/internal/catalog"
)

func TestRenderChecklistEmpty(t *testing.T) {
	got := renderChecklist("", nil)
	if !strings.HasPrefix(got, "CHECKLIST REALIZADO.") {
		t.Fatalf("missing preamble: %q", got)
	}
	if !strings.Contains(got, "Resumo: Sem resumo adicional.") {
		t.Fatalf("missing default summary: %q", got)
	}
}

func TestRenderChecklistAnswersInSectionOrder(t *testing.T) {
	sections := catalog.ChecklistSections()
	first := sections[0].Items[0]
	last := sections[len(sections)-1]
	lastItem := last.Items[len(last.Items)-1]

	got := renderChecklist("visita tranquila", map[string]string{
		lastItem.ID: "Sim",
		first.ID:    "Parcial",
		"unknown":   "ignored",
	})
	firstIdx := strings.Index(got, "["+first.ID+"]")
	lastIdx := strings.Index(got, "["+lastItem.ID+"]")
	if firstIdx < 0 || lastIdx < 0 || firstIdx > lastIdx {
		t.Fatalf("section order broken:\n%s", got)
	}
	if strings.Contains(got, "unknown") {
		t.Fatalf("answers outside the checklist must be dropped:\n%s", got)
	}
	if !strings.HasSuffix(got, "Resumo: visita tranquila") {
		t.Fatalf("summary must close the content:\n%s", got)
	}
}
