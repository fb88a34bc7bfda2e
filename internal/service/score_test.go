package service

import (
	"testing"

	"workacare/internal/model"
)

func TestComputeScoreEmpty(t *testing.T) {
	if got := ComputeScore(model.AnswerMap{}); got != 0 {
		t.Fatalf("empty answers: got %d, want 0", got)
	}
	if got := ComputeScore(nil); got != 0 {
		t.Fatalf("nil answers: got %d, want 0", got)
	}
}

func TestComputeScoreBounds(t *testing.T) {
	if got := ComputeScore(model.AnswerMap{"q1": float64(1)}); got != 20 {
		t.Fatalf("all-min: got %d, want 20", got)
	}
	if got := ComputeScore(model.AnswerMap{"q1": float64(5), "q2": float64(5)}); got != 100 {
		t.Fatalf("all-max: got %d, want 100", got)
	}
}

func TestComputeScoreRoundsHalfUp(t *testing.T) {
	// mean 3.5 on the 1-5 scale maps to 70
	if got := ComputeScore(model.AnswerMap{"q1": float64(3), "q2": float64(4)}); got != 70 {
		t.Fatalf("got %d, want 70", got)
	}
	// mean 2.5 maps to 50, half rounds away from zero
	if got := ComputeScore(model.AnswerMap{"q1": float64(2), "q2": float64(3)}); got != 50 {
		t.Fatalf("got %d, want 50", got)
	}
}

func TestComputeScoreSkipsNonNumeric(t *testing.T) {
	answers := model.AnswerMap{
		"q1": float64(4),
		"q2": "texto livre",
		"q3": []string{"a", "b"},
		"q4": float64(2),
	}
	if got := ComputeScore(answers); got != 60 {
		t.Fatalf("got %d, want 60", got)
	}
}

func TestComputeScoreSkipsOutOfRange(t *testing.T) {
	answers := model.AnswerMap{
		"q1": float64(3),
		"q2": float64(0),
		"q3": float64(9),
	}
	if got := ComputeScore(answers); got != 60 {
		t.Fatalf("got %d, want 60", got)
	}
	// nothing usable at all
	if got := ComputeScore(model.AnswerMap{"q1": float64(42)}); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestLikertValueTypes(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{float64(3), 3, true},
		{float32(4), 4, true},
		{int(5), 5, true},
		{int64(1), 1, true},
		{"3", 0, false},
		{true, 0, false},
		{nil, 0, false},
	}
	for _, c := range cases {
		got, ok := likertValue(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("likertValue(%v)=(%v,%v), want (%v,%v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
