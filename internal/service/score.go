package service

import (
	"math"

	"workacare/internal/model"
)

// likertValue reports whether an answer counts toward the normalized score:
// any numeric answer within the 1-5 Likert range.
func likertValue(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	if f < 1 || f > 5 {
		return 0, false
	}
	return f, true
}

// ComputeScore normalizes the 1-5 Likert answers of a submission to 0-100:
// round-half-up(mean * 20). No numeric answers yields 0.
func ComputeScore(answers model.AnswerMap) int {
	var sum float64
	count := 0
	for _, v := range answers {
		if f, ok := likertValue(v); ok {
			sum += f
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count) * 20))
}

// avgScore is the integer mean of submission scores; zero members yields 0.
func avgScore(rs []model.SurveyResponse) int {
	if len(rs) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rs {
		sum += r.Score
	}
	return int(math.Round(float64(sum) / float64(len(rs))))
}

func avgInts(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(vals))))
}

func filterResponses(rs []model.SurveyResponse, keep func(model.SurveyResponse) bool) []model.SurveyResponse {
	out := make([]model.SurveyResponse, 0, len(rs))
	for _, r := range rs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
