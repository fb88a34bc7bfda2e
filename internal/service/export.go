package service

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"workacare/internal/catalog"
	"workacare/internal/model"
)

// The exports keep the semicolon-separated format the desktop spreadsheet
// locales expect: one header row, fields joined by ";", rows by "\n".
// Fields containing the separator, quotes or newlines are quoted with
// embedded quotes doubled.

// BuildCSV serializes a header plus data rows into the export string.
func BuildCSV(header []string, rows [][]string) string {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	w.Write(header)
	w.WriteAll(rows)
	return strings.TrimRight(buf.String(), "\n")
}

// flattenAnswer renders an answer cell: lists are comma-joined and embedded
// newlines are replaced so one answer stays on one row.
func flattenAnswer(v any) string {
	switch a := v.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, 0, len(a))
		for _, item := range a {
			parts = append(parts, flattenAnswer(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(a, ", ")
	case string:
		s := strings.ReplaceAll(a, "\r\n", " ")
		s = strings.ReplaceAll(s, "\n", " ")
		return strings.ReplaceAll(s, "\r", " ")
	case float64:
		if a == float64(int64(a)) {
			return strconv.FormatInt(int64(a), 10)
		}
		return strconv.FormatFloat(a, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", a)
	}
}

func participantName(p model.Participant) string {
	if p.Anonymous {
		return "Anônimo"
	}
	return p.Name
}

// ExportResponsesCSV is the full per-answer dump: one row per answered
// question with the participant block repeated.
func ExportResponsesCSV(rs []model.SurveyResponse) string {
	header := []string{
		"ID Resposta", "Data", "Nome", "Departamento", "Gênero", "Idade", "Tempo Casa",
		"Questionário", "Categoria", "Score Calculado", "Questão ID", "Texto da Questão", "Resposta",
	}
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		gender := r.Participant.Gender
		if gender == "" {
			gender = "N/A"
		}
		for _, qID := range sortedAnswerIDs(r) {
			rows = append(rows, []string{
				r.ID,
				r.CreatedAt.Format("02/01/2006"),
				participantName(r.Participant),
				r.Participant.Department,
				gender,
				r.Participant.Age,
				r.Participant.Tenure,
				r.SurveyTitle,
				r.SurveyCategory,
				strconv.Itoa(r.Score),
				qID,
				catalog.QuestionText(r.SurveyID, qID),
				flattenAnswer(r.Answers[qID]),
			})
		}
	}
	return BuildCSV(header, rows)
}

// ExportResponseSheet renders a single submission as a two-column sheet.
func ExportResponseSheet(r model.SurveyResponse) string {
	gender := r.Participant.Gender
	if gender == "" {
		gender = "N/A"
	}
	rows := [][]string{
		{"Participante", participantName(r.Participant)},
		{"Departamento", r.Participant.Department},
		{"Gênero", gender},
		{"Data", r.CreatedAt.Format("02/01/2006 15:04")},
		{"Questionário", r.SurveyTitle},
		{"Score", strconv.Itoa(r.Score)},
		{"---", "---"},
	}
	for _, qID := range sortedAnswerIDs(r) {
		rows = append(rows, []string{
			catalog.QuestionText(r.SurveyID, qID),
			flattenAnswer(r.Answers[qID]),
		})
	}
	return BuildCSV([]string{"Questão", "Resposta"}, rows)
}

// ExportReportCSV serializes a generated report table.
func ExportReportCSV(rows []model.ReportRow) string {
	header := []string{"Item / Grupo", "Métrica", "Valor", "Participantes"}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{row.Item, row.Metric, strconv.Itoa(row.Value), strconv.Itoa(row.Count)})
	}
	return BuildCSV(header, out)
}

// ExportFilename stamps the export kind with the current date.
func ExportFilename(kind string, now time.Time) string {
	return fmt.Sprintf("workacare_%s_%s.csv", kind, now.Format("2006-01-02"))
}

// sortedAnswerIDs yields answer keys in catalog question order, unknown ids
// last in lexical order, so repeated exports produce identical files.
func sortedAnswerIDs(r model.SurveyResponse) []string {
	out := make([]string, 0, len(r.Answers))
	seen := map[string]bool{}
	if s := catalog.SurveyByID(r.SurveyID); s != nil {
		for _, q := range s.Questions {
			if _, ok := r.Answers[q.ID]; ok {
				out = append(out, q.ID)
				seen[q.ID] = true
			}
		}
	}
	rest := make([]string, 0, len(r.Answers))
	for qID := range r.Answers {
		if !seen[qID] {
			rest = append(rest, qID)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
