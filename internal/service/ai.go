package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"workacare/internal/config"
	"workacare/internal/logger"
	"workacare/internal/model"
)

type AIService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

const analysisSystemPrompt = `Você é um consultor sênior de saúde ocupacional e bem-estar corporativo.
Analise os indicadores agregados fornecidos e devolva APENAS um JSON válido no formato:
{"summary":"...","recommendations":["...","..."],"riskLevel":"low|medium|high"}
O summary tem no máximo 3 frases em português. As recomendações são ações práticas e específicas.`

// Analyze asks the language model for an executive reading of the dashboard
// aggregates. Any failure degrades to the static report so the analysis
// panel never errors out.
func (s *AIService) Analyze(ctx context.Context, metrics []model.KPIMetric, chart []model.ChartPoint, departments []model.DepartmentData) model.AnalysisReport {
	if s.apiKey == "" {
		logger.Info("ai analysis in demo mode, no api key configured")
		return fallbackReport()
	}

	prompt, err := buildAnalysisPrompt(metrics, chart, departments)
	if err != nil {
		logger.Error("ai prompt build failed", "error", err)
		return fallbackReport()
	}

	raw, err := s.chat(ctx, analysisSystemPrompt, prompt)
	if err != nil {
		logger.Error("ai analysis call failed", "error", err)
		return fallbackReport()
	}

	var report model.AnalysisReport
	if err := json.Unmarshal([]byte(stripFences(raw)), &report); err != nil {
		logger.Error("ai analysis returned unparseable payload", "error", err)
		return fallbackReport()
	}
	switch report.RiskLevel {
	case "low", "medium", "high":
	default:
		report.RiskLevel = "medium"
	}
	return report
}

func buildAnalysisPrompt(metrics []model.KPIMetric, chart []model.ChartPoint, departments []model.DepartmentData) (string, error) {
	payload := map[string]any{
		"indicadores":   metrics,
		"evolucao":      chart,
		"departamentos": departments,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal aggregates: %w", err)
	}
	return "Dados agregados de bem-estar (escala 0-100):\n" + string(data), nil
}

func (s *AIService) chat(ctx context.Context, system, user string) (string, error) {
	body := map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("llm status %d: %s", resp.StatusCode, data)
	}

	data, _ := io.ReadAll(resp.Body)
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty choices")
	}
	return result.Choices[0].Message.Content, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag, which several models wrap JSON answers in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 && !strings.HasPrefix(s, "{") {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func fallbackReport() model.AnalysisReport {
	return model.AnalysisReport{
		Summary: "Os indicadores gerais de bem-estar encontram-se em nível moderado. " +
			"O bem-estar mental apresenta a maior oportunidade de melhoria e merece atenção prioritária. " +
			"Recomenda-se acompanhamento contínuo dos departamentos com menor pontuação.",
		Recommendations: []string{
			"Realizar sessões de escuta ativa com os departamentos de menor pontuação",
			"Implementar pausas programadas e incentivar o uso integral dos horários de descanso",
			"Divulgar os canais de apoio psicológico disponíveis para as equipes",
		},
		RiskLevel: "medium",
	}
}
