// Package catalog holds the build-time questionnaire and resource catalogs.
// These are process-wide read-only configuration; owner-scoped data lives in
// the database.
package catalog

type Question struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Type        string   `json:"type"` // scale | text | choice | boolean | multi-choice | date | info
	Options     []string `json:"options,omitempty"`
	ScaleStart  string   `json:"scale_start,omitempty"`
	ScaleEnd    string   `json:"scale_end,omitempty"`
	Category    string   `json:"category"`
	Placeholder string   `json:"placeholder,omitempty"`
}

type Survey struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"` // mental | physical | social | org | preferences | initiatives
	EstimatedTime string     `json:"estimated_time"`
	Questions     []Question `json:"questions"`
}

// Standard Likert anchor labels shared across surveys.
const (
	scaleFreqStart    = "Nunca"
	scaleFreqEnd      = "Sempre"
	scaleSatisfStart  = "Muito Insatisfeito"
	scaleSatisfEnd    = "Muito Satisfeito"
	scaleAgreeStart   = "Discordo Totalmente"
	scaleAgreeEnd     = "Concordo Totalmente"
	scaleQualityStart = "Muito Ruim"
	scaleQualityEnd   = "Excelente"
	scaleMoodStart    = "Muito Baixo/Cansado"
	scaleMoodEnd      = "Excelente/Energizado"
)

func agree(id, text, category string) Question {
	return Question{ID: id, Text: text, Type: "scale", ScaleStart: scaleAgreeStart, ScaleEnd: scaleAgreeEnd, Category: category}
}

func freq(id, text, category string) Question {
	return Question{ID: id, Text: text, Type: "scale", ScaleStart: scaleFreqStart, ScaleEnd: scaleFreqEnd, Category: category}
}

func satisf(id, text, category string) Question {
	return Question{ID: id, Text: text, Type: "scale", ScaleStart: scaleSatisfStart, ScaleEnd: scaleSatisfEnd, Category: category}
}

func quality(id, text, category string) Question {
	return Question{ID: id, Text: text, Type: "scale", ScaleStart: scaleQualityStart, ScaleEnd: scaleQualityEnd, Category: category}
}

func free(id, text, category string) Question {
	return Question{ID: id, Text: text, Type: "text", Category: category}
}

var surveys = []Survey{
	{
		ID:            "F-leadership",
		Title:         "F) Liderança e Suporte Gerencial",
		Description:   "Avalie a qualidade da liderança e o suporte oferecido pela sua chefia direta.",
		Category:      "org",
		EstimatedTime: "5 min",
		Questions: []Question{
			agree("f1", "1. O meu gestor direto trata-me com respeito e dignidade.", "org"),
			freq("f2", "2. O meu gestor fornece feedback útil e regular sobre o meu trabalho.", "org"),
			agree("f3", "3. Sinto que o meu gestor se preocupa genuinamente com o meu bem-estar pessoal.", "org"),
			agree("f4", "4. O meu gestor comunica as metas e expectativas de forma clara.", "org"),
			agree("f5", "5. Sinto-me confortável para pedir ajuda ao meu gestor quando tenho dificuldades.", "org"),
			freq("f6", "6. O meu gestor reconhece o meu bom desempenho e as minhas conquistas.", "org"),
			agree("f7", "7. O meu gestor está aberto a receber sugestões e opiniões da equipe.", "org"),
			freq("f8", "8. O meu gestor ajuda a remover obstáculos que atrapalham o meu trabalho.", "org"),
			free("f9", "Espaço para sugestões ou observações ao seu gestor:", "org"),
		},
	},
	{
		ID:            "D-org-practices",
		Title:         "D) Gestão e Práticas Organizacionais",
		Description:   "Avaliação da capacidade da empresa de promover o bem-estar no local de trabalho.",
		Category:      "org",
		EstimatedTime: "10 min",
		Questions: []Question{
			agree("d1", "1) A minha carga de trabalho é gerenciável e favorável à execução do trabalho.", "org"),
			agree("d2", "2) A empresa valoriza e promove a conciliação saudável entre a vida pessoal e profissional.", "org"),
			agree("d3", "3) Os meus esforços e contribuições são reconhecidos e valorizados pela empresa.", "org"),
			agree("d4", "4) Tenho a autonomia necessária para tomar decisões e tenho liberdade para exercer as minhas funções.", "org"),
			agree("d5", "5) A empresa oferece oportunidades suficientes de crescimento profissional e aprendizagem.", "org"),
			agree("d6", "6) Em geral, sinto que o ambiente de trabalho é saudável e de baixo/moderado stress.", "org"),
			agree("d7", "7) A temperatura, iluminação e ventilação do local de trabalho é adequada e confortável.", "org"),
			agree("d8", "8) Os equipamentos de trabalho e o mobiliário são confortáveis e permitem manter uma boa postura.", "org"),
			agree("d9", "9) O nível de ruído no local de trabalho não interfere com a minha concentração.", "org"),
			agree("d10", "10) As condições de higiene são adequadas (limpeza, banheiros, copa).", "org"),
			agree("d11", "11) A empresa incentiva pausas para movimentação durante o horário de trabalho.", "org"),
			agree("d12", "12) A empresa oferece/incentiva opções de alimentação saudável.", "org"),
			agree("d14", "13) A empresa valoriza a diversidade e inclusão.", "org"),
			agree("d15", "14) A comunicação interna é clara, aberta e transparente.", "org"),
			agree("d16", "15) Os relacionamentos entre colegas são positivos e saudáveis.", "org"),
			agree("d19", "16) Sinto-me confortável em falar da minha saúde/sentimentos com o RH ou gestão.", "org"),
			free("d22", "Comentários Adicionais ou Sugestões para a Organização:", "org"),
		},
	},
	{
		ID:            "B-physical-wellbeing",
		Title:         "B) Saúde e Bem-estar Físico",
		Description:   "Avaliação da saúde física, ergonomia e nível de energia corporal.",
		Category:      "physical",
		EstimatedTime: "5 min",
		Questions: []Question{
			agree("b1", "1. Sinto-me fisicamente confortável e sem dores corporais (costas, pescoço, pulsos) durante a jornada.", "physical"),
			agree("b2", "2. O meu posto de trabalho e equipamentos permitem-me manter uma postura correta e saudável.", "physical"),
			freq("b3", "3. Consigo realizar pausas ativas (levantar, alongar) regularmente durante o dia.", "physical"),
			agree("b4", "4. Sinto que a minha visão descansa adequadamente e não tenho fadiga visual excessiva.", "physical"),
			freq("b5", "5. Consigo manter uma hidratação e alimentação adequadas durante o horário de trabalho.", "physical"),
			agree("b6", "6. As condições ambientais (iluminação, temperatura, ruído) favorecem o meu conforto físico.", "physical"),
			agree("b7", "7. Chego ao final do dia com energia física suficiente (sem exaustão extrema).", "physical"),
			agree("b8", "8. Sinto que o meu ambiente de trabalho é seguro e higienizado.", "physical"),
			free("b9", "Espaço para relatar desconfortos físicos específicos ou necessidades ergonômicas:", "physical"),
		},
	},
	{
		ID:            "C-social-wellbeing",
		Title:         "C) Bem-estar Social",
		Description:   "Avaliação da inclusão, relacionamentos e cultura de equipe.",
		Category:      "social",
		EstimatedTime: "8 min",
		Questions: []Question{
			agree("c1", "1. Sinto que pertenço e sou valorizado(a) na minha equipe.", "social"),
			agree("c2", "2. Sinto-me apoiado(a) pelos meus colegas quando preciso de ajuda.", "social"),
			quality("c3", "3. Como avaliaria o nível de colaboração no seu departamento?", "social"),
			agree("c4", "4. Tenho relacionamentos construtivos e respeitosos com meus colegas.", "social"),
			freq("c5", "5. Tenho oportunidades de interagir socialmente com colegas (almoços, cafés, eventos).", "social"),
			freq("c7", "6. Sinto-me ouvido(a) quando expresso minhas opiniões em reuniões.", "social"),
			agree("c8", "7. A liderança demonstra empatia pelas situações pessoais dos colaboradores.", "social"),
			quality("c9", "8. No geral, como classificaria o clima social da empresa?", "social"),
			free("c10", "Sugestões para melhorar a integração e o clima social:", "social"),
		},
	},
	{
		ID:            "A-mental-wellbeing",
		Title:         "A) Saúde e Bem-estar Mental",
		Description:   "Diagnóstico de stress, ansiedade e satisfação mental.",
		Category:      "mental",
		EstimatedTime: "9 min",
		Questions: []Question{
			freq("a1", "1. Com que frequência sente ansiedade ou nervosismo por causa do trabalho?", "mental"),
			freq("a2", "2. Sinto-me sobrecarregado(a) com o volume de tarefas/metas.", "mental"),
			agree("a3", "3. Tenho autonomia suficiente para decidir como executar meu trabalho.", "mental"),
			agree("a4", "4. Sinto segurança psicológica para admitir erros sem medo de punição.", "mental"),
			satisf("a5", "5. Estou satisfeito(a) com o reconhecimento que recebo.", "mental"),
			agree("a6", "6. Vejo oportunidades claras de crescimento e aprendizado na empresa.", "mental"),
			freq("a7", "7. Consigo \"desligar\" do trabalho quando estou em casa/folga.", "mental"),
			{ID: "a8", Text: "8. Como classificaria o ambiente de trabalho em termos de positividade?", Type: "scale", ScaleStart: "Tóxico", ScaleEnd: "Muito Positivo", Category: "mental"},
			quality("a10", "9. No geral, como classificaria sua saúde mental atual?", "mental"),
			free("a11", "Sugestões para reduzir o estresse e melhorar a saúde mental:", "mental"),
		},
	},
	{
		ID:            "E-work-preferences",
		Title:         "E) Satisfação com Modelo de Trabalho",
		Description:   "Avaliação do alinhamento entre suas preferências e o modelo atual.",
		Category:      "preferences",
		EstimatedTime: "5 min",
		Questions: []Question{
			satisf("e1", "1. Estou satisfeito com meu horário de trabalho atual.", "preferences"),
			satisf("e2", "2. Estou satisfeito com o modelo (presencial/híbrido/remoto) atual.", "preferences"),
			agree("e3", "3. As ferramentas de comunicação utilizadas são eficientes.", "preferences"),
			agree("e4", "4. O ambiente físico permite que eu me concentre adequadamente.", "preferences"),
			agree("e5", "5. Tenho o nível de autonomia que desejo para minhas tarefas.", "preferences"),
			satisf("e6", "6. Estou satisfeito com a frequência de feedbacks que recebo.", "preferences"),
			agree("e7", "7. Sinto que minhas preferências de desenvolvimento profissional são atendidas.", "preferences"),
			free("e8", "Quais seriam suas preferências ideais (Horário/Modelo/Ferramentas)?", "preferences"),
		},
	},
	{
		ID:            "G-checkin",
		Title:         "G) Acompanhamento Contínuo (Check-in de Clima)",
		Description:   "Check-in rápido semanal para medir humor e energia da equipe.",
		Category:      "mental",
		EstimatedTime: "2 min",
		Questions: []Question{
			{ID: "g1", Text: "1. Termômetro de Humor: Como você classificaria seu estado de ânimo hoje?", Type: "scale", ScaleStart: scaleMoodStart, ScaleEnd: scaleMoodEnd, Category: "mental"},
			agree("g2", "2. Nível de Energia: Sinto-me com energia para realizar minhas tarefas.", "mental"),
			agree("g3", "3. Fluxo de Trabalho: Senti que meu trabalho fluiu bem esta semana.", "mental"),
			agree("g4", "4. Apoio: Senti-me apoiado(a) pela minha equipe/gestão nos últimos dias.", "mental"),
			free("g5", "Tem algum obstáculo (\"bloqueio\") ou vitória recente que gostaria de compartilhar?", "mental"),
		},
	},
	{
		ID:            "H-financial",
		Title:         "H) Bem-estar Financeiro",
		Description:   "Avaliação sobre como a vida financeira impacta o seu bem-estar.",
		Category:      "org",
		EstimatedTime: "5 min",
		Questions: []Question{
			agree("h1", "1. Sinto-me seguro(a) em relação à minha situação financeira atual.", "org"),
			freq("h2", "2. Minhas preocupações financeiras afetam meu foco no trabalho.", "org"),
			agree("h3", "3. Tenho capacidade de lidar com despesas inesperadas (emergências).", "org"),
			satisf("h4", "4. Estou satisfeito(a) com os benefícios (ex: plano saúde, vale) da empresa.", "org"),
			agree("h5", "5. Acredito que minha remuneração é justa em relação ao mercado.", "org"),
			free("h6", "Sugestões de benefícios ou suporte financeiro que a empresa poderia oferecer:", "org"),
		},
	},
	{
		ID:            "I-dei",
		Title:         "I) Diversidade, Equidade e Inclusão",
		Description:   "Avaliação do ambiente de respeito e igualdade.",
		Category:      "social",
		EstimatedTime: "6 min",
		Questions: []Question{
			agree("i1", "1. Sinto que posso ser eu mesmo(a) no trabalho sem receio de julgamento.", "social"),
			agree("i2", "2. A empresa valoriza e respeita pessoas de diferentes origens e identidades.", "social"),
			agree("i3", "3. Acredito que as oportunidades de promoção são justas para todos.", "social"),
			agree("i4", "4. Sinto-me seguro(a) para reportar discriminação se ela ocorrer.", "social"),
			agree("i5", "5. A liderança demonstra compromisso real com a inclusão.", "social"),
			free("i6", "Sugestões para tornar a empresa mais inclusiva:", "social"),
		},
	},
}

// Surveys returns the full questionnaire catalog.
func Surveys() []Survey { return surveys }

// SurveyByID returns nil when the id is unknown.
func SurveyByID(id string) *Survey {
	for i := range surveys {
		if surveys[i].ID == id {
			return &surveys[i]
		}
	}
	return nil
}

// QuestionText resolves a question id inside a survey, falling back to the
// raw id when either side is unknown.
func QuestionText(surveyID, questionID string) string {
	s := SurveyByID(surveyID)
	if s == nil {
		return questionID
	}
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q.Text
		}
	}
	return questionID
}

// SurveyTitle returns the denormalized title, "Desconhecido" for unknown ids.
func SurveyTitle(id string) string {
	if s := SurveyByID(id); s != nil {
		return s.Title
	}
	return "Desconhecido"
}

// SurveyCategory returns the denormalized category, "geral" for unknown ids.
func SurveyCategory(id string) string {
	if s := SurveyByID(id); s != nil {
		return s.Category
	}
	return "geral"
}
