package catalog

import "workacare/internal/model"

// Built-in resource library. Shown after any owner-created resources; never
// written to the database.
var builtinResources = []model.Resource{
	{
		ID: "res_m1", Title: "Técnica de Respiração 4-7-8", Type: "guide", Category: "mental", Duration: "5 min", Thumbnail: "🌬️",
		Content: "**O que é:**\nUma técnica simples de respiração para acalmar o sistema nervoso rapidamente, ideal para momentos de alta ansiedade ou antes de dormir.\n\n**Como fazer:**\n1. **Inspire** pelo nariz silenciosamente contando até 4.\n2. **Segure** a respiração contando até 7.\n3. **Expire** pela boca fazendo um som de \"sopro\" contando até 8.\n\nRepita este ciclo por 4 vezes.\n\n**Dica:** Mantenha a ponta da língua no céu da boca, logo atrás dos dentes da frente, durante todo o exercício.",
	},
	{
		ID: "res_m2", Title: "Mindfulness: Escaneamento Corporal", Type: "guide", Category: "mental", Duration: "10 min", Thumbnail: "🧘",
		Content: "**O que é:**\nUma prática de atenção plena onde você foca a atenção em diferentes partes do corpo, notando tensões sem julgamento.\n\n**Benefícios:**\n* Reduz o stress físico e mental.\n* Melhora a consciência corporal.\n* Ajuda a adormecer.\n\n**Prática:**\nComece pelos dedos dos pés e vá subindo lentamente (tornozelos, pernas, joelhos...) até o topo da cabeça. Apenas observe: está quente? Frio? Tenso? Relaxado?",
	},
	{
		ID: "res_m3", Title: "Detox Digital no Trabalho", Type: "article", Category: "mental", Duration: "4 min leitura", Thumbnail: "📵",
		Content: "**Sinais que você precisa de um detox:**\n* Checa o e-mail compulsivamente.\n* Sente \"vibrações fantasmas\" no bolso.\n* Dificuldade de concentração por mais de 15 minutos.\n\n**Estratégias:**\n1. **Blocos de Foco:** Trabalhe 50min com celular em modo avião.\n2. **Sem Telas no Almoço:** Use esse tempo para saborear a comida e conversar.\n3. **Notificações:** Desative todas as notificações não essenciais (redes sociais, apps de compras).",
	},
	{
		ID: "res_p1", Title: "Alongamentos de Mesa (Desk Yoga)", Type: "video", Category: "physical", Duration: "8 min", Thumbnail: "🪑",
		Content: "**Sequência Rápida para Alívio:**\n\n1. **Pescoço:** Incline a cabeça para a direita, segure 15s. Repita para a esquerda.\n2. **Ombros:** Gire os ombros para trás 10 vezes lentamente.\n3. **Coluna:** Sentado, gire o tronco para a direita segurando no encosto da cadeira. Repita para o outro lado.\n4. **Punhos:** Estique o braço à frente e puxe os dedos para trás suavemente.\n\n**Faça isso a cada 2 horas!**",
	},
	{
		ID: "res_p2", Title: "Regra 20-20-20 para Olhos", Type: "guide", Category: "physical", Duration: "2 min", Thumbnail: "👁️",
		Content: "**Combata a Fadiga Visual Digital:**\n\nA cada **20 minutos** olhando para uma tela...\nOlhe para algo a **20 pés (6 metros)** de distância...\nPor pelo menos **20 segundos**.\n\nIsso relaxa o músculo ciliar do olho e previne dores de cabeça e visão turva.",
	},
	{
		ID: "res_p3", Title: "Checklist de Ergonomia", Type: "guide", Category: "ergonomics", Duration: "5 min", Thumbnail: "📏",
		Content: "**Configure sua estação:**\n\n* **Monitor:** O topo da tela deve estar na altura dos olhos.\n* **Cotovelos:** Devem formar um ângulo de 90º ao digitar.\n* **Pés:** Apoiados totalmente no chão ou em um apoio.\n* **Lombar:** Use uma cadeira com suporte lombar ou uma almofada pequena.\n* **Iluminação:** Evite reflexos na tela (luz vindo de trás ou de cima, não diretamente na frente).",
	},
	{
		ID: "res_n1", Title: "Lanches Energéticos vs. Picos de Açúcar", Type: "article", Category: "nutrition", Duration: "3 min leitura", Thumbnail: "🍎",
		Content: "**Evite:** Bolachas, refrigerantes, doces. Eles dão energia rápida, mas causam um \"crash\" (queda brusca) logo depois, gerando sono e fome.\n\n**Prefira:**\n* **Nozes e Castanhas:** Gorduras boas para o cérebro.\n* **Iogurte Natural:** Proteína.\n* **Fruta com Aveia:** Fibras que liberam energia lentamente.\n* **Chocolate Amargo (70%+):** Rico em antioxidantes e pouco açúcar.",
	},
	{
		ID: "res_n2", Title: "Hidratação e Cognição", Type: "article", Category: "nutrition", Duration: "2 min leitura", Thumbnail: "💧",
		Content: "Você sabia que apenas 2% de desidratação já reduz a atenção, memória e tempo de reação?\n\n**Dica:** Mantenha uma garrafa de água na mesa. Se sentir sede, você já está desidratado. A cor da urina deve ser amarelo claro, quase transparente.",
	},
}

func BuiltinResources() []model.Resource {
	out := make([]model.Resource, len(builtinResources))
	copy(out, builtinResources)
	return out
}

// ChecklistItem is one observable statement of the field-visit checklist.
type ChecklistItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

type ChecklistSection struct {
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

var checklistSections = []ChecklistSection{
	{Title: "A. Ambiente físico", Items: []ChecklistItem{
		{ID: "a1", Question: "As cadeiras e mesas de trabalho são confortáveis e ajustáveis."},
		{ID: "a2", Question: "A iluminação é adequada, evitando áreas com sombras ou ofuscamento."},
		{ID: "a3", Question: "A temperatura e ventilação do ambiente são confortáveis."},
		{ID: "a4", Question: "O nível de ruído no local de trabalho é aceitável e não interfere na concentração."},
	}},
	{Title: "B. Ambiente psicossocial", Items: []ChecklistItem{
		{ID: "b1", Question: "As relações entre os colaboradores são cordiais e colaborativas."},
		{ID: "b2", Question: "Existe frequente comunicação entre colegas de trabalho."},
		{ID: "b3", Question: "Existe frequente comunicação entre colegas e gestores."},
		{ID: "b4", Question: "Não ocorrem desacordos/disputas frequentes."},
	}},
	{Title: "C. Carga de Trabalho e Autonomia", Items: []ChecklistItem{
		{ID: "c1", Question: "Os colaboradores aparentam gerir bem a sua carga de trabalho."},
		{ID: "c2", Question: "Os colaboradores tomam decisões relacionadas com as suas funções."},
		{ID: "c3", Question: "Os colaboradores fazem pausas regulares."},
	}},
	{Title: "D. Reconhecimento e Feedback", Items: []ChecklistItem{
		{ID: "d1", Question: "Os gestores/supervisores dão feedback regular e construtivo sobre o desempenho."},
		{ID: "d2", Question: "Os colegas reconhecem e apreciam os esforços e conquistas uns dos outros."},
	}},
	{Title: "E. Bem-estar emocional", Items: []ChecklistItem{
		{ID: "e1", Question: "Os colaboradores têm uma postura relaxada, sem sinais de stress ou ansiedade."},
		{ID: "e2", Question: "As expressões faciais dos colaboradores transmitem positividade."},
	}},
}

// ChecklistScales are the answer levels for each checklist item.
var ChecklistScales = []string{
	"Não cumpre",
	"Cumpre pouco/mal",
	"Cumpre",
	"Cumpre muito/bem",
	"Cumpre totalmente",
	"Não aplicável",
}

func ChecklistSections() []ChecklistSection { return checklistSections }
