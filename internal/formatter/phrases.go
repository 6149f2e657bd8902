package formatter

// phrases holds every piece of literal body text the deterministic builder
// can emit, in one output language. Section headings live in headings;
// template role preambles for Portuguese live in preambles (the English
// preambles come from the template registry).
type phrases struct {
	headings  map[string]string
	preambles map[string]string

	footer          string
	callToAction    string
	emptyTranscript string

	taskLine     string
	requestLead  string
	topicsLine   string
	entitiesLine string
	directive    string
	directiveGPT string

	constraintsLead string
	expectedOutput  string
	outputGuidance  string
	contextDetail   string

	ioSpecLine      string
	codeStyleLine   string
	codeStyleDetail string
	stackLine       string

	audienceLine    string
	brandVoiceLine  string
	keyMessagesLine string
	formatLine      string
	metricsCovered  string
	metricsMeasured string

	meetingSummaryLine string
	keyDecisionsLine   string
	actionItemsLine    string
	peopleLine         string
	followUpsLead      string
	followUpsLine      string
	nextStepsLine      string

	systemsLine          string
	environmentDetail    string
	stepsTriedLine       string
	expectedVsActualLine string
	urgencyLine          string
	resolutionLine       string

	backgroundLine  string
	scopeLine       string
	methodologyLine string
	timelineLine    string

	successAddressed   string
	successUsable      string
	successConstraints string

	qScope       string
	qConstraints string
	qSpecifics   string
	qAudience    string
	qSuccess     string
}

var phrasesEN = &phrases{
	headings: map[string]string{
		"goal":              "Goal",
		"context":           "Context",
		"constraints":       "Constraints",
		"expectedOutput":    "Expected Output",
		"success":           "Success Criteria",
		"techContext":       "Technical Context",
		"requirements":      "Requirements & Constraints",
		"ioSpec":            "Input/Output Specification",
		"codeStyle":         "Code Style",
		"campaignGoal":      "Campaign Goal",
		"audience":          "Target Audience",
		"brandVoice":        "Brand Voice",
		"keyMessages":       "Key Messages",
		"formatConstraints": "Format & Constraints",
		"successMetrics":    "Success Metrics",
		"meetingSummary":    "Meeting Summary",
		"keyDecisions":      "Key Decisions",
		"actionItems":       "Action Items",
		"followUps":         "Follow-ups",
		"nextSteps":         "Next Steps",
		"issue":             "Issue Description",
		"environment":       "Environment",
		"stepsTried":        "Steps Already Tried",
		"expectedVsActual":  "Expected vs Actual Behaviour",
		"urgency":           "Urgency & Impact",
		"resolution":        "Desired Resolution",
		"researchQuestion":  "Research Question",
		"background":        "Background",
		"scope":             "Scope & Boundaries",
		"methodology":       "Methodology",
		"deliverables":      "Expected Deliverables",
		"timeline":          "Timeline",
		"clarifying":        "Clarifying Questions",
	},
	preambles: nil, // English preambles come from the template registry

	footer:          "_Template: %s (%s)_",
	callToAction:    "Please work through every section above and address each one completely before responding.",
	emptyTranscript: "(empty transcript)",

	taskLine:     "Task type: **%s** — expected deliverable: **%s**.",
	requestLead:  "Original request:",
	topicsLine:   "Detected topics: %s.",
	entitiesLine: "Key references: %s.",
	directive:    "Address every section of this prompt explicitly and in order.",
	directiveGPT: "1. Read the original request above.\n2. Work through each section of this prompt in order.\n3. Deliver the output in the requested format.",

	constraintsLead: "Respect the following constraints:",
	expectedOutput:  "Provide a %s that directly fulfils the request above.",
	outputGuidance:  "State the result directly; do not describe what you are about to do.",
	contextDetail:   "Treat the transcript as spoken language: skip filler words and focus on the underlying request.",

	ioSpecLine:      "Specify the expected inputs, outputs, and error behaviour for the %s before implementing.",
	codeStyleLine:   "Follow the idiomatic conventions of the language involved; prefer clarity over cleverness.",
	codeStyleDetail: "Include tests or usage examples where they clarify behaviour.",
	stackLine:       "State language and framework versions explicitly if they matter.",

	audienceLine:    "Identify the target audience explicitly; infer it from the brief if unstated.",
	brandVoiceLine:  "Match the brand's established voice; default to confident and plain-spoken if none is given.",
	keyMessagesLine: "Distill the brief into 2–4 key messages the copy must land.",
	formatLine:      "Desired format: %s.",
	metricsCovered:  "- The copy communicates every key message clearly.",
	metricsMeasured: "- Define how success will be measured (reach, engagement, conversion).",

	meetingSummaryLine: "Summarise the discussion in 2–3 sentences before listing outcomes.",
	keyDecisionsLine:   "List every decision that was made, each with its rationale.",
	actionItemsLine:    "Extract each action item with an owner and a due date where stated.",
	peopleLine:         "People and teams mentioned: %s.",
	followUpsLead:      "Commitments and deadlines captured from the notes:",
	followUpsLine:      "Note any open questions that need a follow-up conversation.",
	nextStepsLine:      "Close with the immediate next steps in priority order.",

	systemsLine:          "Systems mentioned: %s.",
	environmentDetail:    "State versions, platforms, and recent changes that could be relevant.",
	stepsTriedLine:       "List anything already attempted, as reported in the transcript; say so explicitly if nothing was tried.",
	expectedVsActualLine: "Contrast what should happen with what is actually happening.",
	urgencyLine:          "Assess how many users are affected and how severe the impact is.",
	resolutionLine:       "Describe the outcome that would resolve this issue.",

	backgroundLine:  "Summarise what is already known before presenting new findings.",
	scopeLine:       "Define what is in and out of scope before starting.",
	methodologyLine: "Describe the sources and methods used, and why they are credible.",
	timelineLine:    "Propose a realistic timeline with milestones if the work is non-trivial.",

	successAddressed:   "- Every stated requirement is addressed.",
	successUsable:      "- The result is a complete, usable %s.",
	successConstraints: "- All listed constraints are respected.",

	qScope:       "Can you describe in more detail what you want to achieve, and what the scope is?",
	qConstraints: "Are there constraints the result must respect (format, length, technology, deadline)?",
	qSpecifics:   "Which specific tools, products, or people does this involve?",
	qAudience:    "Who is the intended audience for the result?",
	qSuccess:     "What would a successful result look like?",
}

var phrasesPT = &phrases{
	headings: map[string]string{
		"goal":              "Objetivo",
		"context":           "Contexto",
		"constraints":       "Restrições",
		"expectedOutput":    "Resultado Esperado",
		"success":           "Critérios de Sucesso",
		"techContext":       "Contexto Técnico",
		"requirements":      "Requisitos e Restrições",
		"ioSpec":            "Especificação de Entrada/Saída",
		"codeStyle":         "Estilo de Código",
		"campaignGoal":      "Objetivo da Campanha",
		"audience":          "Público-Alvo",
		"brandVoice":        "Tom da Marca",
		"keyMessages":       "Mensagens-Chave",
		"formatConstraints": "Formato e Restrições",
		"successMetrics":    "Métricas de Sucesso",
		"meetingSummary":    "Resumo da Reunião",
		"keyDecisions":      "Decisões-Chave",
		"actionItems":       "Ações a Realizar",
		"followUps":         "Acompanhamento",
		"nextSteps":         "Próximos Passos",
		"issue":             "Descrição do Problema",
		"environment":       "Ambiente",
		"stepsTried":        "Passos Já Tentados",
		"expectedVsActual":  "Comportamento Esperado vs Real",
		"urgency":           "Urgência e Impacto",
		"resolution":        "Resolução Pretendida",
		"researchQuestion":  "Questão de Investigação",
		"background":        "Enquadramento",
		"scope":             "Âmbito e Limites",
		"methodology":       "Metodologia",
		"deliverables":      "Entregáveis Esperados",
		"timeline":          "Cronograma",
		"clarifying":        "Questões de Clarificação",
	},
	preambles: map[string]string{
		"general":   "És um assistente de IA prestável. Completa a seguinte tarefa com cuidado e rigor:",
		"coding":    "És um engenheiro de software experiente. Ajuda com a seguinte tarefa técnica:",
		"marketing": "És um copywriter criativo e estratega de marca. Produz o seguinte:",
		"meeting":   "És um gestor de projetos competente. Transforma as seguintes notas de reunião num plano de ação:",
		"support":   "És um especialista sénior de suporte técnico. Diagnostica e ajuda a resolver o seguinte problema:",
		"research":  "És um analista de investigação rigoroso. Conduz a seguinte investigação e entrega uma resposta completa:",
	},

	footer:          "_Modelo: %s (%s)_",
	callToAction:    "Por favor trabalha todas as secções acima e responde a cada uma de forma completa.",
	emptyTranscript: "(transcrição vazia)",

	taskLine:     "Tipo de tarefa: **%s** — resultado esperado: **%s**.",
	requestLead:  "Pedido original:",
	topicsLine:   "Tópicos detetados: %s.",
	entitiesLine: "Referências principais: %s.",
	directive:    "Responde a todas as secções deste prompt de forma explícita e pela ordem indicada.",
	directiveGPT: "1. Lê o pedido original acima.\n2. Trabalha cada secção deste prompt pela ordem indicada.\n3. Entrega o resultado no formato pedido.",

	constraintsLead: "Respeita as seguintes restrições:",
	expectedOutput:  "Produz um resultado do tipo %s que responda diretamente ao pedido acima.",
	outputGuidance:  "Apresenta o resultado diretamente; não descrevas o que vais fazer.",
	contextDetail:   "Trata a transcrição como linguagem falada: ignora palavras de preenchimento e concentra-te no pedido subjacente.",

	ioSpecLine:      "Especifica as entradas, saídas e comportamento de erro esperados para o %s antes de implementar.",
	codeStyleLine:   "Segue as convenções idiomáticas da linguagem em causa; prefere clareza a artifícios.",
	codeStyleDetail: "Inclui testes ou exemplos de utilização onde clarifiquem o comportamento.",
	stackLine:       "Indica explicitamente versões de linguagem e framework se forem relevantes.",

	audienceLine:    "Identifica explicitamente o público-alvo; infere-o do briefing se não estiver indicado.",
	brandVoiceLine:  "Respeita o tom estabelecido da marca; na ausência de indicação, usa um tom confiante e direto.",
	keyMessagesLine: "Destila o briefing em 2–4 mensagens-chave que o texto deve transmitir.",
	formatLine:      "Formato pretendido: %s.",
	metricsCovered:  "- O texto comunica claramente todas as mensagens-chave.",
	metricsMeasured: "- Define como o sucesso será medido (alcance, interação, conversão).",

	meetingSummaryLine: "Resume a discussão em 2–3 frases antes de listar os resultados.",
	keyDecisionsLine:   "Lista todas as decisões tomadas, cada uma com a respetiva justificação.",
	actionItemsLine:    "Extrai cada ação com o responsável e o prazo, quando indicados.",
	peopleLine:         "Pessoas e equipas mencionadas: %s.",
	followUpsLead:      "Compromissos e prazos registados nas notas:",
	followUpsLine:      "Regista questões em aberto que exijam uma conversa de acompanhamento.",
	nextStepsLine:      "Termina com os próximos passos imediatos, por ordem de prioridade.",

	systemsLine:          "Sistemas mencionados: %s.",
	environmentDetail:    "Indica versões, plataformas e alterações recentes que possam ser relevantes.",
	stepsTriedLine:       "Lista o que já foi tentado, conforme relatado; se nada foi tentado, di-lo explicitamente.",
	expectedVsActualLine: "Contrasta o que deveria acontecer com o que está a acontecer.",
	urgencyLine:          "Avalia quantos utilizadores são afetados e a gravidade do impacto.",
	resolutionLine:       "Descreve o resultado que daria este problema por resolvido.",

	backgroundLine:  "Resume o que já se sabe antes de apresentar novas conclusões.",
	scopeLine:       "Define o que está dentro e fora do âmbito antes de começar.",
	methodologyLine: "Descreve as fontes e métodos utilizados e porque são credíveis.",
	timelineLine:    "Propõe um cronograma realista com marcos, se o trabalho não for trivial.",

	successAddressed:   "- Todos os requisitos indicados são satisfeitos.",
	successUsable:      "- O resultado é um %s completo e utilizável.",
	successConstraints: "- Todas as restrições listadas são respeitadas.",

	qScope:       "Podes descrever com mais detalhe o que pretendes alcançar e qual é o âmbito?",
	qConstraints: "Existem restrições que o resultado deve respeitar (formato, extensão, tecnologia, prazo)?",
	qSpecifics:   "Que ferramentas, produtos ou pessoas específicas estão envolvidas?",
	qAudience:    "Quem é o público-alvo do resultado?",
	qSuccess:     "Como seria um resultado bem-sucedido?",
}

func phrasesFor(lang string) *phrases {
	if lang == "pt" {
		return phrasesPT
	}
	return phrasesEN
}
