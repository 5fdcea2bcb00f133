package knowledge

import "ccsbot/internal/domain"

// Default devolve a base de conhecimento do atendimento do Setor de Gestao de
// Pessoas do CCS/UFPB. Cada chamada devolve uma copia nova.
func Default() domain.KnowledgeBase {
	return ccsKnowledge.Clone()
}

var ccsKnowledge = domain.KnowledgeBase{
	{
		ID:   "ferias_basico",
		Tags: []string{"ferias", "férias", "marcar ferias", "periodo aquisitivo"},
		Patterns: []string{
			"como marcar ferias",
			"quando posso tirar ferias",
			"ferias servidor ccs",
			"calendario de ferias",
			"prazo ferias",
		},
		Answer: "FÉRIAS — Informações básicas:\n" +
			"- O agendamento segue o calendário institucional.\n" +
			"- A solicitação deve ser registrada no sistema SEI conforme orientações da PROGEP.\n" +
			"- Recomenda-se antecedência mínima conforme a norma interna.\n" +
			"Consulte o manual/portais oficiais da PROGEP/UFPB para detalhes e prazos.",
	},
	{
		ID:   "plano_trabalho",
		Tags: []string{"plano de trabalho", "plano", "pt", "atividades", "registro"},
		Patterns: []string{
			"como enviar plano de trabalho",
			"onde registrar plano de trabalho",
			"prazo do plano de trabalho",
			"modelo de plano de trabalho",
		},
		Answer: "PLANO DE TRABALHO — Diretrizes:\n" +
			"- O envio é feito via SEI usando o modelo oficial.\n" +
			"- Verifique o manual da PROGEP/UFPB para campos obrigatórios e periodicidade.\n" +
			"- Guarde o comprovante de protocolo.\n" +
			"Para links e modelos, consulte o site da PROGEP.",
	},
	{
		ID:   "afastamentos",
		Tags: []string{"afastamento", "licenca", "licença", "saude", "capacitação"},
		Patterns: []string{
			"como solicitar afastamento",
			"afastamento para capacitacao",
			"licenca medica",
			"documentos para afastamento",
		},
		Answer: "AFASTAMENTOS — Passos gerais:\n" +
			"- Verifique o tipo (capacitação, saúde, interesse, etc.).\n" +
			"- Anexe a documentação exigida conforme o tipo de afastamento.\n" +
			"- Protocole no SEI e acompanhe os prazos.\n" +
			"As regras completas constam no portal da PROGEP/UFPB.",
	},
	{
		ID:   "horario_contato",
		Tags: []string{"horario", "horário", "contato", "email", "e-mail", "atendimento"},
		Patterns: []string{
			"qual horario de atendimento",
			"como entrar em contato",
			"email do setor",
			"telefone do setor",
		},
		Answer: "ATENDIMENTO — Contatos e horários:\n" +
			"- Horário padrão: dias úteis, conforme expediente do CCS.\n" +
			"- Priorize o atendimento institucional (e-mail setorial).\n" +
			"Para demandas complexas, descreva o caso e anexe documentos no SEI.",
	},
	{
		ID:   "documentos_publicos",
		Tags: []string{"documento", "documentos", "base de dados", "norma", "manual", "faq"},
		Patterns: []string{
			"onde estao os documentos",
			"documentos publicos",
			"manual da prg",
			"base de conhecimento",
		},
		Answer: "DOCUMENTOS — Acesso público:\n" +
			"- Os documentos/FAQs estão disponíveis no portal da Pró-Reitoria de Gestão de Pessoas (PROGEP/UFPB).\n" +
			"- Utilize as buscas por tema (férias, plano de trabalho, afastamentos) e verifique as versões atualizadas.",
	},
	{
		ID: domain.FallbackID,
		Answer: "Não encontrei uma resposta direta para sua pergunta.\n" +
			"Você pode tentar:\n" +
			"1) digitar 'menu' para ver opções; ou\n" +
			"2) reescrever com mais detalhes; ou\n" +
			"3) encaminhar ao atendimento humano via e-mail institucional.",
	},
}
