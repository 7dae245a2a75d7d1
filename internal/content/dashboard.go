package content

import "github.com/imobiflow/imobiflow-api/internal/domain"

var moduleCards = []domain.ModuleCard{
	{Icon: "building-2", Title: "Gestão de estoque", Text: "Unidades, fotos e status comercial em um painel único."},
	{Icon: "users-2", Title: "Equipe sincronizada", Text: "Carteira, metas e produtividade dos corretores."},
	{Icon: "file-text", Title: "Documentos e contratos", Text: "Checklist jurídico e histórico completo da negociação."},
	{Icon: "trending-up", Title: "Inteligência comercial", Text: "Funil, previsão de receita e oportunidades por etapa."},
}

var implementationSteps = []domain.ImplementationStep{
	{Step: "01", Title: "Diagnóstico rápido", Text: "Mapeamento da operação comercial e definição do setup inicial."},
	{Step: "02", Title: "Implantação guiada", Text: "Importação do estoque e ativação das automações principais."},
	{Step: "03", Title: "Crescimento contínuo", Text: "Acompanhamento de KPIs e evolução da estratégia comercial."},
}

var integrationCards = []domain.IntegrationCard{
	{Icon: "globe", Title: "Portais de anúncio", Text: "Distribuição de imóveis por feed para canais externos.", Status: "Conectável"},
	{Icon: "message-circle", Title: "WhatsApp comercial", Text: "Atendimento direto e atualização de status por lead.", Status: "Ativo"},
	{Icon: "link-2", Title: "Webhooks e n8n", Text: "Automação de fluxos com CRM, e-mail e planilhas.", Status: "Pronto"},
	{Icon: "rocket", Title: "Campanhas de mídia", Text: "Leitura de origem para medir ROI por canal.", Status: "Em expansão"},
}

var automationRoutines = []string{
	"Follow-up automático após novo lead",
	"Lembrete de visita e proposta para corretor",
	"Alerta de documentação pendente",
	"Atualização de status para equipe comercial",
}

var landingChecklist = []string{
	"Painel ao vivo com visão executiva",
	"CRM com funil e etapas rastreáveis",
	"Módulos de estoque, equipe e contratos",
	"Automações comerciais em execução",
	"Integrações e canais de publicação",
	"Camada de confiança e compliance",
}

// Dashboard devolve cópias para que o chamador não altere os cards globais
func (s *Service) Dashboard() *domain.DashboardContent {
	return &domain.DashboardContent{
		Modules:             append([]domain.ModuleCard(nil), moduleCards...),
		ImplementationSteps: append([]domain.ImplementationStep(nil), implementationSteps...),
		Integrations:        append([]domain.IntegrationCard(nil), integrationCards...),
		AutomationRoutines:  append([]string(nil), automationRoutines...),
		LandingChecklist:    append([]string(nil), landingChecklist...),
	}
}
