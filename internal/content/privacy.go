// Package content reúne os textos fixos servidos pela API: política de privacidade e cards do painel
package content

import (
	"time"

	"github.com/imobiflow/imobiflow-api/internal/domain"
)

const dateLayoutBR = "02/01/2006"

var privacySections = []domain.ContentSection{
	{
		Title: "1. Informações coletadas",
		Body:  "Coletamos dados fornecidos por você em formulários (nome, email, telefone) e dados técnicos de navegação para funcionamento da plataforma.",
	},
	{
		Title: "2. Finalidade de uso",
		Body:  "Utilizamos esses dados para responder contatos, organizar atendimento imobiliário, melhorar a experiência do site e cumprir obrigações legais.",
	},
	{
		Title: "3. Compartilhamento",
		Body:  "Não vendemos seus dados. O compartilhamento ocorre apenas com fornecedores necessários para operação ou quando houver exigência legal.",
	},
	{
		Title: "4. Cookies",
		Body:  "Utilizamos cookies para lembrar preferências, medir desempenho e melhorar navegação. O usuário pode ajustar cookies no navegador.",
	},
	{
		Title: "5. Segurança",
		Body:  "Aplicamos controles técnicos e organizacionais para proteger as informações, incluindo autenticação, controle de acesso e monitoramento.",
	},
	{
		Title: "6. Direitos LGPD",
		Body:  "Você pode solicitar acesso, correção, exclusão, portabilidade ou revogação de consentimento conforme a Lei 13.709/2018.",
	},
	{
		Title: "7. Atualizações",
		Body:  "Esta política pode ser atualizada periodicamente. Sempre que houver mudanças relevantes, publicaremos a nova versão nesta página.",
	},
}

var privacyContact = domain.PrivacyContact{
	Company: "Imobiflow (demo)",
	CRECI:   "000000-XX (demo)",
	Email:   "contato@imobiflow.com",
	Phone:   "(00) 00000-0000",
}

type Provider interface {
	PrivacyPolicy() *domain.PrivacyPolicy
	Dashboard() *domain.DashboardContent
}

type Service struct {
	now func() time.Time
}

func NewService() Provider {
	return &Service{now: time.Now}
}

// PrivacyPolicy usa a data do momento da requisição como "última atualização"
func (s *Service) PrivacyPolicy() *domain.PrivacyPolicy {
	sections := make([]domain.ContentSection, len(privacySections))
	copy(sections, privacySections)

	return &domain.PrivacyPolicy{
		Title:       "Política de Privacidade",
		LastUpdated: s.now().Format(dateLayoutBR),
		Intro:       "Este documento explica como a Imobiflow (demo) trata dados pessoais no contexto da plataforma imobiliária apresentada neste projeto.",
		Sections:    sections,
		Contact:     privacyContact,
	}
}
