package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivacyPolicy(t *testing.T) {
	svc := &Service{now: func() time.Time {
		return time.Date(2025, time.March, 7, 15, 30, 0, 0, time.UTC)
	}}

	policy := svc.PrivacyPolicy()

	assert.Equal(t, "Política de Privacidade", policy.Title)
	assert.Equal(t, "07/03/2025", policy.LastUpdated)
	require.Len(t, policy.Sections, 7)
	assert.Equal(t, "1. Informações coletadas", policy.Sections[0].Title)
	assert.Equal(t, "7. Atualizações", policy.Sections[6].Title)
	assert.Equal(t, "contato@imobiflow.com", policy.Contact.Email)
}

func TestPrivacyPolicy_SectionsAreCopies(t *testing.T) {
	svc := NewService()

	policy := svc.PrivacyPolicy()
	policy.Sections[0].Title = "alterado"

	assert.Equal(t, "1. Informações coletadas", svc.PrivacyPolicy().Sections[0].Title)
}

func TestDashboard(t *testing.T) {
	svc := NewService()

	content := svc.Dashboard()

	assert.Len(t, content.Modules, 4)
	assert.Len(t, content.ImplementationSteps, 3)
	assert.Len(t, content.AutomationRoutines, 4)
	assert.Len(t, content.LandingChecklist, 6)
	require.Len(t, content.Integrations, 4)

	statuses := make([]string, 0, len(content.Integrations))
	for _, integration := range content.Integrations {
		statuses = append(statuses, integration.Status)
	}
	assert.Equal(t, []string{"Conectável", "Ativo", "Pronto", "Em expansão"}, statuses)

	content.Modules[0].Title = "alterado"
	assert.Equal(t, "Gestão de estoque", svc.Dashboard().Modules[0].Title)
}
