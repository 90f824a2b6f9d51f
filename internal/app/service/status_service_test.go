package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/internal/db"
)

func setupStatusServiceTest(t *testing.T) (StatusService, RegistrationService, ReviewService) {
	stores, err := db.SetupTestStores()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestStores(stores) })

	sellerRepo := repository.NewSellerApplicationRepository(stores.Registrations)
	agentRepo := repository.NewDeliveryAgentApplicationRepository(stores.Registrations)

	return NewStatusService(sellerRepo, agentRepo),
		NewRegistrationService(sellerRepo, agentRepo),
		NewReviewService(sellerRepo, agentRepo)
}

func TestStatusService_Lookup_MissingKeys(t *testing.T) {
	svc, _, _ := setupStatusServiceTest(t)

	_, err := svc.Lookup("", "")
	assert.ErrorIs(t, err, ErrLookupKeyMissing)

	_, err = svc.Lookup("   ", "  ")
	assert.ErrorIs(t, err, ErrLookupKeyMissing)
}

func TestStatusService_Lookup_NotFound(t *testing.T) {
	svc, _, _ := setupStatusServiceTest(t)

	_, err := svc.Lookup("42", "")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)

	_, err = svc.Lookup("", "nobody@test.com")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestStatusService_Lookup_SellerByID(t *testing.T) {
	svc, registration, review := setupStatusServiceTest(t)

	app, err := registration.RegisterSeller(validSellerInput())
	require.NoError(t, err)

	view, err := svc.Lookup(strconv.FormatUint(uint64(app.ID), 10), "")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicantSeller, view.AccountType)
	assert.Equal(t, model.StatusPending, view.Status)
	assert.Equal(t, app.StoreName, view.Name)
	assert.Empty(t, view.ReviewedDate)

	// Approval stamps the reviewed date
	require.NoError(t, review.SetStatus(model.ApplicantSeller, app.ID, model.StatusApproved, "", 1))
	view, err = svc.Lookup(strconv.FormatUint(uint64(app.ID), 10), "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, view.Status)
	assert.NotEmpty(t, view.ReviewedDate)
}

func TestStatusService_Lookup_AgentByEmail(t *testing.T) {
	svc, registration, _ := setupStatusServiceTest(t)

	app, err := registration.RegisterDeliveryAgent(validAgentInput())
	require.NoError(t, err)

	view, err := svc.Lookup("", "Ravi@Test.com")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicantDeliveryAgent, view.AccountType)
	assert.Equal(t, app.FullName, view.Name)
	assert.Equal(t, "ravi@test.com", view.Email)
}

func TestStatusService_Lookup_SellerBeforeAgent(t *testing.T) {
	svc, registration, _ := setupStatusServiceTest(t)

	seller, err := registration.RegisterSeller(validSellerInput())
	require.NoError(t, err)
	agent, err := registration.RegisterDeliveryAgent(validAgentInput())
	require.NoError(t, err)
	require.Equal(t, seller.ID, agent.ID)

	// Same numeric id in both tables, seller wins
	view, err := svc.Lookup(strconv.FormatUint(uint64(seller.ID), 10), "")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicantSeller, view.AccountType)
}

func TestStatusService_Lookup_NonNumericIDFallsBackToEmail(t *testing.T) {
	svc, registration, _ := setupStatusServiceTest(t)

	_, err := registration.RegisterDeliveryAgent(validAgentInput())
	require.NoError(t, err)

	view, err := svc.Lookup("not-a-number", "ravi@test.com")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicantDeliveryAgent, view.AccountType)
}
