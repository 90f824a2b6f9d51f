package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/internal/db"
)

type promotionFixture struct {
	promotion    PromotionService
	review       ReviewService
	registration RegistrationService
	liveRepo     repository.LiveUserRepository
	stores       *db.Stores
}

func setupPromotionServiceTest(t *testing.T) *promotionFixture {
	stores, err := db.SetupTestStores()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestStores(stores) })

	sellerRepo := repository.NewSellerApplicationRepository(stores.Registrations)
	agentRepo := repository.NewDeliveryAgentApplicationRepository(stores.Registrations)
	liveRepo := repository.NewLiveUserRepository(stores.Users)

	return &promotionFixture{
		promotion:    NewPromotionService(sellerRepo, agentRepo, liveRepo),
		review:       NewReviewService(sellerRepo, agentRepo),
		registration: NewRegistrationService(sellerRepo, agentRepo),
		liveRepo:     liveRepo,
		stores:       stores,
	}
}

func (f *promotionFixture) approvedSeller(t *testing.T) *model.SellerApplication {
	app, err := f.registration.RegisterSeller(validSellerInput())
	require.NoError(t, err)
	require.NoError(t, f.review.SetStatus(model.ApplicantSeller, app.ID, model.StatusApproved, "", 1))
	return app
}

func TestPromotionService_ApprovedSellers(t *testing.T) {
	f := setupPromotionServiceTest(t)

	// One pending, one approved
	_, err := f.registration.RegisterDeliveryAgent(validAgentInput())
	require.NoError(t, err)
	app := f.approvedSeller(t)

	sellers, err := f.promotion.ApprovedSellers()
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, app.ID, sellers[0].ID)

	agents, err := f.promotion.ApprovedDeliveryAgents()
	require.NoError(t, err)
	assert.Empty(t, agents)
}

func TestPromotionService_ConfirmSeller(t *testing.T) {
	f := setupPromotionServiceTest(t)
	app := f.approvedSeller(t)

	require.NoError(t, f.promotion.ConfirmSeller(app.ID, 3))

	var reloaded model.SellerApplication
	require.NoError(t, f.stores.Registrations.First(&reloaded, app.ID).Error)
	assert.True(t, reloaded.IsConfirmed)
	require.NotNil(t, reloaded.ConfirmedAt)
	require.NotNil(t, reloaded.ConfirmedBy)
	assert.Equal(t, uint(3), *reloaded.ConfirmedBy)

	live, err := f.liveRepo.FindSellerByEmail(app.Email)
	require.NoError(t, err)
	assert.Equal(t, app.StoreName, live.StoreName)
	assert.Equal(t, "active", live.Status)
	assert.Equal(t, app.PasswordHash, live.PasswordHash)
}

func TestPromotionService_ConfirmSeller_Twice(t *testing.T) {
	f := setupPromotionServiceTest(t)
	app := f.approvedSeller(t)

	require.NoError(t, f.promotion.ConfirmSeller(app.ID, 3))
	err := f.promotion.ConfirmSeller(app.ID, 3)
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)

	// Exactly one live account
	var count int64
	f.stores.Users.Model(&model.LiveSeller{}).Where("email = ?", app.Email).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPromotionService_ConfirmSeller_NotFound(t *testing.T) {
	f := setupPromotionServiceTest(t)

	err := f.promotion.ConfirmSeller(9999, 3)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestPromotionService_ConfirmSeller_LiveAccountExists(t *testing.T) {
	f := setupPromotionServiceTest(t)
	app := f.approvedSeller(t)

	// A live account with the same email already exists in the Users store
	require.NoError(t, f.liveRepo.CreateSeller(&model.LiveSeller{
		SellerName: "Pre-existing",
		Email:      app.Email,
		Status:     "active",
	}))

	// Confirmation still succeeds, creation is skipped
	require.NoError(t, f.promotion.ConfirmSeller(app.ID, 3))

	var count int64
	f.stores.Users.Model(&model.LiveSeller{}).Where("email = ?", app.Email).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPromotionService_ConfirmDeliveryAgent(t *testing.T) {
	f := setupPromotionServiceTest(t)

	app, err := f.registration.RegisterDeliveryAgent(validAgentInput())
	require.NoError(t, err)
	require.NoError(t, f.review.SetStatus(model.ApplicantDeliveryAgent, app.ID, model.StatusApproved, "", 1))

	require.NoError(t, f.promotion.ConfirmDeliveryAgent(app.ID, 5))

	live, err := f.liveRepo.FindDeliveryAgentByEmail(app.Email)
	require.NoError(t, err)
	assert.Equal(t, app.FullName, live.FullName)
	assert.Equal(t, "active", live.Status)

	err = f.promotion.ConfirmDeliveryAgent(app.ID, 5)
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestPromotionService_ExportSellers_CSV(t *testing.T) {
	f := setupPromotionServiceTest(t)
	app := f.approvedSeller(t)
	require.NoError(t, f.promotion.ConfirmSeller(app.ID, 3))

	data, err := f.promotion.ExportSellers(FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Store Name","Email","Phone Number","Category","City","Approved Date","Confirmed"`, lines[0])

	// Every field quoted unconditionally
	assert.Contains(t, lines[1], `"`+app.StoreName+`"`)
	assert.Contains(t, lines[1], `"a@test.com"`)
	assert.Contains(t, lines[1], `"vegetables, fruits"`)
	assert.Contains(t, lines[1], `"Yes"`)
}

func TestPromotionService_ExportSellers_Empty(t *testing.T) {
	f := setupPromotionServiceTest(t)

	data, err := f.promotion.ExportSellers(FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "\"Store Name\",\"Email\",\"Phone Number\",\"Category\",\"City\",\"Approved Date\",\"Confirmed\"\r\n", string(data))
}

func TestPromotionService_ExportDeliveryAgents_CSV(t *testing.T) {
	f := setupPromotionServiceTest(t)

	app, err := f.registration.RegisterDeliveryAgent(validAgentInput())
	require.NoError(t, err)
	require.NoError(t, f.review.SetStatus(model.ApplicantDeliveryAgent, app.ID, model.StatusApproved, "", 1))

	data, err := f.promotion.ExportDeliveryAgents(FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Full Name","Email","Contact Number","City","Approved Date","Confirmed"`, lines[0])
	assert.Contains(t, lines[1], `"Ravi Kumar"`)
	assert.Contains(t, lines[1], `"No"`)
}

func TestPromotionService_ExportSellers_XLSX(t *testing.T) {
	f := setupPromotionServiceTest(t)
	f.approvedSeller(t)

	data, err := f.promotion.ExportSellers(FormatXLSX)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// XLSX is a zip container
	assert.Equal(t, "PK", string(data[:2]))
}

func TestParseExportFormat(t *testing.T) {
	assert.Equal(t, FormatCSV, ParseExportFormat(""))
	assert.Equal(t, FormatCSV, ParseExportFormat("csv"))
	assert.Equal(t, FormatCSV, ParseExportFormat("pdf"))
	assert.Equal(t, FormatXLSX, ParseExportFormat("xlsx"))
	assert.Equal(t, FormatXLSX, ParseExportFormat("XLSX"))
}

func TestCSVQuoting(t *testing.T) {
	data := renderCSV([]string{"A"}, [][]string{{`He said "hi", twice`}})
	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"He said ""hi"", twice"`, lines[1])
}
