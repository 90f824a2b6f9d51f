package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/internal/db"
	"github.com/freshkart/freshkart-backend/pkg/util"
)

func setupRegistrationServiceTest(t *testing.T) (RegistrationService, *db.Stores) {
	stores, err := db.SetupTestStores()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestStores(stores) })

	sellerRepo := repository.NewSellerApplicationRepository(stores.Registrations)
	agentRepo := repository.NewDeliveryAgentApplicationRepository(stores.Registrations)
	return NewRegistrationService(sellerRepo, agentRepo), stores
}

func validSellerInput() *SellerRegistrationInput {
	return &SellerRegistrationInput{
		SellerName:    "Fresh Farms",
		ContactPerson: "Asha Rao",
		PhoneNumber:   "9999999999",
		Email:         "a@test.com",
		Password:      "secret123",
		BusinessType:  "grocery",
		StoreName:     "Fresh Farms Koramangala",
		GSTNumber:     "29ABCDE1234F1Z5",

		ProductCategories: []string{"vegetables", "fruits"},
		OpeningTime:       "08:00",
		ClosingTime:       "21:00",

		StoreAddress: "12 1st Main",
		City:         "Bengaluru",
		PinCode:      "560001",

		BankAccountHolderName: "Fresh Farms",
		BankAccountNumber:     "123456789012",
		IFSCCode:              "HDFC0001234",
		PANNumber:             "ABCDE1234F",

		IDProofURL:     "https://cdn.test/id.jpg",
		GSTDocumentURL: "https://cdn.test/gst.pdf",
	}
}

func TestRegistrationService_RegisterSeller(t *testing.T) {
	svc, _ := setupRegistrationServiceTest(t)

	app, err := svc.RegisterSeller(validSellerInput())
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.NotZero(t, app.ID)
	assert.Equal(t, "a@test.com", app.Email)
	assert.Equal(t, "9999999999", app.PhoneNumber)
	assert.Equal(t, "08:00 - 21:00", app.OperatingHours)
	assert.Equal(t, model.StatusPending, app.Status)
	assert.False(t, app.IsConfirmed)

	// Password never stored in the clear
	assert.NotEqual(t, "secret123", app.PasswordHash)
	assert.True(t, util.VerifyPassword(app.PasswordHash, "secret123"))
}

func TestRegistrationService_RegisterSeller_Duplicate(t *testing.T) {
	svc, _ := setupRegistrationServiceTest(t)

	_, err := svc.RegisterSeller(validSellerInput())
	require.NoError(t, err)

	// Same phone, different email
	dup := validSellerInput()
	dup.Email = "second@test.com"
	_, err = svc.RegisterSeller(dup)
	assert.ErrorIs(t, err, ErrDuplicateRegistration)

	// Same email, different phone
	dup = validSellerInput()
	dup.PhoneNumber = "8888888888"
	_, err = svc.RegisterSeller(dup)
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
}

func TestRegistrationService_RegisterSeller_DuplicateEmailCase(t *testing.T) {
	svc, _ := setupRegistrationServiceTest(t)

	_, err := svc.RegisterSeller(validSellerInput())
	require.NoError(t, err)

	// Emails are stored lowercased; a resubmission that differs only in case
	// is still the same account.
	dup := validSellerInput()
	dup.Email = "A@Test.com"
	dup.PhoneNumber = "8888888888"
	_, err = svc.RegisterSeller(dup)
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
}

func TestRegistrationService_RegisterSeller_Validation(t *testing.T) {
	svc, stores := setupRegistrationServiceTest(t)

	input := validSellerInput()
	input.StoreName = ""
	input.PhoneNumber = "12345"
	input.IFSCCode = "BAD"

	_, err := svc.RegisterSeller(input)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "storeName")
	assert.Contains(t, validationErr.Fields, "phoneNumber")
	assert.Contains(t, validationErr.Fields, "ifscCode")

	// No partial write
	var count int64
	stores.Registrations.Model(&model.SellerApplication{}).Count(&count)
	assert.Zero(t, count)
}

func validAgentInput() *DeliveryAgentRegistrationInput {
	return &DeliveryAgentRegistrationInput{
		FullName:      "Ravi Kumar",
		DateOfBirth:   "1998-04-12",
		Gender:        "male",
		ContactNumber: "7777777777",
		Email:         "ravi@test.com",
		Password:      "secret123",

		ResidentialAddress: "4th Cross, Indiranagar",
		City:               "Bengaluru",
		PinCode:            "560038",

		AadhaarURL: "https://cdn.test/aadhaar.jpg",
		PANCardURL: "https://cdn.test/pan.jpg",
		PhotoURL:   "https://cdn.test/photo.jpg",

		VehicleType:               "bike",
		VehicleRegistrationNumber: "KA01AB1234",
		RCBookURL:                 "https://cdn.test/rc.jpg",
		DrivingLicenseURL:         "https://cdn.test/dl.jpg",

		AccountHolderName: "Ravi Kumar",
		BankAccountNumber: "987654321098",
		IFSCCode:          "SBIN0004321",
	}
}

func TestRegistrationService_RegisterDeliveryAgent(t *testing.T) {
	svc, _ := setupRegistrationServiceTest(t)

	app, err := svc.RegisterDeliveryAgent(validAgentInput())
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.NotZero(t, app.ID)
	assert.Equal(t, model.StatusPending, app.Status)
	assert.Equal(t, "aadhaar", app.IdentityProofType)
	assert.Equal(t, "https://cdn.test/aadhaar.jpg", app.IdentityProofURL)
	require.NotNil(t, app.DateOfBirth)
	assert.Equal(t, "1998-04-12", app.DateOfBirth.Format("2006-01-02"))
}

func TestRegistrationService_RegisterDeliveryAgent_VoterID(t *testing.T) {
	svc, _ := setupRegistrationServiceTest(t)

	input := validAgentInput()
	input.AadhaarURL = ""
	input.VoterIDURL = "https://cdn.test/voter.jpg"

	app, err := svc.RegisterDeliveryAgent(input)
	require.NoError(t, err)
	assert.Equal(t, "voter-id", app.IdentityProofType)
	assert.Equal(t, "https://cdn.test/voter.jpg", app.IdentityProofURL)
}

func TestRegistrationService_RegisterDeliveryAgent_Duplicate(t *testing.T) {
	svc, _ := setupRegistrationServiceTest(t)

	_, err := svc.RegisterDeliveryAgent(validAgentInput())
	require.NoError(t, err)

	dup := validAgentInput()
	dup.Email = "other@test.com"
	_, err = svc.RegisterDeliveryAgent(dup)
	assert.ErrorIs(t, err, ErrDuplicateRegistration)

	dup = validAgentInput()
	dup.Email = "Ravi@Test.com"
	dup.ContactNumber = "6666666666"
	_, err = svc.RegisterDeliveryAgent(dup)
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
}
