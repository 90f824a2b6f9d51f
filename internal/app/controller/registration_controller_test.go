package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/internal/app/service"
	"github.com/freshkart/freshkart-backend/internal/db"
)

func setupRegistrationControllerTest(t *testing.T) (*gin.Engine, service.RegistrationService) {
	gin.SetMode(gin.TestMode)

	stores, err := db.SetupTestStores()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestStores(stores) })

	sellerRepo := repository.NewSellerApplicationRepository(stores.Registrations)
	agentRepo := repository.NewDeliveryAgentApplicationRepository(stores.Registrations)
	registrationService := service.NewRegistrationService(sellerRepo, agentRepo)
	statusService := service.NewStatusService(sellerRepo, agentRepo)

	ctrl := NewRegistrationController(registrationService, statusService)

	router := gin.New()
	router.POST("/seller", ctrl.RegisterSeller)
	router.POST("/delivery-agent", ctrl.RegisterDeliveryAgent)
	router.GET("/status", ctrl.Status)

	return router, registrationService
}

func sellerPayload() *service.SellerRegistrationInput {
	return &service.SellerRegistrationInput{
		SellerName:            "Fresh Farms",
		ContactPerson:         "Asha Rao",
		PhoneNumber:           "9999999999",
		Email:                 "a@test.com",
		Password:              "secret123",
		BusinessType:          "grocery",
		StoreName:             "Fresh Farms Koramangala",
		ProductCategories:     []string{"vegetables"},
		OpeningTime:           "08:00",
		ClosingTime:           "21:00",
		StoreAddress:          "12 1st Main",
		City:                  "Bengaluru",
		PinCode:               "560001",
		BankAccountHolderName: "Fresh Farms",
		BankAccountNumber:     "123456789012",
		IFSCCode:              "HDFC0001234",
		PANNumber:             "ABCDE1234F",
		IDProofURL:            "https://cdn.test/id.jpg",
	}
}

func agentPayload() *service.DeliveryAgentRegistrationInput {
	return &service.DeliveryAgentRegistrationInput{
		FullName:           "Ravi Kumar",
		DateOfBirth:        "1998-04-12",
		ContactNumber:      "7777777777",
		Email:              "ravi@test.com",
		Password:           "secret123",
		ResidentialAddress: "4th Cross, Indiranagar",
		City:               "Bengaluru",
		PinCode:            "560038",
		AadhaarURL:         "https://cdn.test/aadhaar.jpg",
		VehicleType:        "bike",
		AccountHolderName:  "Ravi Kumar",
		BankAccountNumber:  "987654321098",
		IFSCCode:           "SBIN0004321",
	}
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegistrationController_RegisterSeller(t *testing.T) {
	router, _ := setupRegistrationControllerTest(t)

	w := postJSON(router, "/seller", sellerPayload())

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "Registration submitted successfully", response["message"])
	assert.NotZero(t, response["registrationId"])
}

func TestRegistrationController_RegisterSeller_Duplicate(t *testing.T) {
	router, _ := setupRegistrationControllerTest(t)

	w := postJSON(router, "/seller", sellerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/seller", sellerPayload())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegistrationController_RegisterSeller_Validation(t *testing.T) {
	router, _ := setupRegistrationControllerTest(t)

	payload := sellerPayload()
	payload.PhoneNumber = "12345"

	w := postJSON(router, "/seller", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "phoneNumber")
}

func TestRegistrationController_RegisterSeller_MalformedJSON(t *testing.T) {
	router, _ := setupRegistrationControllerTest(t)

	req := httptest.NewRequest("POST", "/seller", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegistrationController_RegisterDeliveryAgent(t *testing.T) {
	router, _ := setupRegistrationControllerTest(t)

	w := postJSON(router, "/delivery-agent", agentPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "registrationId")
}

func TestRegistrationController_Status(t *testing.T) {
	router, registrationService := setupRegistrationControllerTest(t)

	_, err := registrationService.RegisterSeller(sellerPayload())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/status?email=a@test.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var view map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &view)
	require.NoError(t, err)
	assert.Equal(t, "seller", view["accountType"])
	assert.Equal(t, "pending", view["status"])
	assert.Equal(t, "Fresh Farms Koramangala", view["name"])
}

func TestRegistrationController_Status_MissingKeys(t *testing.T) {
	router, _ := setupRegistrationControllerTest(t)

	req := httptest.NewRequest("GET", "/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegistrationController_Status_NotFound(t *testing.T) {
	router, _ := setupRegistrationControllerTest(t)

	req := httptest.NewRequest("GET", "/status?id=999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No registration found")
}
