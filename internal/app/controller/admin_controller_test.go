package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/internal/app/service"
	"github.com/freshkart/freshkart-backend/internal/db"
)

type adminControllerFixture struct {
	router       *gin.Engine
	registration service.RegistrationService
	stores       *db.Stores
}

func setupAdminControllerTest(t *testing.T) *adminControllerFixture {
	gin.SetMode(gin.TestMode)

	stores, err := db.SetupTestStores()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestStores(stores) })

	sellerRepo := repository.NewSellerApplicationRepository(stores.Registrations)
	agentRepo := repository.NewDeliveryAgentApplicationRepository(stores.Registrations)
	principalRepo := repository.NewPrincipalRepository(stores.Users)

	reviewService := service.NewReviewService(sellerRepo, agentRepo)
	principalService := service.NewPrincipalService(principalRepo)
	registrationService := service.NewRegistrationService(sellerRepo, agentRepo)

	ctrl := NewAdminController(reviewService, principalService)

	router := gin.New()
	router.GET("/registrations", ctrl.ListRegistrations)
	router.GET("/pending-registrations", ctrl.ListPending)
	router.GET("/registration/:type/:id", ctrl.GetRegistration)
	router.PATCH("/registration/:type/:id/status", ctrl.UpdateStatus)
	router.PATCH("/registration/:type/:id/document/:docId/status", ctrl.UpdateDocumentStatus)
	router.GET("/administrators", ctrl.ListAdministrators)
	router.POST("/administrators", ctrl.CreateAdministrator)
	router.PATCH("/administrators/:id", ctrl.UpdateAdministrator)
	router.DELETE("/administrators/:id", ctrl.DeleteAdministrator)

	return &adminControllerFixture{
		router:       router,
		registration: registrationService,
		stores:       stores,
	}
}

func (f *adminControllerFixture) do(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestAdminController_ListRegistrations(t *testing.T) {
	f := setupAdminControllerTest(t)

	_, err := f.registration.RegisterSeller(sellerPayload())
	require.NoError(t, err)
	_, err = f.registration.RegisterDeliveryAgent(agentPayload())
	require.NoError(t, err)

	w := f.do("GET", "/registrations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, float64(2), response["count"])
}

func TestAdminController_ListPending(t *testing.T) {
	f := setupAdminControllerTest(t)

	_, err := f.registration.RegisterSeller(sellerPayload())
	require.NoError(t, err)

	w := f.do("GET", "/pending-registrations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	sellers := response["sellers"].([]interface{})
	assert.Len(t, sellers, 1)
}

func TestAdminController_GetRegistration(t *testing.T) {
	f := setupAdminControllerTest(t)

	app, err := f.registration.RegisterSeller(sellerPayload())
	require.NoError(t, err)

	w := f.do("GET", fmt.Sprintf("/registration/seller/%d", app.ID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fresh Farms Koramangala")
}

func TestAdminController_GetRegistration_BadType(t *testing.T) {
	f := setupAdminControllerTest(t)

	w := f.do("GET", "/registration/shopkeeper/1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "seller or deliveryagent")
}

func TestAdminController_GetRegistration_NotFound(t *testing.T) {
	f := setupAdminControllerTest(t)

	w := f.do("GET", "/registration/seller/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminController_UpdateStatus(t *testing.T) {
	f := setupAdminControllerTest(t)

	app, err := f.registration.RegisterSeller(sellerPayload())
	require.NoError(t, err)

	w := f.do("PATCH", fmt.Sprintf("/registration/seller/%d/status", app.ID), UpdateStatusRequest{
		Status: "approved",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded model.SellerApplication
	require.NoError(t, f.stores.Registrations.First(&reloaded, app.ID).Error)
	assert.Equal(t, model.StatusApproved, reloaded.Status)
	assert.NotNil(t, reloaded.ApprovedAt)
}

func TestAdminController_UpdateStatus_Reject(t *testing.T) {
	f := setupAdminControllerTest(t)

	app, err := f.registration.RegisterSeller(sellerPayload())
	require.NoError(t, err)

	w := f.do("PATCH", fmt.Sprintf("/registration/seller/%d/status", app.ID), UpdateStatusRequest{
		Status:       "rejected",
		StatusReason: "GST certificate unreadable",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded model.SellerApplication
	require.NoError(t, f.stores.Registrations.First(&reloaded, app.ID).Error)
	assert.Equal(t, model.StatusRejected, reloaded.Status)
	assert.Equal(t, "GST certificate unreadable", reloaded.StatusReason)
}

func TestAdminController_UpdateStatus_InvalidDecision(t *testing.T) {
	f := setupAdminControllerTest(t)

	app, err := f.registration.RegisterSeller(sellerPayload())
	require.NoError(t, err)

	w := f.do("PATCH", fmt.Sprintf("/registration/seller/%d/status", app.ID), UpdateStatusRequest{
		Status: "maybe",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "approved or rejected")
}

func TestAdminController_UpdateDocumentStatus(t *testing.T) {
	f := setupAdminControllerTest(t)

	app, err := f.registration.RegisterSeller(sellerPayload())
	require.NoError(t, err)

	w := f.do("PATCH", fmt.Sprintf("/registration/seller/%d/document/doc1/status", app.ID), UpdateDocumentStatusRequest{
		Status: "verified",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded model.SellerApplication
	require.NoError(t, f.stores.Registrations.First(&reloaded, app.ID).Error)
	assert.Equal(t, model.DocumentVerified, reloaded.IDProofStatus)
}

func TestAdminController_UpdateDocumentStatus_UnknownDocument(t *testing.T) {
	f := setupAdminControllerTest(t)

	app, err := f.registration.RegisterSeller(sellerPayload())
	require.NoError(t, err)

	w := f.do("PATCH", fmt.Sprintf("/registration/seller/%d/document/doc99/status", app.ID), UpdateDocumentStatusRequest{
		Status: "verified",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown document id")
}

func TestAdminController_Administrators_CRUD(t *testing.T) {
	f := setupAdminControllerTest(t)

	// Create
	w := f.do("POST", "/administrators", CreateAdministratorRequest{
		Name:     "Priya Sharma",
		Email:    "priya@freshkart.in",
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	administrator := created["administrator"].(map[string]interface{})
	id := uint(administrator["id"].(float64))

	// Duplicate email conflicts
	w = f.do("POST", "/administrators", CreateAdministratorRequest{
		Name:     "Imposter",
		Email:    "priya@freshkart.in",
		Password: "other123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// List
	w = f.do("GET", "/administrators", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "priya@freshkart.in")

	// Update
	w = f.do("PATCH", fmt.Sprintf("/administrators/%d", id), UpdateAdministratorRequest{
		Name: "Priya S",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Priya S")

	// Deleting the only administrator is refused
	w = f.do("DELETE", fmt.Sprintf("/administrators/%d", id), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "last administrator")

	// With a second account the delete goes through
	w = f.do("POST", "/administrators", CreateAdministratorRequest{
		Name:     "Rahul Verma",
		Email:    "rahul@freshkart.in",
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do("DELETE", fmt.Sprintf("/administrators/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do("DELETE", fmt.Sprintf("/administrators/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminController_CreateAdministrator_ShortPassword(t *testing.T) {
	f := setupAdminControllerTest(t)

	w := f.do("POST", "/administrators", CreateAdministratorRequest{
		Name:     "Priya Sharma",
		Email:    "priya@freshkart.in",
		Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
