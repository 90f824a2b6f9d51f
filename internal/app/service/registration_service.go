package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/pkg/logger"
	"github.com/freshkart/freshkart-backend/pkg/util"
)

var ErrDuplicateRegistration = errors.New("email or phone number already registered")

// ValidationError carries the per-field failure map to the controller so the
// form can highlight every violated field at once.
type ValidationError struct {
	Fields util.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d fields", len(e.Fields))
}

// SellerRegistrationInput is the seller onboarding form. Field names follow
// the registration frontend payload.
type SellerRegistrationInput struct {
	SellerName        string   `json:"sellerName"`
	ContactPerson     string   `json:"contactPerson"`
	PhoneNumber       string   `json:"phoneNumber"`
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	BusinessType      string   `json:"businessType"`
	StoreName         string   `json:"storeName"`
	GSTNumber         string   `json:"gstNumber"`
	FSSAILicense      string   `json:"fssaiLicense"`
	ProductCategories []string `json:"productCategories"`
	ProductSource     string   `json:"productSource"`
	OpeningTime       string   `json:"openingTime"`
	ClosingTime       string   `json:"closingTime"`

	StoreAddress      string   `json:"storeAddress"`
	City              string   `json:"city"`
	PinCode           string   `json:"pinCode"`
	ServiceAreaRadius string   `json:"serviceAreaRadius"`
	DeliveryLocations []string `json:"deliveryLocations"`
	DeliveryMethod    string   `json:"deliveryMethod"`

	BankAccountHolderName string `json:"bankAccountHolderName"`
	BankAccountNumber     string `json:"bankAccountNumber"`
	IFSCCode              string `json:"ifscCode"`
	UPIID                 string `json:"upiId"`
	PANNumber             string `json:"panNumber"`

	SampleProductImages []string `json:"sampleProductImages"`
	PricingRange        string   `json:"pricingRange"`
	PackagingProcess    string   `json:"packagingProcess"`
	StorageDetails      string   `json:"storageDetails"`
	DailyStockCapacity  string   `json:"dailyStockCapacity"`

	IDProofURL        string `json:"idProofUrl"`
	GSTDocumentURL    string `json:"gstDocumentUrl"`
	OwnershipProofURL string `json:"ownershipProofUrl"`
	BankProofURL      string `json:"bankProofUrl"`
	ShopPhotoURL      string `json:"shopPhotoUrl"`
	FSSAILicenseURL   string `json:"fssaiLicenseUrl"`
	TradeLicenseURL   string `json:"tradeLicenseUrl"`
}

// DeliveryAgentRegistrationInput is the delivery-agent onboarding form.
type DeliveryAgentRegistrationInput struct {
	FullName      string `json:"fullName"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	Password      string `json:"password"`

	ResidentialAddress string `json:"residentialAddress"`
	City               string `json:"city"`
	PinCode            string `json:"pinCode"`

	AadhaarURL          string `json:"aadhaarUrl"`
	VoterIDURL          string `json:"voterIdUrl"`
	PANCardURL          string `json:"panCardUrl"`
	PhotoURL            string `json:"photoUrl"`
	DigitalSignatureURL string `json:"digitalSignatureUrl"`

	VehicleType               string `json:"vehicleType"`
	VehicleRegistrationNumber string `json:"vehicleRegistrationNumber"`
	VehicleFuelType           string `json:"vehicleFuelType"`
	RCBookURL                 string `json:"rcBookUrl"`
	DrivingLicenseURL         string `json:"drivingLicenseUrl"`
	InsuranceURL              string `json:"insuranceUrl"`

	AccountHolderName string `json:"accountHolderName"`
	BankAccountNumber string `json:"bankAccountNumber"`
	IFSCCode          string `json:"ifscCode"`
	UPIID             string `json:"upiId"`
}

type RegistrationService interface {
	RegisterSeller(input *SellerRegistrationInput) (*model.SellerApplication, error)
	RegisterDeliveryAgent(input *DeliveryAgentRegistrationInput) (*model.DeliveryAgentApplication, error)
}

type registrationService struct {
	sellerRepo repository.SellerApplicationRepository
	agentRepo  repository.DeliveryAgentApplicationRepository
}

func NewRegistrationService(
	sellerRepo repository.SellerApplicationRepository,
	agentRepo repository.DeliveryAgentApplicationRepository,
) RegistrationService {
	return &registrationService{
		sellerRepo: sellerRepo,
		agentRepo:  agentRepo,
	}
}

func (s *registrationService) RegisterSeller(input *SellerRegistrationInput) (*model.SellerApplication, error) {
	fields := util.FieldErrors{}
	fields.Require("sellerName", input.SellerName)
	fields.Require("contactPerson", input.ContactPerson)
	fields.Require("phoneNumber", input.PhoneNumber)
	fields.Require("email", input.Email)
	fields.Require("password", input.Password)
	fields.Require("storeName", input.StoreName)
	fields.Match("phoneNumber", input.PhoneNumber, util.IsValidPhone, "must be a 10-digit number")
	fields.Match("email", input.Email, util.IsValidEmail, "must be a valid email address")
	fields.Match("pinCode", input.PinCode, util.IsValidPinCode, "must be a 6-digit pin code")
	fields.Match("ifscCode", input.IFSCCode, util.IsValidIFSC, "must be a valid IFSC code")
	fields.Match("panNumber", input.PANNumber, util.IsValidPAN, "must be a valid PAN number")
	if !fields.OK() {
		return nil, &ValidationError{Fields: fields}
	}

	// Stored emails are lowercased, so the duplicate check must compare
	// against the same form.
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.sellerRepo.ExistsByEmailOrPhone(email, input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Warn("Seller registration rejected: duplicate", map[string]interface{}{
			"email": email,
		})
		return nil, ErrDuplicateRegistration
	}

	passwordHash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	app := &model.SellerApplication{
		SellerName:         input.SellerName,
		ContactPersonName:  input.ContactPerson,
		PhoneNumber:        input.PhoneNumber,
		Email:              email,
		PasswordHash:       passwordHash,
		BusinessType:       input.BusinessType,
		StoreName:          input.StoreName,
		GSTNumber:          input.GSTNumber,
		FSSAILicenseNumber: input.FSSAILicense,
		ProductCategories:  input.ProductCategories,
		ProductSource:      input.ProductSource,
		OperatingHours:     operatingHours(input.OpeningTime, input.ClosingTime),

		StoreAddress:      input.StoreAddress,
		City:              input.City,
		PinCode:           input.PinCode,
		ServiceAreaRadius: input.ServiceAreaRadius,
		DeliveryLocations: input.DeliveryLocations,
		DeliveryMethod:    input.DeliveryMethod,

		BankAccountHolderName: input.BankAccountHolderName,
		BankAccountNumber:     input.BankAccountNumber,
		IFSCCode:              strings.ToUpper(input.IFSCCode),
		UPIID:                 input.UPIID,
		PANNumber:             strings.ToUpper(input.PANNumber),

		SampleProductImageURLs: input.SampleProductImages,
		PricingRange:           input.PricingRange,
		PackagingProcess:       input.PackagingProcess,
		StorageDetails:         input.StorageDetails,
		DailyStockCapacity:     input.DailyStockCapacity,

		IDProofURL:        input.IDProofURL,
		GSTDocumentURL:    input.GSTDocumentURL,
		OwnershipProofURL: input.OwnershipProofURL,
		BankProofURL:      input.BankProofURL,
		ShopPhotoURL:      input.ShopPhotoURL,
		FSSAILicenseURL:   input.FSSAILicenseURL,
		TradeLicenseURL:   input.TradeLicenseURL,

		Status: model.StatusPending,
	}

	if err := s.sellerRepo.Create(app); err != nil {
		return nil, err
	}

	logger.Info("Seller registration submitted", map[string]interface{}{
		"registration_id": app.ID,
		"store":           app.StoreName,
	})
	return app, nil
}

func (s *registrationService) RegisterDeliveryAgent(input *DeliveryAgentRegistrationInput) (*model.DeliveryAgentApplication, error) {
	fields := util.FieldErrors{}
	fields.Require("fullName", input.FullName)
	fields.Require("contactNumber", input.ContactNumber)
	fields.Require("email", input.Email)
	fields.Require("password", input.Password)
	fields.Match("contactNumber", input.ContactNumber, util.IsValidPhone, "must be a 10-digit number")
	fields.Match("email", input.Email, util.IsValidEmail, "must be a valid email address")
	fields.Match("pinCode", input.PinCode, util.IsValidPinCode, "must be a 6-digit pin code")
	fields.Match("ifscCode", input.IFSCCode, util.IsValidIFSC, "must be a valid IFSC code")
	if !fields.OK() {
		return nil, &ValidationError{Fields: fields}
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.agentRepo.ExistsByEmailOrPhone(email, input.ContactNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Warn("Delivery agent registration rejected: duplicate", map[string]interface{}{
			"email": email,
		})
		return nil, ErrDuplicateRegistration
	}

	passwordHash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	identityType, identityURL := identityProof(input.AadhaarURL, input.VoterIDURL)

	app := &model.DeliveryAgentApplication{
		FullName:      input.FullName,
		DateOfBirth:   parseDate(input.DateOfBirth),
		Gender:        input.Gender,
		ContactNumber: input.ContactNumber,
		Email:         email,
		PasswordHash:  passwordHash,

		ResidentialAddress: input.ResidentialAddress,
		City:               input.City,
		PinCode:            input.PinCode,

		IdentityProofType:   identityType,
		IdentityProofURL:    identityURL,
		PANCardURL:          input.PANCardURL,
		PhotoURL:            input.PhotoURL,
		DigitalSignatureURL: input.DigitalSignatureURL,

		VehicleType:               input.VehicleType,
		VehicleRegistrationNumber: input.VehicleRegistrationNumber,
		VehicleFuelType:           input.VehicleFuelType,
		RCBookURL:                 input.RCBookURL,
		DrivingLicenseURL:         input.DrivingLicenseURL,
		InsuranceURL:              input.InsuranceURL,

		AccountHolderName: input.AccountHolderName,
		BankAccountNumber: input.BankAccountNumber,
		IFSCCode:          strings.ToUpper(input.IFSCCode),
		UPIID:             input.UPIID,

		Status: model.StatusPending,
	}

	if err := s.agentRepo.Create(app); err != nil {
		return nil, err
	}

	logger.Info("Delivery agent registration submitted", map[string]interface{}{
		"registration_id": app.ID,
	})
	return app, nil
}

func operatingHours(opening, closing string) string {
	if opening == "" && closing == "" {
		return ""
	}
	return fmt.Sprintf("%s - %s", opening, closing)
}

// parseDate accepts the form's YYYY-MM-DD date, nil when absent or malformed.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// identityProof infers the proof type from whichever URL the form sent.
func identityProof(aadhaarURL, voterIDURL string) (string, string) {
	if aadhaarURL != "" {
		return "aadhaar", aadhaarURL
	}
	if voterIDURL != "" {
		return "voter-id", voterIDURL
	}
	return "", ""
}
