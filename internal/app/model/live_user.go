package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// LiveStatusActive is the default state of a promoted account.
const LiveStatusActive = "active"

// LiveSeller is the production-facing seller account in the Users store,
// created exactly once when an Administrator confirms an approved
// application. It carries a reduced projection of the application.
type LiveSeller struct {
	ID                    uint           `gorm:"primarykey" json:"id"`
	SellerName            string         `json:"seller_name"`
	ContactPersonName     string         `json:"contact_person_name"`
	PhoneNumber           string         `gorm:"type:varchar(10)" json:"phone_number"`
	Email                 string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash          string         `gorm:"not null" json:"-"`
	BusinessType          string         `json:"business_type"`
	StoreName             string         `json:"store_name"`
	GSTNumber             string         `json:"gst_number"`
	FSSAILicenseNumber    string         `json:"fssai_license_number"`
	OperatingHours        string         `json:"operating_hours"`
	StoreAddress          string         `json:"store_address"`
	PinCode               string         `gorm:"type:varchar(6)" json:"pin_code"`
	DeliveryMethod        string         `json:"delivery_method"`
	BankAccountHolderName string         `json:"bank_account_holder_name"`
	BankAccountNumber     string         `json:"bank_account_number"`
	IFSCCode              string         `gorm:"type:varchar(11)" json:"ifsc_code"`
	UPIID                 string         `json:"upi_id"`
	PANNumber             string         `gorm:"type:varchar(10)" json:"pan_number"`
	ProductCategories     pq.StringArray `gorm:"type:text[]" json:"product_categories"`
	Status                string         `gorm:"type:varchar(10);default:'active'" json:"status"`
	IDProofStatus         DocumentStatus `gorm:"type:varchar(10)" json:"id_proof_status"`
	GSTDocumentStatus     DocumentStatus `gorm:"type:varchar(10)" json:"gst_document_status"`
	FSSAILicenseStatus    DocumentStatus `gorm:"type:varchar(10)" json:"fssai_license_status"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LiveSeller) TableName() string {
	return "sellers"
}

// NewLiveSeller projects an approved application into its live twin.
func NewLiveSeller(app *SellerApplication) *LiveSeller {
	return &LiveSeller{
		SellerName:            app.SellerName,
		ContactPersonName:     app.ContactPersonName,
		PhoneNumber:           app.PhoneNumber,
		Email:                 app.Email,
		PasswordHash:          app.PasswordHash,
		BusinessType:          app.BusinessType,
		StoreName:             app.StoreName,
		GSTNumber:             app.GSTNumber,
		FSSAILicenseNumber:    app.FSSAILicenseNumber,
		OperatingHours:        app.OperatingHours,
		StoreAddress:          app.StoreAddress,
		PinCode:               app.PinCode,
		DeliveryMethod:        app.DeliveryMethod,
		BankAccountHolderName: app.BankAccountHolderName,
		BankAccountNumber:     app.BankAccountNumber,
		IFSCCode:              app.IFSCCode,
		UPIID:                 app.UPIID,
		PANNumber:             app.PANNumber,
		ProductCategories:     app.ProductCategories,
		Status:                LiveStatusActive,
		IDProofStatus:         app.IDProofStatus,
		GSTDocumentStatus:     app.GSTDocumentStatus,
		FSSAILicenseStatus:    app.FSSAILicenseStatus,
	}
}

// LiveDeliveryAgent is the production-facing delivery-agent account in the
// Users store.
type LiveDeliveryAgent struct {
	ID                        uint           `gorm:"primarykey" json:"id"`
	FullName                  string         `gorm:"not null" json:"full_name"`
	PasswordHash              string         `gorm:"not null" json:"-"`
	DateOfBirth               *time.Time     `json:"date_of_birth,omitempty"`
	ContactNumber             string         `gorm:"uniqueIndex;type:varchar(10)" json:"contact_number"`
	Email                     string         `gorm:"uniqueIndex;not null" json:"email"`
	ResidentialAddress        string         `json:"residential_address"`
	PinCode                   string         `gorm:"type:varchar(6)" json:"pin_code"`
	VehicleRegistrationNumber string         `json:"vehicle_registration_number"`
	BankAccountNumber         string         `json:"bank_account_number"`
	IFSCCode                  string         `gorm:"type:varchar(11)" json:"ifsc_code"`
	UPIID                     string         `json:"upi_id"`
	AccountHolderName         string         `json:"account_holder_name"`
	Status                    string         `gorm:"type:varchar(10);default:'active'" json:"status"`
	CreatedAt                 time.Time      `json:"created_at"`
	UpdatedAt                 time.Time      `json:"updated_at"`
	DeletedAt                 gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LiveDeliveryAgent) TableName() string {
	return "delivery_agents"
}

// NewLiveDeliveryAgent projects an approved application into its live twin.
func NewLiveDeliveryAgent(app *DeliveryAgentApplication) *LiveDeliveryAgent {
	return &LiveDeliveryAgent{
		FullName:                  app.FullName,
		PasswordHash:              app.PasswordHash,
		DateOfBirth:               app.DateOfBirth,
		ContactNumber:             app.ContactNumber,
		Email:                     app.Email,
		ResidentialAddress:        app.ResidentialAddress,
		PinCode:                   app.PinCode,
		VehicleRegistrationNumber: app.VehicleRegistrationNumber,
		BankAccountNumber:         app.BankAccountNumber,
		IFSCCode:                  app.IFSCCode,
		UPIID:                     app.UPIID,
		AccountHolderName:         app.AccountHolderName,
		Status:                    LiveStatusActive,
	}
}
