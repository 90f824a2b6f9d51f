package model

import (
	"time"

	"gorm.io/gorm"
)

// DeliveryAgentApplication is one delivery agent's onboarding submission in
// the Registrations store.
type DeliveryAgentApplication struct {
	ID uint `gorm:"primarykey" json:"id"`

	// Personal details
	FullName      string     `gorm:"not null" json:"full_name"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Gender        string     `gorm:"type:varchar(20)" json:"gender"`
	ContactNumber string     `gorm:"uniqueIndex;not null;type:varchar(10)" json:"contact_number"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string     `gorm:"not null" json:"-"`

	// Address
	ResidentialAddress string `json:"residential_address"`
	City               string `json:"city"`
	PinCode            string `gorm:"type:varchar(6)" json:"pin_code"`

	// Identity verification (KYC)
	IdentityProofType      string         `gorm:"type:varchar(30)" json:"identity_proof_type"`
	IdentityProofURL       string         `json:"identity_proof_url"`
	IdentityProofStatus    DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"identity_proof_status"`
	PANCardURL             string         `json:"pan_card_url"`
	PANCardStatus          DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"pan_card_status"`
	PhotoURL               string         `json:"photo_url"`
	PhotoStatus            DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"photo_status"`
	DigitalSignatureURL    string         `json:"digital_signature_url"`
	DigitalSignatureStatus DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"digital_signature_status"`

	// Vehicle details
	VehicleType               string         `gorm:"type:varchar(20)" json:"vehicle_type"`
	VehicleRegistrationNumber string         `json:"vehicle_registration_number"`
	VehicleFuelType           string         `gorm:"type:varchar(20)" json:"vehicle_fuel_type"`
	RCBookURL                 string         `json:"rc_book_url"`
	RCBookStatus              DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"rc_book_status"`
	DrivingLicenseURL         string         `json:"driving_license_url"`
	DrivingLicenseStatus      DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"driving_license_status"`
	InsuranceURL              string         `json:"insurance_url"`
	InsuranceStatus           DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"insurance_status"`

	// Bank and payment
	AccountHolderName string `json:"account_holder_name"`
	BankAccountNumber string `json:"bank_account_number"`
	IFSCCode          string `gorm:"type:varchar(11)" json:"ifsc_code"`
	UPIID             string `json:"upi_id"`

	// Review state
	Status       ApplicationStatus `gorm:"type:varchar(10);default:'pending';index" json:"status"`
	StatusReason string            `json:"status_reason,omitempty"`
	ApprovedAt   *time.Time        `json:"approved_at,omitempty"`
	ApprovedBy   *uint             `json:"approved_by,omitempty"`

	// Promotion state
	IsConfirmed bool       `gorm:"default:false" json:"is_confirmed"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	ConfirmedBy *uint      `json:"confirmed_by,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DeliveryAgentApplication) TableName() string {
	return "delivery_agent_applications"
}

// AgentDocumentKinds lists the delivery-agent KYC documents in dashboard
// order.
var AgentDocumentKinds = []DocumentKind{
	{ID: "doc1", Label: "ID Proof", StatusColumn: "identity_proof_status",
		URLField: func(a any) string { return a.(*DeliveryAgentApplication).IdentityProofURL }},
	{ID: "doc2", Label: "License", StatusColumn: "driving_license_status",
		URLField: func(a any) string { return a.(*DeliveryAgentApplication).DrivingLicenseURL }},
	{ID: "doc3", Label: "RC Book", StatusColumn: "rc_book_status",
		URLField: func(a any) string { return a.(*DeliveryAgentApplication).RCBookURL }},
	{ID: "doc4", Label: "Agent Photo", StatusColumn: "photo_status",
		URLField: func(a any) string { return a.(*DeliveryAgentApplication).PhotoURL }},
	{ID: "doc5", Label: "PAN Card", StatusColumn: "pan_card_status",
		URLField: func(a any) string { return a.(*DeliveryAgentApplication).PANCardURL }},
	{ID: "doc6", Label: "Insurance", StatusColumn: "insurance_status",
		URLField: func(a any) string { return a.(*DeliveryAgentApplication).InsuranceURL }},
	{ID: "doc7", Label: "Signature", StatusColumn: "digital_signature_status",
		URLField: func(a any) string { return a.(*DeliveryAgentApplication).DigitalSignatureURL }},
}

// AgentDocumentColumn resolves a public doc id to its status column.
func AgentDocumentColumn(docID string) (string, bool) {
	for _, kind := range AgentDocumentKinds {
		if kind.ID == docID {
			return kind.StatusColumn, true
		}
	}
	return "", false
}

// Documents returns the application's uploaded documents in review order.
func (a *DeliveryAgentApplication) Documents() []DocumentView {
	uploaded := a.CreatedAt.Format("2006-01-02")
	statuses := map[string]DocumentStatus{
		"doc1": a.IdentityProofStatus,
		"doc2": a.DrivingLicenseStatus,
		"doc3": a.RCBookStatus,
		"doc4": a.PhotoStatus,
		"doc5": a.PANCardStatus,
		"doc6": a.InsuranceStatus,
		"doc7": a.DigitalSignatureStatus,
	}

	var docs []DocumentView
	for _, kind := range AgentDocumentKinds {
		url := kind.URLField(a)
		if url == "" {
			continue
		}
		status := statuses[kind.ID]
		if status == "" {
			status = DocumentPending
		}
		docs = append(docs, DocumentView{
			ID:           kind.ID,
			DocumentType: kind.Label,
			UploadDate:   uploaded,
			Status:       status,
			URL:          url,
		})
	}
	return docs
}
