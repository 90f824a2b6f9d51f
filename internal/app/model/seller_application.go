package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SellerApplication is one seller's onboarding submission in the
// Registrations store. Document images are stored out of band; only their
// URLs and per-document verification states live here.
type SellerApplication struct {
	ID uint `gorm:"primarykey" json:"id"`

	// Basic seller information
	SellerName        string `gorm:"not null" json:"seller_name"`
	ContactPersonName string `gorm:"not null" json:"contact_person_name"`
	PhoneNumber       string `gorm:"uniqueIndex;not null;type:varchar(10)" json:"phone_number"`
	Email             string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string `gorm:"not null" json:"-"`
	BusinessType      string `gorm:"type:varchar(50)" json:"business_type"`

	// Business and store details
	StoreName           string         `gorm:"not null" json:"store_name"`
	GSTNumber           string         `json:"gst_number"`
	FSSAILicenseNumber  string         `json:"fssai_license_number"`
	ProductCategories   pq.StringArray `gorm:"type:text[]" json:"product_categories"`
	ProductSource       string         `json:"product_source"`
	OperatingHours      string         `json:"operating_hours"`

	// Address and delivery
	StoreAddress      string         `json:"store_address"`
	City              string         `json:"city"`
	PinCode           string         `gorm:"type:varchar(6)" json:"pin_code"`
	ServiceAreaRadius string         `json:"service_area_radius"`
	DeliveryLocations pq.StringArray `gorm:"type:text[]" json:"delivery_locations"`
	DeliveryMethod    string         `gorm:"type:varchar(30)" json:"delivery_method"`

	// Bank and payment
	BankAccountHolderName string `json:"bank_account_holder_name"`
	BankAccountNumber     string `json:"bank_account_number"`
	IFSCCode              string `gorm:"type:varchar(11)" json:"ifsc_code"`
	UPIID                 string `json:"upi_id"`
	PANNumber             string `gorm:"type:varchar(10)" json:"pan_number"`

	// Product and quality verification
	SampleProductImageURLs pq.StringArray `gorm:"type:text[]" json:"sample_product_image_urls"`
	PricingRange           string         `json:"pricing_range"`
	PackagingProcess       string         `json:"packaging_process"`
	StorageDetails         string         `json:"storage_details"`
	DailyStockCapacity     string         `json:"daily_stock_capacity"`

	// KYC documents: URL plus verification state per document
	IDProofURL           string         `json:"id_proof_url"`
	IDProofStatus        DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"id_proof_status"`
	GSTDocumentURL       string         `json:"gst_document_url"`
	GSTDocumentStatus    DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"gst_document_status"`
	OwnershipProofURL    string         `json:"ownership_proof_url"`
	OwnershipProofStatus DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"ownership_proof_status"`
	BankProofURL         string         `json:"bank_proof_url"`
	BankProofStatus      DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"bank_proof_status"`
	ShopPhotoURL         string         `json:"shop_photo_url"`
	ShopPhotoStatus      DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"shop_photo_status"`
	FSSAILicenseURL      string         `json:"fssai_license_url"`
	FSSAILicenseStatus   DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"fssai_license_status"`
	TradeLicenseURL      string         `json:"trade_license_url"`
	TradeLicenseStatus   DocumentStatus `gorm:"type:varchar(10);default:'pending'" json:"trade_license_status"`

	// Review state
	Status       ApplicationStatus `gorm:"type:varchar(10);default:'pending';index" json:"status"`
	StatusReason string            `json:"status_reason,omitempty"`
	ApprovedAt   *time.Time        `json:"approved_at,omitempty"`
	ApprovedBy   *uint             `json:"approved_by,omitempty"`

	// Promotion state: one-way, stamped once by an Administrator
	IsConfirmed bool       `gorm:"default:false" json:"is_confirmed"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	ConfirmedBy *uint      `json:"confirmed_by,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SellerApplication) TableName() string {
	return "seller_applications"
}

// DocumentKind binds a public document id to its display label and the column
// holding that document's verification state. Review writes go through this
// mapping only; an id outside the map never reaches the database.
type DocumentKind struct {
	ID           string
	Label        string
	URLField     func(any) string
	StatusColumn string
}

// SellerDocumentKinds lists the seller KYC documents in dashboard order.
var SellerDocumentKinds = []DocumentKind{
	{ID: "doc1", Label: "ID Proof", StatusColumn: "id_proof_status",
		URLField: func(a any) string { return a.(*SellerApplication).IDProofURL }},
	{ID: "doc2", Label: "GST Doc", StatusColumn: "gst_document_status",
		URLField: func(a any) string { return a.(*SellerApplication).GSTDocumentURL }},
	{ID: "doc3", Label: "FSSAI", StatusColumn: "fssai_license_status",
		URLField: func(a any) string { return a.(*SellerApplication).FSSAILicenseURL }},
	{ID: "doc4", Label: "Trade License", StatusColumn: "trade_license_status",
		URLField: func(a any) string { return a.(*SellerApplication).TradeLicenseURL }},
}

// SellerDocumentColumn resolves a public doc id to its status column.
func SellerDocumentColumn(docID string) (string, bool) {
	for _, kind := range SellerDocumentKinds {
		if kind.ID == docID {
			return kind.StatusColumn, true
		}
	}
	return "", false
}

// DocumentView is the normalized per-document entry the review dashboard
// renders for every document that has an uploaded URL.
type DocumentView struct {
	ID           string         `json:"id"`
	DocumentType string         `json:"documentType"`
	UploadDate   string         `json:"uploadDate"`
	Status       DocumentStatus `json:"status"`
	URL          string         `json:"url"`
}

// Documents returns the application's uploaded documents in review order.
func (s *SellerApplication) Documents() []DocumentView {
	uploaded := s.CreatedAt.Format("2006-01-02")
	statuses := map[string]DocumentStatus{
		"doc1": s.IDProofStatus,
		"doc2": s.GSTDocumentStatus,
		"doc3": s.FSSAILicenseStatus,
		"doc4": s.TradeLicenseStatus,
	}

	var docs []DocumentView
	for _, kind := range SellerDocumentKinds {
		url := kind.URLField(s)
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
