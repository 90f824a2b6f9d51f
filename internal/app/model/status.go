package model

// ApplicationStatus is the overall review state of a registration.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// ParseDecision accepts only the two reviewer decisions, never "pending".
func ParseDecision(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case StatusApproved, StatusRejected:
		return ApplicationStatus(s), true
	}
	return "", false
}

// DocumentStatus is the verification state of a single uploaded document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentVerified DocumentStatus = "verified"
	DocumentRejected DocumentStatus = "rejected"
)

// ParseDocumentDecision accepts only the two reviewer decisions.
func ParseDocumentDecision(s string) (DocumentStatus, bool) {
	switch DocumentStatus(s) {
	case DocumentVerified, DocumentRejected:
		return DocumentStatus(s), true
	}
	return "", false
}

// ApplicantType distinguishes the two registration collections.
type ApplicantType string

const (
	ApplicantSeller        ApplicantType = "seller"
	ApplicantDeliveryAgent ApplicantType = "deliveryagent"
)

// ParseApplicantType normalizes the type segment of review URLs. The
// dashboards send both "delivery" and "deliveryagent" for agents.
func ParseApplicantType(s string) (ApplicantType, bool) {
	switch s {
	case "seller":
		return ApplicantSeller, true
	case "delivery", "deliveryagent", "delivery-agent":
		return ApplicantDeliveryAgent, true
	}
	return "", false
}
