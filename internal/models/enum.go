package models

type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
	StatusRejected VerificationStatus = "rejected"
)

// Expected document types. Not enforced as an enum on write; external
// verification decides what it accepts.
const (
	DocTypeAadhaar = "aadhaar"
	DocTypePAN     = "pan"
	DocTypeDL      = "dl"
	DocTypeVoterID = "voterid"
)

func IsValidStatus(s string) bool {
	switch VerificationStatus(s) {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return false
}
