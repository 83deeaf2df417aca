package event

const (
	KYCEventsQueue           = "kyc_events"
	VerificationResultsQueue = "kyc_verification_results"
)

type KYCEvent struct {
	ID        string       `json:"id"`
	EventType KYCEventType `json:"event_type"`
	UserID    int64        `json:"user_id"`
	RecordID  int64        `json:"record_id,omitempty"`
	URL       string       `json:"url,omitempty"`
}

type KYCEventType string

const (
	DocumentUploaded KYCEventType = "document_uploaded"
	FaceUploaded     KYCEventType = "face_uploaded"
	UserDeleted      KYCEventType = "user_deleted"
)

// VerificationResult is what the external verification worker writes back
// after it has inspected an uploaded document or face image.
type VerificationResult struct {
	RecordType    string   `json:"record_type"` // "document" or "face"
	RecordID      int64    `json:"record_id"`
	Status        string   `json:"status"` // "verified" or "rejected"
	LivenessScore *float64 `json:"liveness_score,omitempty"`
	MatchScore    *float64 `json:"match_score,omitempty"`
}
