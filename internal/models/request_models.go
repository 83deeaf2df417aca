package models

// User DTOs
type CreateUserRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Aadhaar *string `json:"aadhaar" binding:"omitempty,len=12"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// UpdateUserRequest patches only the fields present in the body.
type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Aadhaar *string `json:"aadhaar" binding:"omitempty,len=12"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Phone == nil && r.Aadhaar == nil && r.Email == nil && r.Address == nil
}

// Response DTOs
type CreateUserResponse struct {
	UserID int64 `json:"user_id"`
}

type UploadDocumentResponse struct {
	DocID  int64  `json:"doc_id"`
	DocURL string `json:"doc_url"`
}

type UploadFaceResponse struct {
	FaceID  int64  `json:"face_id"`
	FaceURL string `json:"face_url"`
}
