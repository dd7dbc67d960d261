package requests

import "encoding/json"

// RegisterMemberRequest is the body for POST /register
type RegisterMemberRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	InstitutionID string `json:"institutionId"`
	StudentID     string `json:"externalStudentId"`
	Password      string `json:"password"`
	EmojiTag      string `json:"emojiTag"`
}

// ApproveStudentRequest is the body for POST /admin/approve
type ApproveStudentRequest struct {
	AdminEmail    string `json:"adminEmail"`
	InstitutionID string `json:"institutionId"`
	StudentID     string `json:"externalStudentId"`
}

// UpdateMemberRequest is the body for POST /member/update. Fields is kept
// raw so the allow-list filtering happens in the service, not the decoder.
type UpdateMemberRequest struct {
	MemberID string                     `json:"memberId"`
	Fields   map[string]json.RawMessage `json:"fields"`
}

// LoginRequest is the body for POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ClubAccessRequest is the body for POST /clubs/hasAccess
type ClubAccessRequest struct {
	MemberID string `json:"memberId"`
	ClubID   string `json:"clubId"`
}
