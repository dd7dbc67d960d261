package responses

import "campus-spaces/registrar/internal/constants"

// RegistrationResponse is returned by POST /register
type RegistrationResponse struct {
	MemberID string               `json:"memberId"`
	Role     constants.MemberRole `json:"role"`
}

// ApprovalResponse is returned by POST /admin/approve
type ApprovalResponse struct {
	Success bool `json:"success"`
}

// LeaderboardEntry is one ranked member inside a leaderboard view
type LeaderboardEntry struct {
	MemberID      string `json:"memberId"`
	Name          string `json:"name"`
	EmojiTag      string `json:"emojiTag"`
	AcademicScore int    `json:"academicScore"`
	SportsScore   int    `json:"sportsScore"`
	CombinedScore int    `json:"combinedScore"`
	Rank          int    `json:"rank"`
}

// LeaderboardResponse is returned by GET /leaderboard
type LeaderboardResponse struct {
	AcademicTop []LeaderboardEntry `json:"academicTop"`
	SportsTop   []LeaderboardEntry `json:"sportsTop"`
	CombinedTop []LeaderboardEntry `json:"combinedTop"`
}

// MemberView is the wire shape of a member, clubs flattened to plain IDs
type MemberView struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	StudentID     string               `json:"externalStudentId"`
	InstitutionID string               `json:"institutionId"`
	Role          constants.MemberRole `json:"role"`
	EmojiTag      string               `json:"emojiTag"`
	AcademicScore int                  `json:"academicScore"`
	SportsScore   int                  `json:"sportsScore"`
	Clubs         []string             `json:"clubs"`
}

// MemberResponse wraps a member for GET /member/get and POST /member/update
type MemberResponse struct {
	Member MemberView `json:"member"`
}

// ClubAccessResponse is returned by POST /clubs/hasAccess
type ClubAccessResponse struct {
	HasAccess bool `json:"hasAccess"`
}

// LoginResponse is returned by POST /login
type LoginResponse struct {
	Token     string     `json:"token"`
	SessionID string     `json:"sessionId"`
	ExpiresIn int        `json:"expires_in"`
	Member    MemberView `json:"member"`
}

// InstitutionView is one entry of GET /institutions
type InstitutionView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Icon   string `json:"icon"`
}

// InstitutionListResponse is returned by GET /institutions
type InstitutionListResponse struct {
	Institutions []InstitutionView `json:"institutions"`
}

// EventView is one entry of GET /events
type EventView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Attendees    int    `json:"attendees"`
	MaxAttendees *int   `json:"maxAttendees,omitempty"`
}

// EventListResponse is returned by GET /events
type EventListResponse struct {
	Events []EventView `json:"events"`
}
