package request

// SignupRequest is the request body for creating a team account
type SignupRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Members  []SignupMember `json:"members,omitempty"`
}

// SignupMember carries one team member's contact details
type SignupMember struct {
	Mobile   string `json:"mobile"`
	IDNumber string `json:"id_number"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitFlagRequest is the request body for submitting a flag
type SubmitFlagRequest struct {
	ChallengeID string `json:"challenge_id"`
	Flag        string `json:"flag"`
}
