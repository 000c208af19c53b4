package dto

// InvitationResponse is returned when a preview link is issued
type InvitationResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// InvitationSnapshotResponse is the immutable assessment snapshot a token
// resolves to
type InvitationSnapshotResponse struct {
	Title           string             `json:"title"`
	DurationMinutes int                `json:"duration_minutes"`
	Questions       []QuestionResponse `json:"questions"`
}
