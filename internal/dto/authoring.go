package dto

// CategoryTagsResponse represents one category and its tags
type CategoryTagsResponse struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// QuestionResponse represents a question in the API response
type QuestionResponse struct {
	ID         string   `json:"id"`
	Kind       string   `json:"kind"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options,omitempty"`
	Weight     int      `json:"weight"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category"`
}

// BlockResponse represents one outline block in the API response
type BlockResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	Weight          int    `json:"weight"`
	Difficulty      string `json:"difficulty"`
}

// CategoryAggregateResponse represents one category's summary metrics
type CategoryAggregateResponse struct {
	Count            int `json:"count"`
	EstimatedMinutes int `json:"estimated_minutes"`
	Points           int `json:"points"`
}

// AggregatesResponse represents the derived summary metrics
type AggregatesResponse struct {
	TotalPoints            int                                  `json:"total_points"`
	TotalQuestions         int                                  `json:"total_questions"`
	EstimatedMinutes       int                                  `json:"estimated_minutes"`
	ExpectedAveragePercent int                                  `json:"expected_average_percent"`
	ByCategory             map[string]CategoryAggregateResponse `json:"by_category"`
}

// DraftResponse represents the current draft contents
type DraftResponse struct {
	Title           string                 `json:"title"`
	RoleTitle       string                 `json:"role_title"`
	Description     string                 `json:"description"`
	ExperienceTier  string                 `json:"experience_tier"`
	DurationMinutes int                    `json:"duration_minutes"`
	Difficulty      string                 `json:"difficulty"`
	Skills          []string               `json:"skills"`
	Categories      []CategoryTagsResponse `json:"categories"`
	Questions       []QuestionResponse     `json:"questions"`
	Blocks          []BlockResponse        `json:"blocks"`
}

// SessionResponse represents the full authoring session state
type SessionResponse struct {
	SessionID  string             `json:"session_id"`
	Stage      string             `json:"stage"`
	Pending    bool               `json:"pending"`
	Draft      DraftResponse      `json:"draft"`
	Aggregates AggregatesResponse `json:"aggregates"`
}

// UpdateDraftRequest carries field-level draft edits; nil fields are left
// untouched
// @Description Partial draft update
type UpdateDraftRequest struct {
	Title           *string `json:"title"`
	RoleTitle       *string `json:"role_title"`
	Description     *string `json:"description"`
	ExperienceTier  *string `json:"experience_tier"`
	DurationMinutes *int    `json:"duration_minutes"`
	Difficulty      *string `json:"difficulty"`
}

// TagRequest adds or removes one tag on a category
type TagRequest struct {
	Category string `json:"category"`
	Tag      string `json:"tag"`
}

// UpdateFieldRequest updates one field of one question
type UpdateFieldRequest struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

// AddOptionRequest appends an option to a multiple choice question
type AddOptionRequest struct {
	Value string `json:"value"`
}

// UpdateOptionRequest replaces the option at the given index
type UpdateOptionRequest struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// RemoveOptionRequest removes the option at the given index
type RemoveOptionRequest struct {
	Index int `json:"index"`
}

// BlockRequest appends one outline block
type BlockRequest struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	Weight          int    `json:"weight"`
	Difficulty      string `json:"difficulty"`
}

// ExtractFilesRequest carries uploaded file payloads for text extraction
type ExtractFilesRequest struct {
	Files []FilePayload `json:"files"`
}

// FilePayload is one uploaded file, base64-decoded by the body parser
type FilePayload struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// SaveResponse confirms a persisted assessment
type SaveResponse struct {
	AssessmentID string `json:"assessment_id"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
