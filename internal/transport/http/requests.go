package http

type teamMemberRequest struct {
	UserID   string `json:"user_id" validate:"required,entity_id"`
	Username string `json:"username" validate:"required,max=128"`
	IsActive bool   `json:"is_active"`
}

type upsertTeamRequest struct {
	TeamName string              `json:"team_name" validate:"required,max=128"`
	Members  []teamMemberRequest `json:"members" validate:"required,dive"`
}

// deactivateUsersRequest: a missing user_ids means the whole team, an empty list means nobody.
type deactivateUsersRequest struct {
	TeamName string   `json:"team_name" validate:"required,max=128"`
	UserIDs  []string `json:"user_ids" validate:"omitempty,dive,entity_id"`
}

type deleteTeamRequest struct {
	TeamName string `json:"team_name" validate:"required,max=128"`
}

type setUserActiveRequest struct {
	UserID   string `json:"user_id" validate:"required,entity_id"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

type createPRRequest struct {
	PullRequestID   string `json:"pull_request_id" validate:"required,entity_id"`
	PullRequestName string `json:"pull_request_name" validate:"required,max=255"`
	AuthorID        string `json:"author_id" validate:"required,entity_id"`
}

type pullRequestIDRequest struct {
	PullRequestID string `json:"pull_request_id" validate:"required,entity_id"`
}

type reassignRequest struct {
	PullRequestID string `json:"pull_request_id" validate:"required,entity_id"`
	OldReviewerID string `json:"old_reviewer_id" validate:"required,entity_id"`
}
