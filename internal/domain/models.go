package domain

import "time"

type PRStatus string

const (
	PRStatusOpen   PRStatus = "OPEN"
	PRStatusMerged PRStatus = "MERGED"
)

type User struct {
	ID       string `db:"user_id"`
	Username string `db:"username"`
	IsActive bool   `db:"is_active"`
	// Teams is sorted by name; empty when the user belongs to no team.
	Teams []string
}

// PrimaryTeam returns the alphabetically first team, or "" for a team-less user.
func (u *User) PrimaryTeam() string {
	if len(u.Teams) == 0 {
		return ""
	}

	return u.Teams[0]
}

type Team struct {
	Name string `db:"team_name"`
}

type TeamWithMembers struct {
	Name    string
	Members []User
}

type PullRequest struct {
	ID          string     `db:"pull_request_id"`
	Name        string     `db:"pull_request_name"`
	AuthorID    string     `db:"author_id"`
	Status      PRStatus   `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	MergedAt    *time.Time `db:"merged_at"`
	ReviewerIDs []string
}

func (pr *PullRequest) HasReviewer(userID string) bool {
	for _, id := range pr.ReviewerIDs {
		if id == userID {
			return true
		}
	}

	return false
}

type Reviewer struct {
	PullRequestID string `db:"pull_request_id"`
	ReviewerID    string `db:"reviewer_id"`
}

// UserCount is one row of a per-user aggregate.
type UserCount struct {
	UserID string `db:"user_id"`
	Count  int    `db:"count"`
}

type ReviewStats struct {
	UserID        string `db:"user_id"`
	Username      string `db:"username"`
	OpenReviews   int    `db:"open_reviews"`
	MergedReviews int    `db:"merged_reviews"`
}

type Stats struct {
	AssignmentsPerReviewer []UserCount
	OpenPRsPerAuthor       []UserCount
	MergedPRsPerAuthor     []UserCount
	PRCountByStatus        map[PRStatus]int
	UserStats              []ReviewStats
}

// DeactivationResult reports what a bulk deactivation changed.
type DeactivationResult struct {
	TeamName      string
	Deactivated   []string
	ReassignedPRs int
}
