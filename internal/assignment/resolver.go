package assignment

import (
	"context"
	"fmt"

	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/jmoiron/sqlx"
)

type MemberLister interface {
	GetActiveMemberIDs(ctx context.Context, ext sqlx.ExtContext, teamNames []string) ([]string, error)
}

// Resolver computes who may review a user's work: the active members of every team the user is in.
// The user itself is part of the result when active; callers exclude it.
type Resolver struct {
	members MemberLister
}

func NewResolver(members MemberLister) *Resolver {
	return &Resolver{members: members}
}

// ResolveCandidates expects user.Teams to be loaded. A team-less user has no candidates.
func (r *Resolver) ResolveCandidates(ctx context.Context, ext sqlx.ExtContext, user *domain.User) (Candidates, error) {
	const op = "internal.assignment.ResolveCandidates"

	if len(user.Teams) == 0 {
		return Candidates{}, nil
	}

	ids, err := r.members.GetActiveMemberIDs(ctx, ext, user.Teams)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get active members: %w", op, err)
	}

	return NewCandidates(ids...), nil
}
