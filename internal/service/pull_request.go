package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/YusovID/review-assigner/internal/apperrors"
	"github.com/YusovID/review-assigner/internal/assignment"
	"github.com/YusovID/review-assigner/internal/domain"
	"github.com/YusovID/review-assigner/internal/repository"
	"github.com/YusovID/review-assigner/pkg/api"
	"github.com/jmoiron/sqlx"
)

type PullRequestService interface {
	CreatePR(ctx context.Context, prID string, prName string, authorID string) (*api.PullRequest, error)
	MergePR(ctx context.Context, prID string) (*api.PullRequest, error)
	ReassignReviewer(ctx context.Context, prID string, oldReviewerID string) (*api.ReassignResponse, error)
	DeletePR(ctx context.Context, prID string) error
	GetReviewAssignments(ctx context.Context, userID string) (*api.GetReviewResponse, error)
}

type PullRequestServiceImpl struct {
	BaseService
	prCmd    repository.PRCommandRepository
	prQuery  repository.PRQueryRepository
	users    repository.UserRepository
	resolver *assignment.Resolver
	picker   assignment.Picker
	now      func() time.Time
}

func NewPullRequestService(
	db DB,
	log *slog.Logger,
	prCmd repository.PRCommandRepository,
	prQuery repository.PRQueryRepository,
	users repository.UserRepository,
	picker assignment.Picker,
) *PullRequestServiceImpl {
	return &PullRequestServiceImpl{
		BaseService: NewBaseService(db, log),
		prCmd:       prCmd,
		prQuery:     prQuery,
		users:       users,
		resolver:    assignment.NewResolver(users),
		picker:      picker,
		now:         time.Now,
	}
}

func (s *PullRequestServiceImpl) CreatePR(ctx context.Context, prID string, prName string, authorID string) (*api.PullRequest, error) {
	const op = "internal.service.pullrequest.CreatePR"
	log := s.log.With(slog.String("op", op), slog.String("pr_id", prID), slog.String("author_id", authorID))

	var reviewerIDs []string

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		exists, err := s.prQuery.PRExists(ctx, tx, prID)
		if err != nil {
			return fmt.Errorf("%s: failed to check pr existence: %w", op, err)
		}

		if exists {
			return &apperrors.PRAlreadyExistsError{PRID: prID}
		}

		author, err := s.users.GetUserWithTeams(ctx, tx, authorID)
		if err != nil {
			return fmt.Errorf("%s: failed to get author: %w", op, err)
		}

		candidates, err := s.resolver.ResolveCandidates(ctx, tx, author)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		// no team and no active teammates are reported the same way
		if candidates.Without(authorID).Len() == 0 {
			return fmt.Errorf("%w: author '%s' has no team or no active teammates", apperrors.ErrNotFound, authorID)
		}

		reviewerIDs = assignment.ChooseInitialReviewers(candidates, authorID, s.picker)

		pr := &domain.PullRequest{
			ID:       prID,
			Name:     prName,
			AuthorID: authorID,
			Status:   domain.PRStatusOpen,
		}

		if err := s.prCmd.CreatePR(ctx, tx, pr); err != nil {
			return fmt.Errorf("%s: failed to create pr: %w", op, err)
		}

		if err := s.prCmd.AssignReviewers(ctx, tx, prID, reviewerIDs); err != nil {
			return fmt.Errorf("%s: failed to assign reviewers: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	reviewerAssignmentsTotal.WithLabelValues(reasonCreate).Add(float64(len(reviewerIDs)))
	log.Info("pr created", slog.Any("reviewers", reviewerIDs))

	return s.readBack(ctx, op, prID)
}

func (s *PullRequestServiceImpl) MergePR(ctx context.Context, prID string) (*api.PullRequest, error) {
	const op = "internal.service.pullrequest.MergePR"
	log := s.log.With(slog.String("op", op), slog.String("pr_id", prID))

	var alreadyMerged bool

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		pr, err := s.prCmd.GetPRByIDWithLock(ctx, tx, prID)
		if err != nil {
			return fmt.Errorf("%s: failed to get pr with lock: %w", op, err)
		}

		if pr.Status == domain.PRStatusMerged {
			alreadyMerged = true
			return nil
		}

		if err := s.prCmd.MarkMerged(ctx, tx, prID, s.now().UTC()); err != nil {
			return fmt.Errorf("%s: failed to mark pr merged: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if alreadyMerged {
		log.Info("pr already merged, returning current state")
	} else {
		log.Info("pr merged")
	}

	return s.readBack(ctx, op, prID)
}

func (s *PullRequestServiceImpl) ReassignReviewer(ctx context.Context, prID string, oldReviewerID string) (*api.ReassignResponse, error) {
	const op = "internal.service.pullrequest.ReassignReviewer"
	log := s.log.With(slog.String("op", op), slog.String("pr_id", prID), slog.String("old_reviewer_id", oldReviewerID))

	var newReviewerID string

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		var err error

		newReviewerID, err = s.findReplacement(ctx, tx, prID, oldReviewerID)
		if err != nil {
			return err
		}

		if err := s.prCmd.ReplaceReviewer(ctx, tx, prID, oldReviewerID, newReviewerID); err != nil {
			return fmt.Errorf("%s: failed to replace reviewer: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	reviewerAssignmentsTotal.WithLabelValues(reasonReassign).Inc()
	log.Info("reviewer reassigned", slog.String("new_reviewer_id", newReviewerID))

	pr, err := s.readBack(ctx, op, prID)
	if err != nil {
		return nil, err
	}

	return &api.ReassignResponse{
		Pr:         *pr,
		ReplacedBy: newReviewerID,
	}, nil
}

// findReplacement locks the pull request and picks an eligible replacement for oldReviewerID.
func (s *PullRequestServiceImpl) findReplacement(ctx context.Context, tx *sqlx.Tx, prID, oldReviewerID string) (string, error) {
	const op = "internal.service.pullrequest.findReplacement"

	pr, err := s.prCmd.GetPRByIDWithLock(ctx, tx, prID)
	if err != nil {
		return "", fmt.Errorf("%s: failed to get pr with lock: %w", op, err)
	}

	if pr.Status == domain.PRStatusMerged {
		return "", apperrors.ErrPRMerged
	}

	current, err := s.prQuery.GetReviewerIDs(ctx, tx, prID)
	if err != nil {
		return "", fmt.Errorf("%s: failed to get current reviewers: %w", op, err)
	}

	if !slices.Contains(current, oldReviewerID) {
		return "", apperrors.ErrReviewerNotAssigned
	}

	oldReviewer, err := s.users.GetUserWithTeams(ctx, tx, oldReviewerID)
	if err != nil {
		return "", fmt.Errorf("%s: failed to get reviewer: %w", op, err)
	}

	candidates, err := s.resolver.ResolveCandidates(ctx, tx, oldReviewer)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	excluded := append([]string{pr.AuthorID, oldReviewerID}, current...)

	newReviewerID, ok := assignment.ChooseReplacement(candidates.Without(excluded...), s.picker)
	if !ok {
		return "", apperrors.ErrNoCandidate
	}

	return newReviewerID, nil
}

func (s *PullRequestServiceImpl) DeletePR(ctx context.Context, prID string) error {
	const op = "internal.service.pullrequest.DeletePR"

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		if err := s.prCmd.DeletePR(ctx, tx, prID); err != nil {
			return fmt.Errorf("%s: failed to delete pr: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("pr deleted", slog.String("op", op), slog.String("pr_id", prID))

	return nil
}

func (s *PullRequestServiceImpl) GetReviewAssignments(ctx context.Context, userID string) (*api.GetReviewResponse, error) {
	const op = "internal.service.pullrequest.GetReviewAssignments"

	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to check user existence: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: user '%s'", apperrors.ErrNotFound, userID)
	}

	prs, err := s.prQuery.GetReviewAssignments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get review assignments: %w", op, err)
	}

	apiPRs := make([]api.PullRequestShort, len(prs))
	for i, pr := range prs {
		apiPRs[i] = api.PullRequestShort{
			PullRequestId:   pr.ID,
			PullRequestName: pr.Name,
			AuthorId:        pr.AuthorID,
			Status:          api.PullRequestShortStatus(pr.Status),
		}
	}

	return &api.GetReviewResponse{
		UserId:       userID,
		PullRequests: apiPRs,
	}, nil
}

func (s *PullRequestServiceImpl) readBack(ctx context.Context, op, prID string) (*api.PullRequest, error) {
	pr, err := s.prQuery.GetPRByIDWithReviewers(ctx, prID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read pr back: %w", op, err)
	}

	return toAPIPullRequest(pr), nil
}

func toAPIPullRequest(pr *domain.PullRequest) *api.PullRequest {
	reviewers := pr.ReviewerIDs
	if reviewers == nil {
		reviewers = []string{}
	}

	return &api.PullRequest{
		PullRequestId:     pr.ID,
		PullRequestName:   pr.Name,
		AuthorId:          pr.AuthorID,
		Status:            api.PullRequestStatus(pr.Status),
		AssignedReviewers: reviewers,
		CreatedAt:         pr.CreatedAt,
		MergedAt:          pr.MergedAt,
	}
}
