// Package http implements the HTTP transport layer of the service.
// Handlers decode and validate requests, call the services and encode the responses.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/YusovID/review-assigner/internal/apperrors"
	"github.com/YusovID/review-assigner/internal/service"
	"github.com/YusovID/review-assigner/internal/validation"
	"github.com/YusovID/review-assigner/pkg/api"
	"github.com/YusovID/review-assigner/pkg/logger/sl"
	"github.com/YusovID/review-assigner/swagger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	log          *slog.Logger
	teamService  service.TeamService
	userService  service.UserService
	prService    service.PullRequestService
	statsService service.StatsService
	db           Pinger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(
	log *slog.Logger,
	ts service.TeamService,
	us service.UserService,
	prs service.PullRequestService,
	ss service.StatsService,
	db Pinger,
) *Server {
	return &Server{
		log:          log,
		teamService:  ts,
		userService:  us,
		prService:    prs,
		statsService: ss,
		db:           db,
	}
}

// Routes sets up the router with all middleware and API endpoints.
// API routes come from the generated OpenAPI handler.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(middleware.Recoverer)
	mux.Use(s.metricsMiddleware)

	swaggerHandler, err := swagger.GetHandler()
	if err != nil {
		s.log.Error("failed to get swagger handler", sl.Err(err))
	} else {
		mux.Mount("/swagger", http.StripPrefix("/swagger", swaggerHandler))
	}

	mux.Handle("/metrics", promhttp.Handler())

	api.HandlerWithOptions(s, api.ChiServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: s.handleParamError,
	})

	return mux
}

func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.log.Error("health check failed", sl.Err(err))
		s.respond(w, http.StatusServiceUnavailable, api.HealthResponse{Status: "unavailable"})

		return
	}

	s.respond(w, http.StatusOK, api.HealthResponse{Status: "ok"})
}

func (s *Server) PostTeamAdd(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostTeamAdd"

	var req upsertTeamRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	apiMembers := make([]api.TeamMember, len(req.Members))
	for i, m := range req.Members {
		apiMembers[i] = api.TeamMember{
			UserId:   m.UserID,
			Username: m.Username,
			IsActive: m.IsActive,
		}
	}

	team, err := s.teamService.UpsertTeam(r.Context(), api.Team{
		TeamName: req.TeamName,
		Members:  apiMembers,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.Team{"team": team})
}

func (s *Server) GetTeamGet(w http.ResponseWriter, r *http.Request, params api.GetTeamGetParams) {
	const op = "internal.transport.http.GetTeamGet"

	team, err := s.teamService.GetTeam(r.Context(), params.TeamName)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.Team{"team": team})
}

func (s *Server) PostTeamDeactivateUsers(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostTeamDeactivateUsers"

	var req deactivateUsersRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	resp, err := s.teamService.DeactivateUsers(r.Context(), req.TeamName, req.UserIDs)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, resp)
}

func (s *Server) PostTeamDelete(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostTeamDelete"

	var req deleteTeamRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.teamService.DeleteTeam(r.Context(), req.TeamName); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]string{"team_name": req.TeamName})
}

func (s *Server) PostUsersSetIsActive(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostUsersSetIsActive"

	var req setUserActiveRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	user, err := s.userService.SetIsActive(r.Context(), req.UserID, *req.IsActive)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.User{"user": user})
}

func (s *Server) GetUsersGetReview(w http.ResponseWriter, r *http.Request, params api.GetUsersGetReviewParams) {
	const op = "internal.transport.http.GetUsersGetReview"

	resp, err := s.prService.GetReviewAssignments(r.Context(), params.UserId)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, resp)
}

func (s *Server) PostPullRequestCreate(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostPullRequestCreate"

	var req createPRRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	pr, err := s.prService.CreatePR(r.Context(), req.PullRequestID, req.PullRequestName, req.AuthorID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*api.PullRequest{"pr": pr})
}

func (s *Server) PostPullRequestMerge(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostPullRequestMerge"

	var req pullRequestIDRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	pr, err := s.prService.MergePR(r.Context(), req.PullRequestID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*api.PullRequest{"pr": pr})
}

func (s *Server) PostPullRequestReassign(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostPullRequestReassign"

	var req reassignRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	resp, err := s.prService.ReassignReviewer(r.Context(), req.PullRequestID, req.OldReviewerID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, resp)
}

func (s *Server) PostPullRequestDelete(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostPullRequestDelete"

	var req pullRequestIDRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.prService.DeletePR(r.Context(), req.PullRequestID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]string{"pull_request_id": req.PullRequestID})
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetStats"

	stats, err := s.statsService.GetStats(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, stats)
}

// respond encodes data as JSON with the given status code.
func (s *Server) respond(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

// respondAPIError sends the uniform {"error":{"code","message"}} body.
func (s *Server) respondAPIError(w http.ResponseWriter, status int, code api.ErrorResponseErrorCode, message string) {
	var errResp api.ErrorResponse

	errResp.Error.Code = code
	errResp.Error.Message = message

	s.respond(w, status, errResp)
}

func (s *Server) decodeAndValidate(r *http.Request, v any) error {
	if err := s.decode(r.Body, v); err != nil {
		return err
	}

	return validation.ValidateStruct(v)
}

func (s *Server) decode(body io.ReadCloser, v any) error {
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// handleParamError answers query parameter binding failures of the generated router.
func (s *Server) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Warn("invalid request parameters",
		slog.String("request_id", getRequestID(r.Context())),
		sl.Err(err),
	)

	s.respondAPIError(w, http.StatusBadRequest, api.VALIDATION, err.Error())
}

// handleServiceError logs err and maps it to a status code and an error body.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := apperrors.Code(err)
	status := statusFor(code)

	log := s.log.With(
		slog.String("op", op),
		slog.String("request_id", getRequestID(r.Context())),
		slog.String("code", code),
	)

	if status >= http.StatusInternalServerError {
		log.Error("service error occurred", sl.Err(err))
	} else {
		log.Info("request rejected", sl.Err(err))
	}

	s.respondAPIError(w, status, api.ErrorResponseErrorCode(code), errorMessage(code, err))
}

func statusFor(code string) int {
	switch code {
	case apperrors.CodeValidation:
		return http.StatusBadRequest
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodePRExists, apperrors.CodePRMerged, apperrors.CodeNotAssigned, apperrors.CodeNoCandidate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage keeps internal error chains out of responses.
func errorMessage(code string, err error) string {
	var (
		validationErr *validation.ValidationError
		prExistsErr   *apperrors.PRAlreadyExistsError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, apperrors.ErrInvalidRequest):
		return apperrors.ErrInvalidRequest.Error()
	case errors.As(err, &prExistsErr):
		return prExistsErr.Error()
	}

	switch code {
	case apperrors.CodeNotFound:
		return apperrors.ErrNotFound.Error()
	case apperrors.CodePRMerged:
		return apperrors.ErrPRMerged.Error()
	case apperrors.CodeNotAssigned:
		return apperrors.ErrReviewerNotAssigned.Error()
	case apperrors.CodeNoCandidate:
		return apperrors.ErrNoCandidate.Error()
	case apperrors.CodeValidation:
		return apperrors.ErrValidation.Error()
	default:
		return "internal server error"
	}
}
