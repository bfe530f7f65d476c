package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pollwise/poll-service/internal/middleware"
	"github.com/pollwise/poll-service/internal/repo"
	"github.com/pollwise/poll-service/internal/services"
)

type VotingHandler struct {
	log            *slog.Logger
	pollingService *services.Polling
}

type CreatePollRequest struct {
	Title   string   `json:"title" binding:"required"`
	Options []string `json:"options" binding:"required"`
}

type UpdatePollRequest struct {
	Title    *string  `json:"title"`
	IsActive *bool    `json:"isActive"`
	Options  []string `json:"options"`
}

type VoteRequest struct {
	OptionID string `json:"optionId"`
}

func NewVotingHandler(log *slog.Logger, pollingService *services.Polling) *VotingHandler {
	return &VotingHandler{log: log, pollingService: pollingService}
}

func (v *VotingHandler) CreatePoll(c *gin.Context) {
	var req CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	poll, options, err := v.pollingService.CreatePoll(c.Request.Context(), req.Title, req.Options, userID)
	if err != nil {
		v.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"poll": newPollResponse(poll, options)})
}

func (v *VotingHandler) GetPolls(c *gin.Context) {
	polls, err := v.pollingService.GetPolls(c.Request.Context())
	if err != nil {
		v.respondError(c, err)
		return
	}

	summaries := make([]PollSummary, 0, len(polls))
	for _, poll := range polls {
		summaries = append(summaries, newPollSummary(poll))
	}

	c.JSON(http.StatusOK, gin.H{"polls": summaries})
}

func (v *VotingHandler) GetPollByID(c *gin.Context) {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	poll, options, err := v.pollingService.GetPoll(c.Request.Context(), pollID)
	if err != nil {
		v.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"poll": newPollResponse(poll, options)})
}

// UpdatePoll applies a partial update. Sending "options" replaces the option
// set and discards that poll's vote history.
func (v *VotingHandler) UpdatePoll(c *gin.Context) {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	var req UpdatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	poll, options, err := v.pollingService.UpdatePoll(c.Request.Context(), pollID, req.Title, req.IsActive, req.Options, userID)
	if err != nil {
		v.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"poll": newPollResponse(poll, options)})
}

func (v *VotingHandler) DeletePoll(c *gin.Context) {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := v.pollingService.DeletePoll(c.Request.Context(), pollID, userID); err != nil {
		v.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Poll deleted successfully"})
}

// SubmitVote records a vote for the caller. Anonymous votes are accepted and
// are not deduplicated; identified voters get at most one vote per poll.
func (v *VotingHandler) SubmitVote(c *gin.Context) {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Option ID is required"})
		return
	}

	optionID, err := uuid.Parse(req.OptionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option"})
		return
	}

	var voterID *uuid.UUID
	if userID, ok := currentUserID(c); ok {
		voterID = &userID
	}

	if _, err := v.pollingService.SubmitVote(c.Request.Context(), pollID, optionID, voterID); err != nil {
		v.respondError(c, err)
		return
	}

	poll, options, err := v.pollingService.GetPoll(c.Request.Context(), pollID)
	if err != nil {
		v.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vote recorded successfully",
		"poll":    newPollResponse(poll, options),
	})
}

func (v *VotingHandler) GetResults(c *gin.Context) {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return
	}

	tally, err := v.pollingService.ComputeTally(c.Request.Context(), pollID)
	if err != nil {
		v.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": newResultsResponse(tally)})
}

func (v *VotingHandler) GetLogs(c *gin.Context) {
	logs, err := v.pollingService.GetLogs(c.Request.Context())
	if err != nil {
		v.respondError(c, err)
		return
	}

	responses := make([]LogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, newLogResponse(log))
	}

	c.JSON(http.StatusOK, gin.H{"logs": responses})
}

func (v *VotingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrPollNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
	case errors.Is(err, repo.ErrOptionNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option"})
	case errors.Is(err, repo.ErrPollClosed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Poll is not active"})
	case errors.Is(err, repo.ErrAlreadyVoted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already voted on this poll"})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		// Store failures stay opaque to callers.
		v.log.Error("request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
