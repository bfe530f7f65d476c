package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapp "github.com/pollwise/poll-service/internal/app/http"
	"github.com/pollwise/poll-service/internal/handlers"
	"github.com/pollwise/poll-service/internal/lib/jwt"
	"github.com/pollwise/poll-service/internal/middleware"
	"github.com/pollwise/poll-service/internal/services"
	"github.com/pollwise/poll-service/internal/testutil"
)

const testSecret = "test-secret"

type pollEnvelope struct {
	Poll handlers.PollResponse `json:"poll"`
}

type resultsEnvelope struct {
	Results handlers.ResultsResponse `json:"results"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	store := testutil.NewMemStorage()
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	pollingService := services.NewPolling(log, store, store, store, store)
	handler := handlers.NewVotingHandler(log, pollingService)
	authMiddleware := middleware.NewAuthMiddleware(testSecret)

	app := httpapp.NewApp(log, 0, nil, handler, authMiddleware.RequireAuth(), authMiddleware.OptionalAuth())
	return app.Engine()
}

func bearerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token, err := jwt.NewAccessToken(userID, "voter@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(engine *gin.Engine, method, path string, body any, authorization string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createPoll(t *testing.T, engine *gin.Engine, authorization, title string, options []string) handlers.PollResponse {
	t.Helper()

	w := doRequest(engine, http.MethodPost, "/api/polls", gin.H{"title": title, "options": options}, authorization)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var envelope pollEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Poll
}

func optionByText(t *testing.T, poll handlers.PollResponse, text string) handlers.OptionResponse {
	t.Helper()

	for _, option := range poll.Options {
		if option.Text == text {
			return option
		}
	}
	t.Fatalf("option %q not found in poll %s", text, poll.ID)
	return handlers.OptionResponse{}
}

// TestVoteScenario walks the whole flow: create "Best color?", vote Red as one
// user, read the tally, then try to vote again.
func TestVoteScenario(t *testing.T) {
	engine := newTestServer(t)
	voter := bearerToken(t, uuid.New())

	poll := createPoll(t, engine, voter, "Best color?", []string{"Red", "Blue"})
	require.Len(t, poll.Options, 2)
	assert.True(t, poll.IsActive)
	assert.Zero(t, poll.TotalVotes)

	red := optionByText(t, poll, "Red")

	w := doRequest(engine, http.MethodPost, "/api/polls/"+poll.ID+"/vote", gin.H{"optionId": red.ID}, voter)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var voted struct {
		Message string                `json:"message"`
		Poll    handlers.PollResponse `json:"poll"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &voted))
	assert.Equal(t, "Vote recorded successfully", voted.Message)
	assert.Equal(t, int64(1), voted.Poll.TotalVotes)

	w = doRequest(engine, http.MethodGet, "/api/polls/"+poll.ID+"/results", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var results resultsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Equal(t, int64(1), results.Results.TotalVotes)
	for _, option := range results.Results.Options {
		switch option.Text {
		case "Red":
			assert.Equal(t, int64(1), option.Votes)
			assert.InDelta(t, 100.0, option.Percentage, 0.0001)
		case "Blue":
			assert.Zero(t, option.Votes)
			assert.Zero(t, option.Percentage)
		}
	}

	// Second vote from the same user is rejected and changes nothing.
	w = doRequest(engine, http.MethodPost, "/api/polls/"+poll.ID+"/vote", gin.H{"optionId": red.ID}, voter)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "You have already voted on this poll", errResp.Error)

	w = doRequest(engine, http.MethodGet, "/api/polls/"+poll.ID+"/results", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Equal(t, int64(1), results.Results.TotalVotes)
}

func TestCreatePoll_Unauthenticated(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(engine, http.MethodPost, "/api/polls", gin.H{"title": "Q", "options": []string{"A", "B"}}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePoll_TooFewOptions(t *testing.T) {
	engine := newTestServer(t)
	creator := bearerToken(t, uuid.New())

	w := doRequest(engine, http.MethodPost, "/api/polls", gin.H{"title": "Q", "options": []string{"A"}}, creator)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing should have been created.
	w = doRequest(engine, http.MethodGet, "/api/polls", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Polls []handlers.PollSummary `json:"polls"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Empty(t, listing.Polls)
}

func TestSubmitVote_MissingOptionID(t *testing.T) {
	engine := newTestServer(t)
	creator := bearerToken(t, uuid.New())

	poll := createPoll(t, engine, creator, "Q", []string{"A", "B"})

	w := doRequest(engine, http.MethodPost, "/api/polls/"+poll.ID+"/vote", gin.H{}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "Option ID is required", errResp.Error)
}

func TestSubmitVote_UnknownPoll(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(engine, http.MethodPost, "/api/polls/"+uuid.NewString()+"/vote", gin.H{"optionId": uuid.NewString()}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitVote_OptionFromAnotherPoll(t *testing.T) {
	engine := newTestServer(t)
	creator := bearerToken(t, uuid.New())

	first := createPoll(t, engine, creator, "First", []string{"A", "B"})
	second := createPoll(t, engine, creator, "Second", []string{"C", "D"})

	foreign := optionByText(t, second, "C")
	w := doRequest(engine, http.MethodPost, "/api/polls/"+first.ID+"/vote", gin.H{"optionId": foreign.ID}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "Invalid option", errResp.Error)
}

func TestSubmitVote_ClosedPoll(t *testing.T) {
	engine := newTestServer(t)
	creatorID := uuid.New()
	creator := bearerToken(t, creatorID)

	poll := createPoll(t, engine, creator, "Q", []string{"A", "B"})

	w := doRequest(engine, http.MethodPut, "/api/polls/"+poll.ID, gin.H{"isActive": false}, creator)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	option := optionByText(t, poll, "A")
	w = doRequest(engine, http.MethodPost, "/api/polls/"+poll.ID+"/vote", gin.H{"optionId": option.ID}, creator)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "Poll is not active", errResp.Error)
}

func TestUpdatePoll_NonCreatorForbidden(t *testing.T) {
	engine := newTestServer(t)
	creator := bearerToken(t, uuid.New())
	stranger := bearerToken(t, uuid.New())

	poll := createPoll(t, engine, creator, "Q", []string{"A", "B"})

	w := doRequest(engine, http.MethodPut, "/api/polls/"+poll.ID, gin.H{"title": "Hijacked"}, stranger)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// Replacing options is documented as destroying the poll's vote history.
func TestUpdatePoll_ReplaceOptionsResetsVotes(t *testing.T) {
	engine := newTestServer(t)
	creatorID := uuid.New()
	creator := bearerToken(t, creatorID)

	poll := createPoll(t, engine, creator, "Q", []string{"A", "B"})
	option := optionByText(t, poll, "A")

	w := doRequest(engine, http.MethodPost, "/api/polls/"+poll.ID+"/vote", gin.H{"optionId": option.ID}, creator)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodPut, "/api/polls/"+poll.ID, gin.H{"options": []string{"X", "Y"}}, creator)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope pollEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Zero(t, envelope.Poll.TotalVotes)
	require.Len(t, envelope.Poll.Options, 2)
	for _, opt := range envelope.Poll.Options {
		assert.Zero(t, opt.Votes)
	}
}

func TestDeletePoll(t *testing.T) {
	engine := newTestServer(t)
	creator := bearerToken(t, uuid.New())

	poll := createPoll(t, engine, creator, "Q", []string{"A", "B"})

	w := doRequest(engine, http.MethodDelete, "/api/polls/"+poll.ID, nil, creator)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodGet, "/api/polls/"+poll.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePoll_NonCreatorForbidden(t *testing.T) {
	engine := newTestServer(t)
	creator := bearerToken(t, uuid.New())
	stranger := bearerToken(t, uuid.New())

	poll := createPoll(t, engine, creator, "Q", []string{"A", "B"})

	w := doRequest(engine, http.MethodDelete, "/api/polls/"+poll.ID, nil, stranger)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(engine, http.MethodGet, "/api/polls/"+poll.ID, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPolls(t *testing.T) {
	engine := newTestServer(t)
	creator := bearerToken(t, uuid.New())

	createPoll(t, engine, creator, "First", []string{"A", "B"})
	createPoll(t, engine, creator, "Second", []string{"C", "D"})

	w := doRequest(engine, http.MethodGet, "/api/polls", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Polls []handlers.PollSummary `json:"polls"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing.Polls, 2)
}

func TestGetLogs_RequiresAuth(t *testing.T) {
	engine := newTestServer(t)
	creator := bearerToken(t, uuid.New())

	createPoll(t, engine, creator, "Q", []string{"A", "B"})

	w := doRequest(engine, http.MethodGet, "/api/logs", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(engine, http.MethodGet, "/api/logs", nil, creator)
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Logs []handlers.LogResponse `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.NotEmpty(t, listing.Logs)
}

func TestAnonymousVote(t *testing.T) {
	engine := newTestServer(t)
	creator := bearerToken(t, uuid.New())

	poll := createPoll(t, engine, creator, "Q", []string{"A", "B"})
	option := optionByText(t, poll, "A")

	// No Authorization header at all: accepted, not deduplicated.
	for i := 0; i < 2; i++ {
		w := doRequest(engine, http.MethodPost, "/api/polls/"+poll.ID+"/vote", gin.H{"optionId": option.ID}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doRequest(engine, http.MethodGet, "/api/polls/"+poll.ID+"/results", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var results resultsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Equal(t, int64(2), results.Results.TotalVotes)
}
