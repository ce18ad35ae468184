package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"djurdata-ai/internal/apis/dtos"
	"djurdata-ai/internal/apis/handlers"
	"djurdata-ai/internal/constants"
	"djurdata-ai/pkg/chatstream"
	"djurdata-ai/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChatService is a testify mock of services.IChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Admit(ctx context.Context, req *dtos.ChatRequest) (*dtos.ChatRejection, uint, error) {
	args := m.Called(ctx, req)
	var rejection *dtos.ChatRejection
	if args.Get(0) != nil {
		rejection = args.Get(0).(*dtos.ChatRejection)
	}
	return rejection, args.Get(1).(uint), args.Error(2)
}

func (m *MockChatService) OpenStream(ctx context.Context, req *dtos.ChatRequest) (llm.Stream, uint, error) {
	args := m.Called(ctx, req)
	var stream llm.Stream
	if args.Get(0) != nil {
		stream = args.Get(0).(llm.Stream)
	}
	return stream, args.Get(1).(uint), args.Error(2)
}

// scriptedStream replays fixed fragments and then EOF.
type scriptedStream struct {
	fragments []string
	pos       int
	closed    bool
}

func (s *scriptedStream) Recv() (string, error) {
	if s.pos >= len(s.fragments) {
		return "", io.EOF
	}
	fragment := s.fragments[s.pos]
	s.pos++
	return fragment, nil
}

func (s *scriptedStream) Close() error {
	s.closed = true
	return nil
}

func newChatRouter(svc *MockChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/chat", handlers.NewChatHandler(svc).Chat)
	return router
}

func postChat(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

const validBody = `{"messages":[{"role":"user","content":"Vad behöver en kanin?"}],"is_global_mode":true}`

func TestChatRejectionReturnsJSONWithoutStreaming(t *testing.T) {
	svc := new(MockChatService)
	svc.On("Admit", mock.Anything, mock.Anything).Return(&dtos.ChatRejection{
		Error:   constants.MsgAccountBlocked,
		Blocked: true,
	}, uint(403), nil).Once()

	recorder := postChat(newChatRouter(svc), validBody)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, recorder.Body.String(), constants.MsgAccountBlocked)

	// The upstream is never opened for a rejected request.
	svc.AssertNotCalled(t, "OpenStream", mock.Anything, mock.Anything)
}

func TestChatInvalidBodyRejected(t *testing.T) {
	svc := new(MockChatService)

	recorder := postChat(newChatRouter(svc), `{"messages":[]}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	svc.AssertNotCalled(t, "Admit", mock.Anything, mock.Anything)
}

func TestChatStreamsFramesAndDone(t *testing.T) {
	stream := &scriptedStream{fragments: []string{"Kaniner ", "", "behöver hö."}}

	svc := new(MockChatService)
	svc.On("Admit", mock.Anything, mock.Anything).Return(nil, uint(200), nil).Once()
	svc.On("OpenStream", mock.Anything, mock.Anything).Return(stream, uint(200), nil).Once()

	recorder := postChat(newChatRouter(svc), validBody)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/event-stream")
	assert.True(t, stream.closed)

	body := recorder.Body.String()
	assert.True(t, strings.HasSuffix(body, "data: [DONE]\n\n"))

	// The emitted frames reassemble into the full message.
	parser := chatstream.NewParser()
	parser.Feed([]byte(body))
	assert.Equal(t, "Kaniner behöver hö.", parser.Content())
	assert.True(t, parser.Done())
}

func TestChatUpstreamFailureMapsToUserMessage(t *testing.T) {
	svc := new(MockChatService)
	svc.On("Admit", mock.Anything, mock.Anything).Return(nil, uint(200), nil).Once()
	svc.On("OpenStream", mock.Anything, mock.Anything).Return(nil, uint(429), llm.ErrRateLimited).Once()

	recorder := postChat(newChatRouter(svc), validBody)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constants.MsgRateLimited)
}

func TestChatPinsUserIDFromToken(t *testing.T) {
	svc := new(MockChatService)
	svc.On("Admit", mock.Anything, mock.MatchedBy(func(req *dtos.ChatRequest) bool {
		return req.UserID != nil && *req.UserID == "user-from-token"
	})).Return(&dtos.ChatRejection{Error: constants.MsgPolicyRejection, Flagged: true}, uint(400), nil).Once()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/chat", func(c *gin.Context) {
		c.Set("userID", "user-from-token")
	}, handlers.NewChatHandler(svc).Chat)

	// The body claims a different user id; the token wins.
	body := `{"messages":[{"role":"user","content":"hej"}],"user_id":"spoofed"}`
	recorder := postChat(router, body)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	svc.AssertExpectations(t)
}
