package debate_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/debate-friend/internal/debate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(provider debate.Provider) http.Handler {
	c := debate.NewDebateContainer(provider)
	return debate.Routes(c.Handler)
}

func doRequest(t *testing.T, h http.Handler, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body debate.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHandlerDispatch(t *testing.T) {
	t.Run("GenerateDebateEndToEnd", func(t *testing.T) {
		provider := &stubProvider{result: sampleDebate}
		h := newTestServer(provider)

		rec := doRequest(t, h, http.MethodPost, `{"action":"generate_debate","topic":"학교에서 스마트폰 사용을 허용해야 한다"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		var body debate.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, sampleDebate, body.Result)
		require.Equal(t, 1, provider.calls())
		assert.Contains(t, provider.prompts[0], "학교에서 스마트폰 사용을 허용해야 한다")
	})

	t.Run("MissingTopic", func(t *testing.T) {
		for _, action := range []string{"generate_arguments", "generate_debate"} {
			provider := &stubProvider{result: "unused"}
			rec := doRequest(t, newTestServer(provider), http.MethodPost, `{"action":"`+action+`"}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code, action)
			assert.Equal(t, "Topic is required", decodeError(t, rec), action)
			assert.Zero(t, provider.calls(), action)
		}
	})

	t.Run("FeedbackMissingFields", func(t *testing.T) {
		for _, body := range []string{
			`{"action":"provide_feedback","argument":"근거"}`,
			`{"action":"provide_feedback","topic":"숙제"}`,
			`{"action":"provide_feedback","topic":"숙제","argument":""}`,
		} {
			provider := &stubProvider{result: "unused"}
			rec := doRequest(t, newTestServer(provider), http.MethodPost, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, "Topic and argument are required", decodeError(t, rec), body)
			assert.Zero(t, provider.calls(), body)
		}
	})

	t.Run("MissingAction", func(t *testing.T) {
		rec := doRequest(t, newTestServer(&stubProvider{}), http.MethodPost, `{"topic":"숙제"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Action is required", decodeError(t, rec))
	})

	t.Run("InvalidAction", func(t *testing.T) {
		provider := &stubProvider{}
		rec := doRequest(t, newTestServer(provider), http.MethodPost, `{"action":"frobnicate","topic":"숙제"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid action", decodeError(t, rec))
		assert.Zero(t, provider.calls())
	})

	t.Run("RecommendWithCategory", func(t *testing.T) {
		provider := &stubProvider{result: "1. 주제"}
		rec := doRequest(t, newTestServer(provider), http.MethodPost, `{"action":"recommend_topics","category":"환경"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, provider.calls())
		assert.Contains(t, provider.prompts[0], "추천한다: 환경")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		provider := &stubProvider{}
		rec := doRequest(t, newTestServer(provider), http.MethodPost, `{"action":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, rec))
		assert.Zero(t, provider.calls())
	})

	t.Run("EmptyBody", func(t *testing.T) {
		for _, body := range []string{"", "  \n"} {
			provider := &stubProvider{}
			rec := doRequest(t, newTestServer(provider), http.MethodPost, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Action is required", decodeError(t, rec))
			assert.Zero(t, provider.calls())
		}
	})

	t.Run("TruncatedBody", func(t *testing.T) {
		rec := doRequest(t, newTestServer(&stubProvider{}), http.MethodPost, `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, rec))
	})

	t.Run("NonStringAction", func(t *testing.T) {
		provider := &stubProvider{}
		rec := doRequest(t, newTestServer(provider), http.MethodPost, `{"action":5,"topic":"숙제"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, rec))
		assert.Zero(t, provider.calls())
	})

	t.Run("OversizedBody", func(t *testing.T) {
		provider := &stubProvider{result: "unused"}
		topic := strings.Repeat("가", debate.MaxRequestBytes)
		rec := doRequest(t, newTestServer(provider), http.MethodPost, `{"action":"generate_debate","topic":"`+topic+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, rec))
		assert.Zero(t, provider.calls())
	})

	t.Run("UpstreamFailureIsGeneric", func(t *testing.T) {
		provider := &stubProvider{err: errors.New("api key invalid: secret-detail")}
		rec := doRequest(t, newTestServer(provider), http.MethodPost, `{"action":"generate_debate","topic":"숙제"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeError(t, rec))
		assert.NotContains(t, rec.Body.String(), "secret-detail")
	})

	t.Run("WrongMethod", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			provider := &stubProvider{}
			rec := doRequest(t, newTestServer(provider), method, "")

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
			assert.Equal(t, "Method not allowed", decodeError(t, rec), method)
			assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
			assert.Zero(t, provider.calls(), method)
		}
	})
}
