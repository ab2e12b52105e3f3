package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochilabs/mochi/internal/imagegen"
	"github.com/mochilabs/mochi/internal/llm"
	"github.com/mochilabs/mochi/internal/quizgen"
	"github.com/mochilabs/mochi/internal/store"
)

const generateReply = `[
  {
    "gameTitle": "Farm Animals",
    "questionText": "Can you find the picture with the cow?",
    "options": [
      { "label": "cow", "imageGenerationPrompt": "a friendly cow" },
      { "label": "duck", "imageGenerationPrompt": "a yellow duck" },
      { "label": "pig", "imageGenerationPrompt": "a pink pig" }
    ],
    "correctAnswer": "cow",
    "explanation": "That picture has the cow."
  }
]`

func newTestRouter(t *testing.T, provider llm.Provider, source imagegen.Source) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cfg := quizgen.DefaultConfig()
	srv := New(Config{
		Generator: quizgen.NewGenerator(provider, nil, cfg),
		Enricher:  quizgen.NewEnricher(source, nil, cfg.Concurrency),
		Feedback:  quizgen.NewFeedbackGenerator(provider, nil),
		Store:     st,
	})
	return NewRouter(srv, []string{"http://localhost:5173"}), st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthcheck(t *testing.T) {
	router, _ := newTestRouter(t, nil, nil)
	w := doJSON(t, router, http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateEndpoint(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(generateReply)})
	source := imagegen.NewMockSource()
	source.SetError("duck", imagegen.ErrBlocked)

	router, _ := newTestRouter(t, provider, source)
	w := doJSON(t, router, http.MethodPost, "/api/generate", gin.H{
		"gameTopic":   "Farm Animals",
		"subject":     "Animals",
		"description": "animals on the farm",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var questions []quizgen.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.Len(t, questions, 1)
	require.Len(t, questions[0].Options, 3)
	assert.NotNil(t, questions[0].Options[0].Image)
	assert.Nil(t, questions[0].Options[1].Image)
	assert.NotNil(t, questions[0].Options[2].Image)
}

func TestGenerateEndpoint_NoCredential(t *testing.T) {
	router, _ := newTestRouter(t, nil, nil)
	w := doJSON(t, router, http.MethodPost, "/api/generate", gin.H{"gameTopic": "Colors"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestFeedbackEndpoint_Fallback(t *testing.T) {
	router, _ := newTestRouter(t, nil, nil)
	w := doJSON(t, router, http.MethodPost, "/api/feedback", gin.H{
		"user_answer":    "Banana",
		"correct_answer": "Banana",
		"target_item":    "fruit",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var fb quizgen.Feedback
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fb))
	assert.True(t, fb.IsCorrect)
	assert.NotEmpty(t, fb.Message)
	assert.NotEmpty(t, fb.Encouragement)
}

func TestFeedbackEndpoint_MissingFields(t *testing.T) {
	router, _ := newTestRouter(t, nil, nil)
	w := doJSON(t, router, http.MethodPost, "/api/feedback", gin.H{"user_answer": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryAndQuestionFlow(t *testing.T) {
	router, _ := newTestRouter(t, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/categories", gin.H{
		"name":        "Ocean Animals",
		"description": "Creatures of the sea",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var cat store.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	require.NotZero(t, cat.ID)

	w = doJSON(t, router, http.MethodPost, "/api/categories/1/questions", gin.H{
		"target_item":    "Octopus",
		"correct_answer": "Octopus",
		"options": []gin.H{
			{"label": "Octopus", "image_url": "data:image/png;base64,AAAA"},
			{"label": "Crab"},
			{"label": "Starfish"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/categories/1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var questions []store.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.Len(t, questions, 1)
	assert.Len(t, questions[0].Options, 3)

	w = doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSaveActivityEndpoint(t *testing.T) {
	router, st := newTestRouter(t, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/activities", gin.H{
		"category_name": "Counting Fun",
		"description":   "Count with Mochi",
		"questions": []gin.H{
			{
				"target_item":    "2 apples",
				"correct_answer": "2 apples",
				"options": []gin.H{
					{"label": "2 apples", "image_url": "data:image/png;base64,AAAA"},
					{"label": "1 apple"},
					{"label": "3 apples"},
				},
			},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	cats, err := st.CategoryRepo().List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)

	questions, err := st.QuestionRepo().ListByCategory(context.Background(), cats[0].ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Len(t, questions[0].Options, 3)
}

func TestProgressEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/categories", gin.H{"name": "Shapes"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/progress", gin.H{
		"category_id":     1,
		"student_session": "sess-abc",
		"score":           3,
		"total_questions": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/progress/sess-abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []store.GameProgress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].Score)
	assert.Equal(t, "Shapes", records[0].CategoryName)

	w = doJSON(t, router, http.MethodGet, "/api/progress/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/activities/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
