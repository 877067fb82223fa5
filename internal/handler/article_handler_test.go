package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"briefdesk/internal/model"
	"briefdesk/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newArticleRouter(t *testing.T, headlines ...string) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(store.NewMemoryStorage())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	for _, headline := range headlines {
		if _, err := st.Add(model.Article{Headline: headline}); err != nil {
			t.Fatalf("add %q: %v", headline, err)
		}
	}

	r := gin.New()
	h := NewArticleHandler(st)
	r.GET("/api/articles", h.List)
	r.POST("/api/articles", h.Create)
	r.PUT("/api/articles/:id", h.Update)
	r.DELETE("/api/articles/:id", h.Delete)
	r.DELETE("/api/articles", h.DeleteAll)
	r.POST("/api/articles/:id/move", h.Move)
	r.GET("/api/compose", h.Compose)
	return r, st
}

func postPut(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListArticles(t *testing.T) {
	r, _ := newArticleRouter(t, "a", "b")

	w := doRequest(r, "GET", "/api/articles")

	assert.Equal(t, http.StatusOK, w.Code)

	var got []model.Article
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, "a", got[0].Headline)
	assert.Equal(t, "b", got[1].Headline)
}

func TestCreateArticle(t *testing.T) {
	r, st := newArticleRouter(t)

	w := postJSON(r, "/api/articles", model.Article{Headline: "Manual", Summary: "Entry"})

	assert.Equal(t, http.StatusOK, w.Code)

	var got model.Article
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.NotEqual(t, "", got.ID)
	assert.Equal(t, []string{}, got.AvailableImages)
	assert.Equal(t, 1, len(st.List()))
}

func TestUpdateArticle(t *testing.T) {
	r, st := newArticleRouter(t, "before")
	id := st.List()[0].ID

	w := postPut(r, "/api/articles/"+id, model.Article{Headline: "after"})

	assert.Equal(t, http.StatusOK, w.Code)
	got, _ := st.Get(id)
	assert.Equal(t, "after", got.Headline)
}

func TestUpdateArticleNotFound(t *testing.T) {
	r, _ := newArticleRouter(t)

	w := postPut(r, "/api/articles/missing", model.Article{Headline: "x"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteArticle(t *testing.T) {
	r, st := newArticleRouter(t, "a", "b", "c")
	id := st.List()[1].ID

	w := doRequest(r, "DELETE", "/api/articles/"+id)

	assert.Equal(t, http.StatusNoContent, w.Code)
	remaining := st.List()
	assert.Equal(t, 2, len(remaining))
	assert.Equal(t, "a", remaining[0].Headline)
	assert.Equal(t, "c", remaining[1].Headline)
}

func TestDeleteArticleNotFound(t *testing.T) {
	r, _ := newArticleRouter(t, "a")

	w := doRequest(r, "DELETE", "/api/articles/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAllArticles(t *testing.T) {
	r, st := newArticleRouter(t, "a", "b")

	w := doRequest(r, "DELETE", "/api/articles")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, len(st.List()))
}

func TestMoveArticleUp(t *testing.T) {
	r, st := newArticleRouter(t, "a", "b", "c")
	id := st.List()[1].ID

	w := postJSON(r, "/api/articles/"+id+"/move", MoveRequest{Direction: "up"})

	assert.Equal(t, http.StatusOK, w.Code)
	got := st.List()
	assert.Equal(t, "b", got[0].Headline)
	assert.Equal(t, "a", got[1].Headline)
	assert.Equal(t, "c", got[2].Headline)
}

func TestMoveFirstUpNoOp(t *testing.T) {
	r, st := newArticleRouter(t, "a", "b")
	id := st.List()[0].ID

	w := postJSON(r, "/api/articles/"+id+"/move", MoveRequest{Direction: "up"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a", st.List()[0].Headline)
}

func TestMoveInvalidDirection(t *testing.T) {
	r, st := newArticleRouter(t, "a")
	id := st.List()[0].ID

	w := postJSON(r, "/api/articles/"+id+"/move", MoveRequest{Direction: "sideways"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompose(t *testing.T) {
	r, _ := newArticleRouter(t, "Only Story")

	w := doRequest(r, "GET", "/api/compose")

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, strings.Contains(res["html"], "Only Story"))
	assert.Equal(t, true, strings.Contains(res["text"], "Only Story"))
}
