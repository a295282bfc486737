package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/community-blog-api/internal/application"
	"github.com/oksasatya/community-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/community-blog-api/internal/domain/repository"
	"github.com/oksasatya/community-blog-api/internal/interface/middleware"
	"github.com/oksasatya/community-blog-api/pkg/helpers"
	"github.com/oksasatya/community-blog-api/pkg/response"
	"github.com/oksasatya/community-blog-api/pkg/validation"
)

// memPostRepo backs the handler tests without a database.
type memPostRepo struct {
	posts  map[int64]*entity.Post
	nextID int64
	clock  time.Time
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[int64]*entity.Post), clock: time.Unix(3000, 0)}
}

func (m *memPostRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memPostRepo) Create(_ context.Context, p *entity.Post) error {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = m.tick()
	p.UpdatedAt = p.CreatedAt
	p.Author = entity.PostAuthor{ID: p.AuthorID, Username: "user"}
	p.Comments = []entity.Comment{}
	cp := *p
	m.posts[p.ID] = &cp
	return nil
}

func (m *memPostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPostRepo) GetAuthorID(_ context.Context, id int64) (int64, error) {
	p, ok := m.posts[id]
	if !ok {
		return 0, repo.ErrNotFound
	}
	return p.AuthorID, nil
}

func (m *memPostRepo) List(_ context.Context, flt repo.PostFilter) ([]entity.Post, int64, error) {
	all := make([]entity.Post, 0)
	for _, p := range m.posts {
		if flt.Category != nil && p.Category != *flt.Category {
			continue
		}
		if flt.AuthorID != nil && p.AuthorID != *flt.AuthorID {
			continue
		}
		if flt.SearchTerm != "" {
			term := strings.ToLower(flt.SearchTerm)
			if !strings.Contains(strings.ToLower(p.Title), term) &&
				!strings.Contains(strings.ToLower(p.Content), term) {
				continue
			}
		}
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if flt.Skip >= len(all) {
		return []entity.Post{}, total, nil
	}
	all = all[flt.Skip:]
	if flt.Take > 0 && flt.Take < len(all) {
		all = all[:flt.Take]
	}
	return all, total, nil
}

func (m *memPostRepo) ListByCategory(ctx context.Context, c entity.Category) ([]entity.Post, error) {
	posts, _, err := m.List(ctx, repo.PostFilter{Category: &c, Take: len(m.posts) + 1})
	return posts, err
}

func (m *memPostRepo) Update(_ context.Context, id int64, patch repo.PostPatch) error {
	p, ok := m.posts[id]
	if !ok {
		return repo.ErrNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	p.UpdatedAt = m.tick()
	return nil
}

func (m *memPostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *memPostRepo) CategoryStats(_ context.Context) ([]entity.CategoryStat, error) {
	counts := make(map[entity.Category]int)
	for _, p := range m.posts {
		counts[p.Category]++
	}
	stats := make([]entity.CategoryStat, 0, len(counts))
	for c, n := range counts {
		stats = append(stats, entity.CategoryStat{Category: c, PostCount: n})
	}
	return stats, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func postTestRouter(t *testing.T) (*gin.Engine, *helpers.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	tm := helpers.NewTokenManager("test-secret", time.Hour)
	h := NewPostHandler(app.NewPostService(newMemPostRepo(), quietLogger()), quietLogger())

	r := gin.New()
	r.GET("/posts", h.FindAll)
	r.GET("/posts/:id", h.FindOne)
	auth := r.Group("/", middleware.BearerAuth(tm))
	auth.POST("/posts", h.Create)
	auth.PUT("/posts/:id", h.Update)
	auth.DELETE("/posts/:id", h.Delete)
	return r, tm
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, response.APIResponse) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (body: %s)", err, w.Body.String())
	}
	return w, env
}

func TestPostOwnershipOverHTTP(t *testing.T) {
	r, tm := postTestRouter(t)

	tokenA, _, err := tm.Generate(1, "a@example.com")
	if err != nil {
		t.Fatalf("token a: %v", err)
	}
	tokenB, _, err := tm.Generate(2, "b@example.com")
	if err != nil {
		t.Fatalf("token b: %v", err)
	}

	w, env := doJSON(t, r, http.MethodPost, "/posts", tokenA, gin.H{
		"title":    "Original title",
		"content":  "Original content, long enough to bind.",
		"category": "FOOD",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body: %s)", w.Code, w.Body.String())
	}
	created, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("create data = %T", env.Data)
	}
	if id := int64(created["id"].(float64)); id != 1 {
		t.Fatalf("created id = %d, want 1", id)
	}

	// Another user's update is forbidden and leaves the post untouched.
	w, _ = doJSON(t, r, http.MethodPut, "/posts/1", tokenB, gin.H{"title": "Hijacked title"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign update status = %d, want 403", w.Code)
	}

	w, env = doJSON(t, r, http.MethodGet, "/posts/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if got := env.Data.(map[string]any)["title"]; got != "Original title" {
		t.Errorf("title after forbidden update = %q", got)
	}

	// The owner's partial update changes only the provided field.
	w, env = doJSON(t, r, http.MethodPut, "/posts/1", tokenA, gin.H{"title": "Updated title"})
	if w.Code != http.StatusOK {
		t.Fatalf("owner update status = %d (body: %s)", w.Code, w.Body.String())
	}
	updated := env.Data.(map[string]any)
	if updated["title"] != "Updated title" {
		t.Errorf("title = %q", updated["title"])
	}
	if updated["content"] != "Original content, long enough to bind." {
		t.Errorf("content changed by partial update: %q", updated["content"])
	}

	// Foreign delete is forbidden; owner delete succeeds and the post is gone.
	w, _ = doJSON(t, r, http.MethodDelete, "/posts/1", tokenB, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign delete status = %d, want 403", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodDelete, "/posts/1", tokenA, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete status = %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodGet, "/posts/1", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", w.Code)
	}
}

func TestPostCreateRejectsBadPayload(t *testing.T) {
	r, tm := postTestRouter(t)
	token, _, err := tm.Generate(1, "a@example.com")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing title", gin.H{"content": "Long enough content here.", "category": "FOOD"}},
		{"short content", gin.H{"title": "Title", "content": "short", "category": "FOOD"}},
		{"unknown category", gin.H{"title": "Title", "content": "Long enough content here.", "category": "SPORTS"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, env := doJSON(t, r, http.MethodPost, "/posts", token, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if env.Success {
				t.Error("envelope reports success on a rejected payload")
			}
		})
	}
}

func TestPostMutationsRequireAuth(t *testing.T) {
	r, _ := postTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/posts", "", gin.H{
		"title":    "Title",
		"content":  "Long enough content here.",
		"category": "FOOD",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated create status = %d, want 401", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/posts", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("public list status = %d, want 200", w.Code)
	}
}

func TestFindAllQueryValidation(t *testing.T) {
	r, _ := postTestRouter(t)

	for _, query := range []string{
		"category=SPORTS",
		"authorId=abc",
		"skip=abc",
		"take=abc",
	} {
		w, _ := doJSON(t, r, http.MethodGet, "/posts?"+query, "", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("?%s status = %d, want 400", query, w.Code)
		}
	}

	w, _ := doJSON(t, r, http.MethodGet, "/posts?skip=0&take=5", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("numeric skip/take status = %d, want 200", w.Code)
	}
}

// An explicitly empty string is not an omitted field: it must fail the
// same length/enum rules as a create.
func TestUpdateRejectsEmptyFields(t *testing.T) {
	r, tm := postTestRouter(t)
	token, _, err := tm.Generate(1, "a@example.com")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	w, _ := doJSON(t, r, http.MethodPost, "/posts", token, gin.H{
		"title":    "Original title",
		"content":  "Original content, long enough to bind.",
		"category": "FOOD",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	for _, body := range []gin.H{
		{"title": ""},
		{"title": "ab"},
		{"content": ""},
		{"content": "too short"},
		{"category": ""},
		{"category": "SPORTS"},
	} {
		w, _ := doJSON(t, r, http.MethodPut, "/posts/1", token, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("update %v status = %d, want 400", body, w.Code)
		}
	}

	w, env := doJSON(t, r, http.MethodGet, "/posts/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	got := env.Data.(map[string]any)
	if got["title"] != "Original title" || got["category"] != "FOOD" {
		t.Errorf("post mutated by rejected updates: %+v", got)
	}
}
