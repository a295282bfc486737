package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/oksasatya/community-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/community-blog-api/internal/domain/repository"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return repo.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeSessionRepo struct {
	sessions map[int64]*entity.Session
	nextID   int64
	failNext error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[int64]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.Session) error {
	f.nextID++
	s.ID = f.nextID
	s.Active = true
	s.CreatedAt = time.Now()
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) DeleteActiveByUser(_ context.Context, userID int64) (int64, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return 0, err
	}
	var n int64
	for id, s := range f.sessions {
		if s.UserID == userID && s.Active {
			delete(f.sessions, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeSessionRepo) activeCount(userID int64) int {
	n := 0
	for _, s := range f.sessions {
		if s.UserID == userID && s.Active {
			n++
		}
	}
	return n
}

type fakePostRepo struct {
	posts  map[int64]*entity.Post
	nextID int64
	clock  time.Time
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]*entity.Post), clock: time.Unix(1000, 0)}
}

func (f *fakePostRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = f.tick()
	p.UpdatedAt = p.CreatedAt
	p.Author = entity.PostAuthor{ID: p.AuthorID, Username: "user"}
	p.Comments = []entity.Comment{}
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) GetAuthorID(_ context.Context, id int64) (int64, error) {
	p, ok := f.posts[id]
	if !ok {
		return 0, repo.ErrNotFound
	}
	return p.AuthorID, nil
}

func (f *fakePostRepo) matches(p *entity.Post, flt repo.PostFilter) bool {
	if flt.Category != nil && p.Category != *flt.Category {
		return false
	}
	if flt.AuthorID != nil && p.AuthorID != *flt.AuthorID {
		return false
	}
	if flt.SearchTerm != "" {
		term := strings.ToLower(flt.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Content), term) {
			return false
		}
	}
	return true
}

func (f *fakePostRepo) List(_ context.Context, flt repo.PostFilter) ([]entity.Post, int64, error) {
	all := make([]entity.Post, 0)
	for _, p := range f.posts {
		if f.matches(p, flt) {
			all = append(all, *p)
		}
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

func (f *fakePostRepo) ListByCategory(ctx context.Context, c entity.Category) ([]entity.Post, error) {
	posts, _, err := f.List(ctx, repo.PostFilter{Category: &c, Take: len(f.posts) + 1})
	return posts, err
}

func (f *fakePostRepo) Update(_ context.Context, id int64, patch repo.PostPatch) error {
	p, ok := f.posts[id]
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
	p.UpdatedAt = f.tick()
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) CategoryStats(_ context.Context) ([]entity.CategoryStat, error) {
	counts := make(map[entity.Category]int)
	for _, p := range f.posts {
		counts[p.Category]++
	}
	stats := make([]entity.CategoryStat, 0, len(counts))
	for c, n := range counts {
		stats = append(stats, entity.CategoryStat{Category: c, PostCount: n})
	}
	return stats, nil
}

type fakeCommentRepo struct {
	comments map[int64]*entity.Comment
	nextID   int64
	clock    time.Time
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*entity.Comment), clock: time.Unix(2000, 0)}
}

func (f *fakeCommentRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = f.tick()
	c.UpdatedAt = c.CreatedAt
	c.Author = entity.CommentAuthor{ID: c.AuthorID, Name: "commenter"}
	cp := *c
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id int64) (*entity.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentRepo) List(_ context.Context, flt repo.CommentFilter) ([]entity.Comment, error) {
	out := make([]entity.Comment, 0)
	for _, c := range f.comments {
		if flt.PostID != nil && c.PostID != *flt.PostID {
			continue
		}
		if flt.AuthorID != nil && c.AuthorID != *flt.AuthorID {
			continue
		}
		out = append(out, *c)
	}
	if flt.NewestFirst {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}
	if flt.Skip >= len(out) {
		return []entity.Comment{}, nil
	}
	if flt.Skip > 0 {
		out = out[flt.Skip:]
	}
	if flt.Take > 0 && flt.Take < len(out) {
		out = out[:flt.Take]
	}
	return out, nil
}

func (f *fakeCommentRepo) ListByPost(ctx context.Context, postID int64) ([]entity.Comment, error) {
	pid := postID
	return f.List(ctx, repo.CommentFilter{PostID: &pid, NewestFirst: true})
}

func (f *fakeCommentRepo) UpdateContent(_ context.Context, id int64, content string) (*entity.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	c.Content = content
	c.UpdatedAt = f.tick()
	cp := *c
	return &cp, nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id int64) (*entity.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	delete(f.comments, id)
	cp := *c
	return &cp, nil
}
