package entity

import "time"

// PostAuthor is the author projection joined onto posts.
type PostAuthor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Post is a community blog entry tagged with one Category.
// Author, Comments and CommentCount are populated by the repository
// depending on the query; only the owning author may mutate a post.
type Post struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Category     Category   `json:"category"`
	AuthorID     int64      `json:"authorId"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	Author       PostAuthor `json:"author"`
	Comments     []Comment  `json:"comments,omitempty"`
	CommentCount int        `json:"commentCount"`
}

// CategoryStat is one row of the posts-per-category aggregation.
type CategoryStat struct {
	Category  Category `json:"category"`
	PostCount int      `json:"postCount"`
}
