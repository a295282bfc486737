package entity

import "time"

// CommentAuthor is the author projection joined onto comments.
type CommentAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Comment belongs to a post and an author. Deleting the post cascades
// to its comments at the storage layer.
type Comment struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	PostID    int64         `json:"postId"`
	AuthorID  int64         `json:"authorId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Author    CommentAuthor `json:"author"`
}
