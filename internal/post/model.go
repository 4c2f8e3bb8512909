package post

import "github.com/google/uuid"

type Post struct {
	ID       uuid.UUID
	Title    string
	Content  string
	AuthorID uuid.UUID
}

type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID uuid.UUID
}

type UpdatePostInput struct {
	Title   *string
	Content *string
}
