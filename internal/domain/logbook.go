package domain

import "time"

// LogbookEntry is a dated shift note, optionally tied to an apartment.
type LogbookEntry struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	AuthorID    int64     `json:"author_id"`
	ApartmentID *int64    `json:"apartment_id,omitempty"`
	Text        string    `json:"text" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostIt is a free-form board note with a comment thread.
type PostIt struct {
	ID        int64           `json:"id"`
	AuthorID  int64           `json:"author_id"`
	Text      string          `json:"text" validate:"required"`
	Comments  []PostItComment `json:"comments"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type PostItComment struct {
	ID        int64     `json:"id"`
	PostItID  int64     `json:"post_it_id"`
	AuthorID  int64     `json:"author_id"`
	Text      string    `json:"text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
