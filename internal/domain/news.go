package domain

import "context"

// News items are editorial content shown on the public site. They are
// read-only in the back office.
type News struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	FullContent string `json:"fullContent"`
	Image       string `json:"image"`
}

type NewsRepository interface {
	GetAll(ctx context.Context) ([]News, error)
	GetById(ctx context.Context, id int64) (News, error)
}
