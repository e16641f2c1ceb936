package models

// News is an announcement published by the admin.
type News struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// NewsInput is used for publishing announcements.
type NewsInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (n *NewsInput) Validate() string {
	if n.Title == "" {
		return "title is required"
	}
	if n.Content == "" {
		return "content is required"
	}
	return ""
}
