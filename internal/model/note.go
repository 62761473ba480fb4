package model

type Note struct {
	ID      string `json:"id"`
	UserID  string `json:"-"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Ctime   int64  `json:"created_at"`
	Mtime   int64  `json:"-"`
}

type NoteTag struct {
	UserID string `json:"user_id"`
	NoteID string `json:"note_id"`
	TagID  string `json:"tag_id"`
}
