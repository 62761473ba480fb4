package model

type Tag struct {
	ID     string `json:"id"`
	UserID string `json:"-"`
	Name   string `json:"name"`
	Ctime  int64  `json:"-"`
}
