package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"notesapi/internal/model"
	"notesapi/internal/pkg/dbutil"
	appErr "notesapi/internal/pkg/errors"
)

type NoteRepo struct {
	db *sql.DB
}

func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

func (r *NoteRepo) Create(ctx context.Context, note *model.Note) error {
	data := map[string]interface{}{
		"id":      note.ID,
		"user_id": note.UserID,
		"title":   note.Title,
		"content": note.Content,
		"ctime":   note.Ctime,
		"mtime":   note.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("notes", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// List returns the user's notes newest-first. A non-empty tagID narrows
// the result to notes carrying that exact tag.
func (r *NoteRepo) List(ctx context.Context, userID, tagID string) ([]model.Note, error) {
	if tagID != "" {
		sqlStr := "SELECT n.id, n.user_id, n.title, n.content, n.ctime, n.mtime FROM notes n " +
			"JOIN note_tags nt ON nt.note_id = n.id AND nt.user_id = n.user_id " +
			"WHERE n.user_id = ? AND nt.tag_id = ? ORDER BY n.ctime DESC, n.id DESC"
		finalStr, args := dbutil.Finalize(sqlStr, []interface{}{userID, tagID})
		return r.scanNotes(ctx, finalStr, args)
	}
	where := map[string]interface{}{"user_id": userID, "_orderby": "ctime desc, id desc"}
	sqlStr, args, err := builder.BuildSelect("notes", where, []string{"id", "user_id", "title", "content", "ctime", "mtime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	return r.scanNotes(ctx, sqlStr, args)
}

func (r *NoteRepo) scanNotes(ctx context.Context, sqlStr string, args []interface{}) ([]model.Note, error) {
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	notes := make([]model.Note, 0)
	for rows.Next() {
		var note model.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.Ctime, &note.Mtime); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (r *NoteRepo) GetByID(ctx context.Context, userID, noteID string) (*model.Note, error) {
	where := map[string]interface{}{"id": noteID, "user_id": userID}
	sqlStr, args, err := builder.BuildSelect("notes", where, []string{"id", "user_id", "title", "content", "ctime", "mtime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var note model.Note
	if err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.Ctime, &note.Mtime); err != nil {
		return nil, err
	}
	return &note, nil
}

// Update never touches ctime, the creation timestamp is immutable.
func (r *NoteRepo) Update(ctx context.Context, note *model.Note) error {
	where := map[string]interface{}{
		"id":      note.ID,
		"user_id": note.UserID,
	}
	update := map[string]interface{}{
		"title":   note.Title,
		"content": note.Content,
		"mtime":   note.Mtime,
	}
	sqlStr, args, err := builder.BuildUpdate("notes", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *NoteRepo) Delete(ctx context.Context, userID, noteID string) error {
	where := map[string]interface{}{"id": noteID, "user_id": userID}
	sqlStr, args, err := builder.BuildDelete("notes", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
