package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"notesapi/internal/model"
	"notesapi/internal/pkg/dbutil"
)

type NoteTagRepo struct {
	db *sql.DB
}

func NewNoteTagRepo(db *sql.DB) *NoteTagRepo {
	return &NoteTagRepo{db: db}
}

func (r *NoteTagRepo) Add(ctx context.Context, noteTag *model.NoteTag) error {
	data := map[string]interface{}{
		"user_id": noteTag.UserID,
		"note_id": noteTag.NoteID,
		"tag_id":  noteTag.TagID,
	}
	sqlStr, args, err := builder.BuildInsert("note_tags", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *NoteTagRepo) DeleteByNote(ctx context.Context, userID, noteID string) error {
	where := map[string]interface{}{"user_id": userID, "note_id": noteID}
	sqlStr, args, err := builder.BuildDelete("note_tags", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *NoteTagRepo) DeleteByTag(ctx context.Context, userID, tagID string) error {
	where := map[string]interface{}{"user_id": userID, "tag_id": tagID}
	sqlStr, args, err := builder.BuildDelete("note_tags", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *NoteTagRepo) ListTagIDs(ctx context.Context, userID, noteID string) ([]string, error) {
	where := map[string]interface{}{"user_id": userID, "note_id": noteID}
	sqlStr, args, err := builder.BuildSelect("note_tags", where, []string{"tag_id"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	tags := make([]string, 0)
	for rows.Next() {
		var tagID string
		if err := rows.Scan(&tagID); err != nil {
			return nil, err
		}
		tags = append(tags, tagID)
	}
	return tags, rows.Err()
}

func (r *NoteTagRepo) ListByUser(ctx context.Context, userID string) ([]model.NoteTag, error) {
	where := map[string]interface{}{"user_id": userID}
	sqlStr, args, err := builder.BuildSelect("note_tags", where, []string{"user_id", "note_id", "tag_id"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	items := make([]model.NoteTag, 0)
	for rows.Next() {
		var item model.NoteTag
		if err := rows.Scan(&item.UserID, &item.NoteID, &item.TagID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *NoteTagRepo) ListTagIDsByNoteIDs(ctx context.Context, userID string, noteIDs []string) (map[string][]string, error) {
	if len(noteIDs) == 0 {
		return map[string][]string{}, nil
	}
	where := map[string]interface{}{
		"user_id": userID,
		"note_id": noteIDs,
	}
	sqlStr, args, err := builder.BuildSelect("note_tags", where, []string{"note_id", "tag_id"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	result := make(map[string][]string)
	for rows.Next() {
		var noteID string
		var tagID string
		if err := rows.Scan(&noteID, &tagID); err != nil {
			return nil, err
		}
		result[noteID] = append(result[noteID], tagID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
