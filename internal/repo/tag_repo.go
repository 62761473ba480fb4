package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"notesapi/internal/model"
	"notesapi/internal/pkg/dbutil"
	appErr "notesapi/internal/pkg/errors"
)

type TagRepo struct {
	db *sql.DB
}

func NewTagRepo(db *sql.DB) *TagRepo {
	return &TagRepo{db: db}
}

func (r *TagRepo) Create(ctx context.Context, tag *model.Tag) error {
	data := map[string]interface{}{
		"id":      tag.ID,
		"user_id": tag.UserID,
		"name":    tag.Name,
		"ctime":   tag.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("tags", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *TagRepo) List(ctx context.Context, userID string) ([]model.Tag, error) {
	where := map[string]interface{}{"user_id": userID, "_orderby": "name asc"}
	return r.selectTags(ctx, where)
}

func (r *TagRepo) GetByID(ctx context.Context, userID, tagID string) (*model.Tag, error) {
	where := map[string]interface{}{"user_id": userID, "id": tagID}
	tags, err := r.selectTags(ctx, where)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, appErr.ErrNotFound
	}
	return &tags[0], nil
}

func (r *TagRepo) ListByIDs(ctx context.Context, userID string, ids []string) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	where := map[string]interface{}{"user_id": userID, "id": ids, "_orderby": "name asc"}
	return r.selectTags(ctx, where)
}

func (r *TagRepo) selectTags(ctx context.Context, where map[string]interface{}) ([]model.Tag, error) {
	sqlStr, args, err := builder.BuildSelect("tags", where, []string{"id", "user_id", "name", "ctime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	tags := make([]model.Tag, 0)
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.Ctime); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *TagRepo) Delete(ctx context.Context, userID, tagID string) error {
	where := map[string]interface{}{
		"id":      tagID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildDelete("tags", where)
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
