package service

import (
	"context"

	"notesapi/internal/model"
	"notesapi/internal/pkg/timeutil"
	"notesapi/internal/repo"
)

type TagService struct {
	tags     *repo.TagRepo
	noteTags *repo.NoteTagRepo
}

func NewTagService(tags *repo.TagRepo, noteTags *repo.NoteTagRepo) *TagService {
	return &TagService{tags: tags, noteTags: noteTags}
}

// Create fails with ErrConflict when the user already has a tag with
// this name. Same name under a different user is fine.
func (s *TagService) Create(ctx context.Context, userID, name string) (*model.Tag, error) {
	tag := &model.Tag{
		ID:     newID(),
		UserID: userID,
		Name:   name,
		Ctime:  timeutil.NowUnixMilli(),
	}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) List(ctx context.Context, userID string) ([]model.Tag, error) {
	return s.tags.List(ctx, userID)
}

func (s *TagService) Delete(ctx context.Context, userID, tagID string) error {
	if err := s.tags.Delete(ctx, userID, tagID); err != nil {
		return err
	}
	// The FK cascade covers this too, deleting explicitly keeps the
	// note_tags table consistent even on databases restored without
	// constraints.
	return s.noteTags.DeleteByTag(ctx, userID, tagID)
}
