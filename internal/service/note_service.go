package service

import (
	"context"

	"notesapi/internal/model"
	appErr "notesapi/internal/pkg/errors"
	"notesapi/internal/pkg/timeutil"
	"notesapi/internal/repo"
)

type NoteService struct {
	notes    *repo.NoteRepo
	noteTags *repo.NoteTagRepo
	tags     *repo.TagRepo
}

func NewNoteService(notes *repo.NoteRepo, noteTags *repo.NoteTagRepo, tags *repo.TagRepo) *NoteService {
	return &NoteService{notes: notes, noteTags: noteTags, tags: tags}
}

// NoteView is the wire representation: the note plus its tag ids.
type NoteView struct {
	model.Note
	TagIDs []string `json:"tags"`
}

type NoteCreateInput struct {
	Title   string
	Content string
	TagIDs  []string
}

// NotePatchInput carries only the fields present in the request, nil
// means "leave untouched".
type NotePatchInput struct {
	Title   *string
	Content *string
	TagIDs  *[]string
}

// checkTagOwnership rejects tag ids that do not resolve within the
// user's own tag set. Assigning another user's tag is treated the same
// as an unknown id.
func (s *NoteService) checkTagOwnership(ctx context.Context, userID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	owned, err := s.tags.ListByIDs(ctx, userID, tagIDs)
	if err != nil {
		return err
	}
	ownedSet := make(map[string]struct{}, len(owned))
	for _, tag := range owned {
		ownedSet[tag.ID] = struct{}{}
	}
	for _, id := range tagIDs {
		if _, ok := ownedSet[id]; !ok {
			return appErr.ErrInvalid
		}
	}
	return nil
}

func (s *NoteService) replaceTags(ctx context.Context, userID, noteID string, tagIDs []string) error {
	if err := s.noteTags.DeleteByNote(ctx, userID, noteID); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, ok := seen[tagID]; ok {
			continue
		}
		seen[tagID] = struct{}{}
		err := s.noteTags.Add(ctx, &model.NoteTag{UserID: userID, NoteID: noteID, TagID: tagID})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *NoteService) view(note *model.Note, tagIDs []string) *NoteView {
	if tagIDs == nil {
		tagIDs = []string{}
	}
	return &NoteView{Note: *note, TagIDs: tagIDs}
}

func (s *NoteService) Create(ctx context.Context, userID string, input NoteCreateInput) (*NoteView, error) {
	if err := s.checkTagOwnership(ctx, userID, input.TagIDs); err != nil {
		return nil, err
	}
	now := timeutil.NowUnixMilli()
	note := &model.Note{
		ID:      newID(),
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
		Ctime:   now,
		Mtime:   now,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	if err := s.replaceTags(ctx, userID, note.ID, input.TagIDs); err != nil {
		return nil, err
	}
	return s.view(note, input.TagIDs), nil
}

func (s *NoteService) List(ctx context.Context, userID, tagID string) ([]NoteView, error) {
	notes, err := s.notes.List(ctx, userID, tagID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(notes))
	for _, note := range notes {
		ids = append(ids, note.ID)
	}
	tagsByNote, err := s.noteTags.ListTagIDsByNoteIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	views := make([]NoteView, 0, len(notes))
	for i := range notes {
		views = append(views, *s.view(&notes[i], tagsByNote[notes[i].ID]))
	}
	return views, nil
}

func (s *NoteService) Get(ctx context.Context, userID, noteID string) (*NoteView, error) {
	note, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	tagIDs, err := s.noteTags.ListTagIDs(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	return s.view(note, tagIDs), nil
}

// Update is the PUT semantics: title/content/tags are replaced wholesale.
func (s *NoteService) Update(ctx context.Context, userID, noteID string, input NoteCreateInput) (*NoteView, error) {
	note, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if err := s.checkTagOwnership(ctx, userID, input.TagIDs); err != nil {
		return nil, err
	}
	note.Title = input.Title
	note.Content = input.Content
	note.Mtime = timeutil.NowUnixMilli()
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	if err := s.replaceTags(ctx, userID, noteID, input.TagIDs); err != nil {
		return nil, err
	}
	return s.view(note, input.TagIDs), nil
}

// Patch applies only the fields present in the request.
func (s *NoteService) Patch(ctx context.Context, userID, noteID string, input NotePatchInput) (*NoteView, error) {
	note, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if input.TagIDs != nil {
		if err := s.checkTagOwnership(ctx, userID, *input.TagIDs); err != nil {
			return nil, err
		}
	}
	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	note.Mtime = timeutil.NowUnixMilli()
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	if input.TagIDs != nil {
		if err := s.replaceTags(ctx, userID, noteID, *input.TagIDs); err != nil {
			return nil, err
		}
	}
	tagIDs, err := s.noteTags.ListTagIDs(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	return s.view(note, tagIDs), nil
}

func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	if err := s.notes.Delete(ctx, userID, noteID); err != nil {
		return err
	}
	return s.noteTags.DeleteByNote(ctx, userID, noteID)
}
