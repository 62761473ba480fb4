package service

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	rendererhtml "github.com/yuin/goldmark/renderer/html"

	"notesapi/internal/model"
	appErr "notesapi/internal/pkg/errors"
	"notesapi/internal/repo"
)

// ExportPayload is a full JSON backup of one user's data.
type ExportPayload struct {
	Notes    []model.Note    `json:"notes"`
	Tags     []model.Tag     `json:"tags"`
	NoteTags []model.NoteTag `json:"note_tags"`
}

type ExportService struct {
	notes    *repo.NoteRepo
	tags     *repo.TagRepo
	noteTags *repo.NoteTagRepo
	md       goldmark.Markdown
}

func NewExportService(notes *repo.NoteRepo, tags *repo.TagRepo, noteTags *repo.NoteTagRepo) *ExportService {
	return &ExportService{
		notes:    notes,
		tags:     tags,
		noteTags: noteTags,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(rendererhtml.WithHardWraps()),
		),
	}
}

func (s *ExportService) Export(ctx context.Context, userID string) (*ExportPayload, error) {
	notes, err := s.notes.List(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	tags, err := s.tags.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	noteTags, err := s.noteTags.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ExportPayload{Notes: notes, Tags: tags, NoteTags: noteTags}, nil
}

// RenderNote returns a single note's content, either raw markdown or
// rendered to HTML.
func (s *ExportService) RenderNote(ctx context.Context, userID, noteID, format string) (string, string, error) {
	note, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return "", "", err
	}
	switch format {
	case "", "markdown":
		return note.Content, "text/markdown; charset=utf-8", nil
	case "html":
		var buf bytes.Buffer
		if err := s.md.Convert([]byte(note.Content), &buf); err != nil {
			return "", "", err
		}
		return buf.String(), "text/html; charset=utf-8", nil
	default:
		return "", "", appErr.ErrInvalid
	}
}
