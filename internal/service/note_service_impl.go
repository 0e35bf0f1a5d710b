package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/markdown"
	"github.com/alexanderramin/mdplanner/internal/repository"
)

type noteService struct {
	notes    repository.NoteRepo
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewNoteService(notes repository.NoteRepo, projects repository.ProjectRepo, observers ...UseCaseObserver) NoteService {
	return &noteService{notes: notes, projects: projects, observer: useCaseObserverOrNoop(observers)}
}

func noteID(n domain.Note) string { return n.ID }

func (s *noteService) List(ctx context.Context) []domain.Note {
	return s.projects.ReadProjectInfo(ctx).Notes
}

func (s *noteService) Get(ctx context.Context, id string) (*domain.Note, error) {
	n, ok := findByID(s.List(ctx), id, noteID)
	if !ok {
		return nil, notFound("note", id)
	}
	return n, nil
}

func (s *noteService) Add(ctx context.Context, title, content string) (created *domain.Note, err error) {
	fields := map[string]any{}
	done := startUseCase(ctx, s.observer, "add-note", fields)
	defer func() { done(err) }()

	if title, err = requireText("title", title); err != nil {
		return nil, err
	}
	var note domain.Note
	note, err = s.notes.AddNote(ctx, domain.Note{Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("adding note: %w", err)
	}
	fields["note_id"] = note.ID
	return &note, nil
}

func (s *noteService) Update(ctx context.Context, id string, patch domain.NotePatch) (updated *domain.Note, err error) {
	done := startUseCase(ctx, s.observer, "update-note", map[string]any{"note_id": id})
	defer func() { done(err) }()

	if patch.Title != nil {
		title, terr := requireText("title", *patch.Title)
		if terr != nil {
			return nil, terr
		}
		patch.Title = &title
	}
	var found bool
	found, err = s.notes.UpdateNote(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}
	if !found {
		err = notFound("note", id)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *noteService) Remove(ctx context.Context, id string) (err error) {
	done := startUseCase(ctx, s.observer, "remove-note", map[string]any{"note_id": id})
	defer func() { done(err) }()

	var removed bool
	removed, err = s.notes.DeleteNote(ctx, id)
	if err != nil {
		return fmt.Errorf("removing note: %w", err)
	}
	if !removed {
		err = notFound("note", id)
	}
	return err
}

func (s *noteService) Blocks(ctx context.Context, id string) ([]domain.NoteBlock, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return markdown.ParseNoteBody(n.Content), nil
}
