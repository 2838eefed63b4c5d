package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/scribehq/scribe/internal/domain"
	"github.com/scribehq/scribe/internal/server/middleware"
)

type ListNotesInput struct{}

type ListNotesOutput struct {
	Body []*domain.Note
}

type GetNoteInput struct {
	ID uuid.UUID `path:"id" doc:"Note ID"`
}

type GetNoteOutput struct {
	Body *domain.Note
}

type CreateNoteInput struct {
	Body struct {
		Title   string `json:"title,omitempty" maxLength:"255" doc:"Note title"`
		Content string `json:"content,omitempty" doc:"Note content"`
	}
}

type CreateNoteOutput struct {
	Body *domain.Note
}

type UpdateNoteInput struct {
	ID   uuid.UUID `path:"id" doc:"Note ID"`
	Body struct {
		Title   *string `json:"title,omitempty" maxLength:"255" doc:"New title"`
		Content *string `json:"content,omitempty" doc:"New content"`
	}
}

type UpdateNoteOutput struct {
	Body *domain.Note
}

type DeleteNoteInput struct {
	ID uuid.UUID `path:"id" doc:"Note ID"`
}

type DeleteNoteOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

// RegisterNoteRoutes registers note CRUD. Every operation filters by the
// caller's tenant id from the identity context; the creator's user id is
// recorded at creation but never used for access control.
func RegisterNoteRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "list-notes",
		Method:      http.MethodGet,
		Path:        "/notes",
		Summary:     "List notes in the caller's tenant",
		Tags:        []string{"Notes"},
	}, func(ctx context.Context, _ *ListNotesInput) (*ListNotesOutput, error) {
		id, ok := middleware.IdentityFromContext(ctx)
		if !ok {
			return nil, huma.Error401Unauthorized("authentication required")
		}

		notes, err := store.Notes().List(ctx, id.TenantID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list notes", err)
		}

		return &ListNotesOutput{Body: notes}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-note",
		Method:      http.MethodGet,
		Path:        "/notes/{id}",
		Summary:     "Get a note by ID",
		Tags:        []string{"Notes"},
	}, func(ctx context.Context, input *GetNoteInput) (*GetNoteOutput, error) {
		id, ok := middleware.IdentityFromContext(ctx)
		if !ok {
			return nil, huma.Error401Unauthorized("authentication required")
		}

		note, err := store.Notes().GetByID(ctx, id.TenantID, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("Note not found or you do not have permission")
			}
			return nil, huma.Error500InternalServerError("failed to get note", err)
		}

		return &GetNoteOutput{Body: note}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-note",
		Method:        http.MethodPost,
		Path:          "/notes",
		Summary:       "Create a note",
		Tags:          []string{"Notes"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateNoteInput) (*CreateNoteOutput, error) {
		id, ok := middleware.IdentityFromContext(ctx)
		if !ok {
			return nil, huma.Error401Unauthorized("authentication required")
		}

		if input.Body.Title == "" {
			return nil, huma.Error400BadRequest("Title is required")
		}

		note := &domain.Note{
			ID:        uuid.New(),
			TenantID:  id.TenantID,
			UserID:    id.UserID,
			Title:     input.Body.Title,
			Content:   input.Body.Content,
			CreatedAt: time.Now(),
		}

		err := store.Notes().CreateWithinQuota(ctx, note, domain.FreePlanNoteLimit)
		if err != nil {
			if errors.Is(err, domain.ErrQuotaExceeded) {
				return nil, huma.Error403Forbidden("Note limit reached. Please upgrade to the Pro plan for unlimited notes.")
			}
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("Tenant not found.")
			}
			return nil, huma.Error500InternalServerError("failed to create note", err)
		}

		return &CreateNoteOutput{Body: note}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-note",
		Method:      http.MethodPut,
		Path:        "/notes/{id}",
		Summary:     "Update a note",
		Tags:        []string{"Notes"},
	}, func(ctx context.Context, input *UpdateNoteInput) (*UpdateNoteOutput, error) {
		id, ok := middleware.IdentityFromContext(ctx)
		if !ok {
			return nil, huma.Error401Unauthorized("authentication required")
		}

		if input.Body.Title == nil && input.Body.Content == nil {
			return nil, huma.Error400BadRequest("Title or content is required to update")
		}
		if input.Body.Title != nil && *input.Body.Title == "" {
			return nil, huma.Error400BadRequest("Title must not be empty")
		}

		note, err := store.Notes().Update(ctx, id.TenantID, input.ID, input.Body.Title, input.Body.Content)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("Note not found or you do not have permission to edit")
			}
			return nil, huma.Error500InternalServerError("failed to update note", err)
		}

		return &UpdateNoteOutput{Body: note}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-note",
		Method:      http.MethodDelete,
		Path:        "/notes/{id}",
		Summary:     "Delete a note",
		Tags:        []string{"Notes"},
	}, func(ctx context.Context, input *DeleteNoteInput) (*DeleteNoteOutput, error) {
		id, ok := middleware.IdentityFromContext(ctx)
		if !ok {
			return nil, huma.Error401Unauthorized("authentication required")
		}

		if err := store.Notes().Delete(ctx, id.TenantID, input.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("Note not found or you do not have permission")
			}
			return nil, huma.Error500InternalServerError("failed to delete note", err)
		}

		out := &DeleteNoteOutput{}
		out.Body.Message = "Note deleted"
		return out, nil
	})
}
