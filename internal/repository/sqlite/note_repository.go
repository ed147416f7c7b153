package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type noteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository implementation
func NewNoteRepository(db *sql.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Get(ctx context.Context, id string) (*models.Note, error) {
	log := logger.FromContext(ctx).WithPrefix("note_repo")
	log.Debug("getting note: id=%s", id)

	var n models.Note
	err := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, title, content, created_at, updated_at
FROM notes
WHERE id = ?
`, id).Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("note not found: id=%s", id)
		} else {
			log.Error("failed to get note: %v", err)
		}
		return nil, err
	}
	return &n, nil
}

func (r *noteRepository) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx).WithPrefix("note_repo")
	log.Debug("listing notes: owner_id=%s, query=%q", filter.OwnerID, filter.Query)

	query := sqlBuilder.Select(
		"id", "owner_id", "title", "content", "created_at", "updated_at",
	).From("notes")

	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"owner_id": filter.OwnerID})
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(squirrel.Or{
			squirrel.Like{"title": pattern},
			squirrel.Like{"content": pattern},
		})
	}

	// Safe ORDER BY with validation
	orderBy := "updated_at DESC"
	if filter.OrderBy == "title" {
		orderBy = "title ASC"
	} else if filter.OrderBy == "created_at" {
		orderBy = "created_at DESC"
	}
	query = query.OrderBy(orderBy)

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query = query.Limit(uint64(limit))
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list notes: %v", err)
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			log.Error("failed to scan note: %v", err)
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepository) Insert(ctx context.Context, n models.Note) error {
	log := logger.FromContext(ctx).WithPrefix("note_repo")
	log.Debug("inserting note: id=%s", n.ID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO notes (id, owner_id, title, content)
VALUES (?, ?, ?, ?)
`, n.ID, n.OwnerID, n.Title, n.Content)
	if err != nil {
		log.Error("failed to insert note: %v", err)
	}
	return err
}

func (r *noteRepository) Update(ctx context.Context, n models.Note) error {
	log := logger.FromContext(ctx).WithPrefix("note_repo")
	log.Debug("updating note: id=%s", n.ID)

	res, err := r.db.ExecContext(ctx, `
UPDATE notes
SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, n.Title, n.Content, n.ID)
	if err != nil {
		log.Error("failed to update note: %v", err)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("note_repo")
	log.Debug("deleting note: id=%s", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete note: %v", err)
	}
	return err
}
