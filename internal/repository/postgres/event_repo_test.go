package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"devevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var eventColumns = []string{
	"id", "title", "slug", "description", "overview", "image", "venue", "location",
	"date", "time", "mode", "audience", "agenda", "organizer", "tags", "created_at", "updated_at",
}

func sampleEvent(created time.Time) *domain.Event {
	return &domain.Event{
		Title:       "Full Stack Developer Conference 2025",
		Slug:        "full-stack-developer-conference-2025",
		Description: "Two days of talks.",
		Overview:    "Talks and workshops.",
		Image:       "https://media.example.com/events/a.png",
		Venue:       "BMICH",
		Location:    "Colombo, Sri Lanka",
		Date:        "2025-02-15",
		Time:        "09:00",
		Mode:        domain.ModeOffline,
		Audience:    "Developers",
		Agenda:      []string{"Registration", "Keynote"},
		Organizer:   "DevEvents",
		Tags:        []string{"web", "fullstack"},
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func sampleEventRow(id string, e *domain.Event) []driver.Value {
	return []driver.Value{
		id, e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
		e.Date, e.Time, e.Mode, e.Audience, []byte(`{"Registration","Keynote"}`),
		e.Organizer, []byte(`{"web","fullstack"}`), e.CreatedAt, e.UpdatedAt,
	}
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name:  "success",
			event: sampleEvent(created),
			mock: func(mock sqlmock.Sqlmock) {
				e := sampleEvent(created)
				mock.ExpectQuery(`INSERT INTO events \(title, slug, description, overview, image, venue, location`).
					WithArgs(e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
						e.Date, e.Time, e.Mode, e.Audience, pq.Array(e.Agenda), e.Organizer, pq.Array(e.Tags),
						e.CreatedAt, e.UpdatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name:  "duplicate slug",
			event: sampleEvent(created),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateSlug,
		},
		{
			name:  "db error",
			event: sampleEvent(created),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		slug    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			slug: "full-stack-developer-conference-2025",
			mock: func(mock sqlmock.Sqlmock) {
				e := sampleEvent(created)
				mock.ExpectQuery(`SELECT id, title, slug, description, overview, image, venue, location`).
					WithArgs("full-stack-developer-conference-2025").
					WillReturnRows(sqlmock.NewRows(eventColumns).AddRow(sampleEventRow("ev-1", e)...))
			},
			want: func() *domain.Event {
				e := sampleEvent(created)
				e.ID = "ev-1"
				return e
			}(),
		},
		{
			name: "slug is lowercased and trimmed before lookup",
			slug: "  Full-Stack-Developer-Conference-2025  ",
			mock: func(mock sqlmock.Sqlmock) {
				e := sampleEvent(created)
				mock.ExpectQuery(`SELECT id, title, slug, description, overview, image, venue, location`).
					WithArgs("full-stack-developer-conference-2025").
					WillReturnRows(sqlmock.NewRows(eventColumns).AddRow(sampleEventRow("ev-1", e)...))
			},
			want: func() *domain.Event {
				e := sampleEvent(created)
				e.ID = "ev-1"
				return e
			}(),
		},
		{
			name: "not found",
			slug: "missing-event",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, slug, description, overview, image, venue, location`).
					WithArgs("missing-event").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetBySlug(ctx, tt.slug)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns rows newest first", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		newest := sampleEvent(newer)
		newest.Slug = "react-nextjs-meetup"
		oldest := sampleEvent(older)

		mock.ExpectQuery(`SELECT id, title, slug, description, overview, image, venue, location`).
			WillReturnRows(sqlmock.NewRows(eventColumns).
				AddRow(sampleEventRow("ev-2", newest)...).
				AddRow(sampleEventRow("ev-1", oldest)...))

		repo := NewEventRepository(db)
		got, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "ev-2", got[0].ID)
		require.Equal(t, "react-nextjs-meetup", got[0].Slug)
		require.Equal(t, "ev-1", got[1].ID)
		require.Equal(t, []string{"Registration", "Keynote"}, got[0].Agenda)
		require.Equal(t, []string{"web", "fullstack"}, got[0].Tags)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, slug, description, overview, image, venue, location`).
			WillReturnRows(sqlmock.NewRows(eventColumns))

		repo := NewEventRepository(db)
		got, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, slug, description, overview, image, venue, location`).
			WillReturnError(sql.ErrConnDone)

		repo := NewEventRepository(db)
		got, err := repo.ListAll(ctx)
		require.Error(t, err)
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
