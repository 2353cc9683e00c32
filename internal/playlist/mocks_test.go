package playlist

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockDB implements the DB interface for store tests.
type MockDB struct {
	ExecFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, sql, args...)
	}
	return pgconn.CommandTag{}, nil
}

func (m *MockDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql, args...)
	}
	return &MockRows{}, nil
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.QueryRowFunc != nil {
		return m.QueryRowFunc(ctx, sql, args...)
	}
	return &MockRow{}
}

// MockRow implements pgx.Row.
type MockRow struct {
	ScanFunc func(dest ...any) error
}

func (m *MockRow) Scan(dest ...any) error {
	if m.ScanFunc != nil {
		return m.ScanFunc(dest...)
	}
	return nil
}

// MockRows implements pgx.Rows for list queries. Unoverridden methods panic
// via the embedded nil interface if a test reaches them.
type MockRows struct {
	pgx.Rows
	ScanFuncs []func(dest ...any) error
	idx       int
}

func (m *MockRows) Next() bool {
	return m.idx < len(m.ScanFuncs)
}

func (m *MockRows) Scan(dest ...any) error {
	fn := m.ScanFuncs[m.idx]
	m.idx++
	return fn(dest...)
}

func (m *MockRows) Err() error { return nil }

func (m *MockRows) Close() {}

// MockStore implements Store for handler tests.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context, page, limit int) (*Page, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Page), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, id string) (*Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Playlist), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, name, description string, videos []Video) (*Playlist, error) {
	args := m.Called(ctx, name, description, videos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Playlist), args.Error(1)
}

func (m *MockStore) AddVideo(ctx context.Context, playlistID string, video Video) (*Playlist, error) {
	args := m.Called(ctx, playlistID, video)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Playlist), args.Error(1)
}

func (m *MockStore) UpdatePriority(ctx context.Context, playlistID, videoID string, priority int) (*Playlist, error) {
	args := m.Called(ctx, playlistID, videoID, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Playlist), args.Error(1)
}

func (m *MockStore) RemoveVideo(ctx context.Context, playlistID, videoID string) (*Playlist, error) {
	args := m.Called(ctx, playlistID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Playlist), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
