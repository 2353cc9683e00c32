package webapp

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/JiveeteshMourya/Priority-Playlist/internal/playlist"
	"github.com/JiveeteshMourya/Priority-Playlist/internal/youtube"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListPlaylists(ctx context.Context) ([]playlist.Playlist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]playlist.Playlist), args.Error(1)
}

func (m *MockAPI) CreatePlaylist(ctx context.Context, name string) (*playlist.Playlist, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlist.Playlist), args.Error(1)
}

func (m *MockAPI) AddVideo(ctx context.Context, playlistID string, v playlist.Video) (*playlist.Playlist, error) {
	args := m.Called(ctx, playlistID, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlist.Playlist), args.Error(1)
}

func (m *MockAPI) UpdatePriority(ctx context.Context, playlistID, videoID string, priority int) (*playlist.Playlist, error) {
	args := m.Called(ctx, playlistID, videoID, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlist.Playlist), args.Error(1)
}

func (m *MockAPI) RemoveVideo(ctx context.Context, playlistID, videoID string) (*playlist.Playlist, error) {
	args := m.Called(ctx, playlistID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlist.Playlist), args.Error(1)
}

func (m *MockAPI) DeletePlaylist(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSource struct {
	mock.Mock
}

func (m *MockSource) PlaylistItems(ctx context.Context, playlistID string) ([]youtube.Item, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]youtube.Item), args.Error(1)
}

func (m *MockSource) VideoTitle(ctx context.Context, videoID string) (string, error) {
	args := m.Called(ctx, videoID)
	return args.String(0), args.Error(1)
}
