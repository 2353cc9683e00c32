package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the production YouTube Data API v3 endpoint.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	maxPageSize = 50
)

// Titles the API reports for entries whose underlying video is gone.
const (
	titlePrivateVideo = "Private video"
	titleDeletedVideo = "Deleted video"
)

// Item is one playable entry resolved from a playlist.
type Item struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
}

// Client calls the YouTube Data API with key authentication.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet struct {
			Title      string `json:"title"`
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

// PlaylistItems fetches every page of the playlist, one page in flight at a
// time, and returns the playable entries in playlist order. Private and
// deleted videos are dropped, as are entries without a resolvable video id
// and duplicates of an id already seen. An empty result after filtering is
// ErrNoPlayableVideos, not an empty slice.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string) ([]Item, error) {
	var items []Item
	seen := map[string]bool{}
	pageToken := ""

	for {
		val := url.Values{}
		val.Set("part", "snippet")
		val.Set("maxResults", fmt.Sprint(maxPageSize))
		val.Set("playlistId", playlistID)
		val.Set("key", c.apiKey)
		if pageToken != "" {
			val.Set("pageToken", pageToken)
		}

		var body playlistItemsResponse
		if err := c.get(ctx, "/playlistItems", val, &body, classifyPlaylistError); err != nil {
			return nil, err
		}

		for _, it := range body.Items {
			id := it.Snippet.ResourceID.VideoID
			title := it.Snippet.Title
			if id == "" || seen[id] {
				continue
			}
			if title == titlePrivateVideo || title == titleDeletedVideo {
				continue
			}
			seen[id] = true
			items = append(items, Item{VideoID: id, Title: title})
		}

		pageToken = body.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(items) == 0 {
		return nil, ErrNoPlayableVideos
	}
	return items, nil
}

type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// VideoTitle looks up a single video and returns its title. Zero items in the
// response means the video does not exist or is not accessible.
func (c *Client) VideoTitle(ctx context.Context, videoID string) (string, error) {
	val := url.Values{}
	val.Set("part", "snippet")
	val.Set("id", videoID)
	val.Set("key", c.apiKey)

	var body videosResponse
	if err := c.get(ctx, "/videos", val, &body, nil); err != nil {
		return "", err
	}
	if len(body.Items) == 0 {
		return "", ErrVideoNotFound
	}
	return body.Items[0].Snippet.Title, nil
}

func (c *Client) get(ctx context.Context, path string, val url.Values, out any, classify func(*UpstreamError) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+val.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ue := &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp.Body),
		}
		if classify != nil {
			return classify(ue)
		}
		return ue
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func classifyPlaylistError(ue *UpstreamError) error {
	switch ue.StatusCode {
	case http.StatusNotFound:
		if ue.Message == "" {
			ue.Message = "playlist not found or is not public"
		}
	case http.StatusForbidden:
		if ue.Message == "" {
			ue.Message = "playlist is private or inaccessible"
		}
	}
	return ue
}

// decodeErrorMessage pulls the message out of the API's JSON error envelope.
// The shape is checked structurally; anything that doesn't look like
// {"error":{"message":...}} yields "".
func decodeErrorMessage(body io.Reader) string {
	var payload struct {
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error == nil {
		return ""
	}
	return payload.Error.Message
}
