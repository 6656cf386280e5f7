package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"
)

const defaultVideosURL = "https://www.googleapis.com/youtube/v3/videos"

var (
	errNoAPIKey = &apperr.Error{
		Message: "a YouTube API key is required to look up video durations",
	}

	errVideoNotFound = &apperr.Error{
		Message: "video %s not found",
	}

	errStatus = &apperr.Error{
		Message: "youtube videos status %d",
	}
)

var isoDuration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// Client talks to the YouTube Data API.
type Client struct {
	http      *http.Client
	apiKey    string
	videosURL string
}

// NewClient returns a client authenticated with apiKey. An empty videosURL
// selects the public API endpoint.
func NewClient(apiKey, videosURL string) *Client {
	if videosURL == "" {
		videosURL = defaultVideosURL
	}

	return &Client{
		apiKey:    apiKey,
		videosURL: videosURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type videosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// Duration returns the length of the video in seconds.
func (c *Client) Duration(ctx context.Context, id string) (float64, error) {
	if c.apiKey == "" {
		return 0, errNoAPIKey
	}

	val := url.Values{}
	val.Set("part", "contentDetails")
	val.Set("id", id)
	val.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.videosURL+"?"+val.Encode(),
		http.NoBody,
	)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errStatus.Fmt(resp.StatusCode)
	}

	var body videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding videos response: %w", err)
	}

	for _, item := range body.Items {
		if item.ID == id {
			return parseISO8601Duration(item.ContentDetails.Duration), nil
		}
	}

	return 0, errVideoNotFound.Fmt(id)
}

// parseISO8601Duration converts PT#H#M#S durations to seconds. Unsupported
// input yields zero.
func parseISO8601Duration(duration string) float64 {
	matches := isoDuration.FindStringSubmatch(duration)
	if matches == nil {
		return 0
	}

	var total int

	for i, mult := range []int{3600, 60, 1} {
		if matches[i+1] == "" {
			continue
		}

		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return 0
		}

		total += n * mult
	}

	return float64(total)
}
