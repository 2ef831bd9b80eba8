// Package directory provides the HTTP client for the upstream
// directory/calendar API that owns building, room, and workspace data.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"building_directory/internal/logger"
	"building_directory/internal/models"
)

const (
	defaultTimeout = 10 * time.Second

	// Header carrying the caller identity on calls that attach it.
	principalHeader = "X-Principal-Upn"

	// Upstream response bodies are error messages on failure; cap how much
	// of them we keep.
	maxErrorBodyBytes = 4 << 10
)

// StatusError reports a non-2xx upstream response. Handlers pass Code
// through as the HTTP status so downstream failures surface unchanged.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("directory upstream returned %d: %s", e.Code, e.Body)
}

// Client talks to the upstream directory API. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// New creates a directory client. timeout <= 0 falls back to a default.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// ListBuildingsByName lists buildings ordered by display name. The caller
// UPN is attached so the upstream can scope results to the caller's tenant.
func (c *Client) ListBuildingsByName(ctx context.Context, callerUpn string, top, skip int) (models.BuildingList, error) {
	params := url.Values{}
	params.Set("orderBy", "displayName")
	params.Set("top", strconv.Itoa(top))
	params.Set("skip", strconv.Itoa(skip))

	var out models.BuildingList
	err := c.get(ctx, "/buildings", params, callerUpn, &out)
	return out, err
}

// ListBuildingsByDistance lists buildings near the given "lat,long" point.
// coords and maxMiles are forwarded exactly as received; a nil maxMiles
// leaves the radius to the upstream default.
func (c *Client) ListBuildingsByDistance(ctx context.Context, callerUpn, coords string, maxMiles *float64) (models.BuildingList, error) {
	params := url.Values{}
	params.Set("near", coords)
	if maxMiles != nil {
		params.Set("maxDistanceMiles", strconv.FormatFloat(*maxMiles, 'f', -1, 64))
	}

	var out models.BuildingList
	err := c.get(ctx, "/buildings", params, callerUpn, &out)
	return out, err
}

// GetBuildingByDisplayName fetches a single building by its display name.
func (c *Client) GetBuildingByDisplayName(ctx context.Context, displayName string) (models.Building, error) {
	var out models.Building
	err := c.get(ctx, "/buildings/byName/"+url.PathEscape(displayName), nil, "", &out)
	return out, err
}

// ListPlaces lists places of one type within a building. A false feature
// flag means "unconstrained" and is encoded by omitting the parameter, so
// the upstream never interprets it as "must lack the feature".
func (c *Client) ListPlaces(ctx context.Context, buildingUpn string, placeType models.PlaceType, features models.PlaceFeatures, nameSearch string, top int, skipToken string) (models.PlaceList, error) {
	params := url.Values{}
	params.Set("type", string(placeType))
	params.Set("top", strconv.Itoa(top))
	if skipToken != "" {
		params.Set("skipToken", skipToken)
	}
	if nameSearch != "" {
		params.Set("displayNameSearchString", nameSearch)
	}
	setFeatureParams(params, features)

	var out models.PlaceList
	err := c.get(ctx, "/buildings/"+url.PathEscape(buildingUpn)+"/places", params, "", &out)
	return out, err
}

// GetPlaceByUpn fetches a single place. placeType disambiguates rooms from
// workspaces that share a UPN namespace.
func (c *Client) GetPlaceByUpn(ctx context.Context, upn string, placeType models.PlaceType) (models.Place, error) {
	params := url.Values{}
	params.Set("type", string(placeType))

	var out models.Place
	err := c.get(ctx, "/places/"+url.PathEscape(upn), params, "", &out)
	return out, err
}

// GetWorkspacesSchedule fetches reserved/available percentages for a
// building's workspaces. start and end are opaque to this layer.
func (c *Client) GetWorkspacesSchedule(ctx context.Context, buildingUpn, start, end string) (models.ScheduleSummary, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)

	var out models.ScheduleSummary
	err := c.get(ctx, "/buildings/"+url.PathEscape(buildingUpn)+"/schedule", params, "", &out)
	return out, err
}

// SearchBuildings runs a free-text building search.
func (c *Client) SearchBuildings(ctx context.Context, searchString string, top, skip int) (models.BuildingList, error) {
	params := url.Values{}
	params.Set("top", strconv.Itoa(top))
	params.Set("skip", strconv.Itoa(skip))

	var out models.BuildingList
	err := c.get(ctx, "/buildings/search/"+url.PathEscape(searchString), params, "", &out)
	return out, err
}

// setFeatureParams adds one query parameter per requested feature. Only
// true flags are sent.
func setFeatureParams(params url.Values, f models.PlaceFeatures) {
	for name, set := range map[string]bool{
		"hasVideo":               f.HasVideo,
		"hasAudio":               f.HasAudio,
		"hasDisplay":             f.HasDisplay,
		"isWheelchairAccessible": f.IsWheelchairAccessible,
		"fullyEnclosed":          f.FullyEnclosed,
		"surfaceHub":             f.SurfaceHub,
		"whiteboardCamera":       f.WhiteboardCamera,
	} {
		if set {
			params.Set(name, "true")
		}
	}
}

// get performs one upstream GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, callerUpn string, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if callerUpn != "" {
		req.Header.Set(principalHeader, callerUpn)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Errorw("directory_request_failed", "err", err, "url", reqURL)
		}
		return fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode directory response: %w", err)
	}
	return nil
}
