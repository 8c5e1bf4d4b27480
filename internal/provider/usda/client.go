// Package usda wraps the USDA FoodData Central free-text search and maps
// its response to normalized per-100g food records.
package usda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ramasheshasai/Calorie-Builder/internal/model"
)

const (
	defaultBaseURL  = "https://api.nal.usda.gov"
	defaultPageSize = 10
)

// ErrLookup marks every failure of the external search call: transport
// errors, non-2xx statuses, and undecodable bodies. Zero matches is a
// valid empty result, not an ErrLookup.
var ErrLookup = errors.New("food lookup failed")

type Client struct {
	APIKey     string
	BaseURL    string
	PageSize   int
	HTTPClient *http.Client
}

// Search queries FoodData Central for foods matching query and returns
// one FoodRecord per match, nutrients per 100 g. An empty result page
// returns an empty slice and no error.
func (c *Client) Search(ctx context.Context, query string) ([]model.FoodRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("%w: missing USDA API key", ErrLookup)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))
	params.Set("api_key", c.APIKey)
	endpoint := fmt.Sprintf("%s/fdc/v1/foods/search?%s", baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrLookup, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrLookup, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrLookup, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrLookup, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrLookup, err)
	}

	records := make([]model.FoodRecord, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		rec := model.FoodRecord{
			FDCID: f.FDCID,
			Name:  strings.TrimSpace(f.Description),
			Brand: strings.TrimSpace(f.BrandName),
		}
		rec.Calories, rec.Protein, rec.Carbs, rec.Fats = nutrientsFrom(f.FoodNutrients)
		records = append(records, rec)
	}
	return records, nil
}

// SearchTop returns the first match for query, or ok=false when the
// service reports none.
func (c *Client) SearchTop(ctx context.Context, query string) (model.FoodRecord, bool, error) {
	records, err := c.Search(ctx, query)
	if err != nil {
		return model.FoodRecord{}, false, err
	}
	if len(records) == 0 {
		return model.FoodRecord{}, false, nil
	}
	return records[0], true, nil
}

// nutrientsFrom extracts the four tracked nutrients by exact upstream
// name, defaulting missing ones to 0. The upstream vocabulary is not
// contract-guaranteed, so the mapping lives in this one function only.
func nutrientsFrom(ns []usdaNutrient) (calories, protein, carbs, fats float64) {
	get := func(name string) float64 {
		for _, n := range ns {
			if n.NutrientName == name {
				return n.Value
			}
		}
		return 0
	}
	return get("Energy"),
		get("Protein"),
		get("Carbohydrate, by difference"),
		get("Total lipid (fat)")
}

type searchResponse struct {
	Foods []usdaFood `json:"foods"`
}

type usdaFood struct {
	FDCID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	BrandName     string         `json:"brandName"`
	FoodNutrients []usdaNutrient `json:"foodNutrients"`
}

type usdaNutrient struct {
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
}
