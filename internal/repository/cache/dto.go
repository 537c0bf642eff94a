package cache

import (
	"github.com/imago-cloud/mediasearch/internal/domain/search/result"
)

// cachedResponse is the JSON shape persisted in the cache store.
type cachedResponse struct {
	TotalResults int64          `json:"total_results"`
	Results      []cachedResult `json:"results"`
	Page         int            `json:"page"`
	Limit        int            `json:"limit"`
	HasNext      bool           `json:"has_next"`
	HasPrevious  bool           `json:"has_previous"`
}

type cachedResult struct {
	ID           string  `json:"id"`
	Score        float64 `json:"score"`
	ImageNumber  string  `json:"bildnummer"`
	Date         string  `json:"datum"`
	Photographer string  `json:"fotografen"`
	Title        string  `json:"title"`
	Width        int     `json:"breite"`
	Height       int     `json:"hoehe"`
	Database     string  `json:"db"`
	MediaURL     string  `json:"media_url"`
}

func toDTO(resp *result.Response) cachedResponse {
	results := resp.Results()
	items := make([]cachedResult, len(results))
	for i := range results {
		r := &results[i]
		items[i] = cachedResult{
			ID:           r.ID(),
			Score:        r.Score(),
			ImageNumber:  r.ImageNumber(),
			Date:         r.Date(),
			Photographer: r.Photographer(),
			Title:        r.Title(),
			Width:        r.Width(),
			Height:       r.Height(),
			Database:     r.Database(),
			MediaURL:     r.MediaURL(),
		}
	}
	return cachedResponse{
		TotalResults: resp.TotalResults(),
		Results:      items,
		Page:         resp.Page(),
		Limit:        resp.Limit(),
		HasNext:      resp.HasNext(),
		HasPrevious:  resp.HasPrevious(),
	}
}

func fromDTO(dto cachedResponse) result.Response {
	results := make([]result.Result, len(dto.Results))
	for i, r := range dto.Results {
		results[i] = result.New(
			r.ID, r.Score,
			r.ImageNumber, r.Date, r.Photographer, r.Title,
			r.Width, r.Height,
			r.Database, r.MediaURL,
		)
	}
	return result.Reconstruct(
		dto.TotalResults, results, dto.Page, dto.Limit, dto.HasNext, dto.HasPrevious,
	)
}
