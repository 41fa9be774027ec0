package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// SummaryAPIFacade calls the remote generation endpoint over HTTP.
type SummaryAPIFacade struct {
	client *http.Client
	url    string
	apiKey string
}

// NewSummaryAPIFacade creates a facade with a hard per-call timeout.
func NewSummaryAPIFacade(url, apiKey string, timeout time.Duration) *SummaryAPIFacade {
	return &SummaryAPIFacade{
		client: &http.Client{Timeout: timeout},
		url:    url,
		apiKey: apiKey,
	}
}

// GenerateSummaries sends the six input fields to the remote endpoint and returns
// exactly three raw variants. Any transport, status, or shape problem is returned
// as an error; the caller decides whether to fall back.
func (f *SummaryAPIFacade) GenerateSummaries(ctx context.Context, input models.SummaryInput) ([]string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("summary API request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("summary API returned non-200 status", "status", resp.StatusCode)
		return nil, fmt.Errorf("summary API status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	summaries, err := parseSummaries(body)
	if err != nil {
		logger.Log.Warnw("unexpected summary API response shape", "error", err)
		return nil, err
	}

	return summaries, nil
}

// parseSummaries probes the three response shapes the endpoint is known to produce:
// an object with a "summaries" array, an object with a "data" object or array,
// or a bare array of strings.
func parseSummaries(body []byte) ([]string, error) {
	var withSummaries struct {
		Summaries []string `json:"summaries"`
	}
	if err := json.Unmarshal(body, &withSummaries); err == nil {
		if out, ok := firstThreeUsable(withSummaries.Summaries); ok {
			return out, nil
		}
	}

	var withData struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &withData); err == nil && len(withData.Data) > 0 {
		var asObject struct {
			V1 string `json:"v1"`
			V2 string `json:"v2"`
			V3 string `json:"v3"`
		}
		if err := json.Unmarshal(withData.Data, &asObject); err == nil {
			if out, ok := firstThreeUsable([]string{asObject.V1, asObject.V2, asObject.V3}); ok {
				return out, nil
			}
		}

		var asArray []string
		if err := json.Unmarshal(withData.Data, &asArray); err == nil {
			if out, ok := firstThreeUsable(asArray); ok {
				return out, nil
			}
		}
	}

	var bare []string
	if err := json.Unmarshal(body, &bare); err == nil {
		if out, ok := firstThreeUsable(bare); ok {
			return out, nil
		}
	}

	return nil, fmt.Errorf("response did not contain three usable variants")
}

// firstThreeUsable returns the first three non-blank variants, in order.
func firstThreeUsable(variants []string) ([]string, bool) {
	out := make([]string, 0, 3)
	for _, v := range variants {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
		if len(out) == 3 {
			return out, true
		}
	}
	return nil, false
}
