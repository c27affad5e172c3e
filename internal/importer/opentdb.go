package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// OpenTDBClient fetches questions from the Open Trivia DB (no API key).
type OpenTDBClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Provider = (*OpenTDBClient)(nil)

func NewOpenTDBClient(baseURL string, httpClient *http.Client) *OpenTDBClient {
	if baseURL == "" {
		baseURL = "https://opentdb.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &OpenTDBClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

type openTDBQuestion struct {
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
}

type openTDBResponse struct {
	ResponseCode int               `json:"response_code"`
	Results      []openTDBQuestion `json:"results"`
}

// response_code values documented by opentdb.com/api_config.php
var openTDBCodes = map[int]string{
	1: "not enough questions for the query",
	2: "invalid parameter",
	3: "session token not found",
	4: "session token exhausted",
	5: "rate limited",
}

func (c *OpenTDBClient) Name() string { return SourceOpenTDB }

// Fetch requests amount questions. Text arrives HTML-escaped and is unescaped here.
func (c *OpenTDBClient) Fetch(ctx context.Context, amount int) ([]Candidate, error) {
	values := url.Values{}
	values.Set("amount", fmt.Sprint(amount))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api.php?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("opentdb non-200: %d", resp.StatusCode)
	}

	var payload openTDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode opentdb response: %w", err)
	}
	if payload.ResponseCode != 0 {
		reason, ok := openTDBCodes[payload.ResponseCode]
		if !ok {
			reason = "unknown error"
		}
		return nil, fmt.Errorf("opentdb response code %d: %s", payload.ResponseCode, reason)
	}

	out := make([]Candidate, 0, len(payload.Results))
	for _, q := range payload.Results {
		out = append(out, Candidate{
			Question:   html.UnescapeString(q.Question),
			Answer:     html.UnescapeString(q.CorrectAnswer),
			Category:   html.UnescapeString(q.Category),
			Difficulty: q.Difficulty,
		})
	}
	return out, nil
}
