package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

const (
	rapidAPIHost   = "jsearch.p.rapidapi.com"
	requestTimeout = 8 * time.Second
)

// Posting is one job posting as returned by the job-search API, with HTML
// already stripped from the description.
type Posting struct {
	Title            string
	Description      string
	Employer         string
	City             string
	State            string
	Qualifications   []string
	Responsibilities []string
	IsRemote         bool
	MinSalary        float64
	MaxSalary        float64
}

// CombinedText joins every textual field of the posting for skill matching.
func (p Posting) CombinedText() string {
	parts := []string{p.Title, p.Description, p.Employer, p.City + " " + p.State}
	parts = append(parts, p.Qualifications...)
	parts = append(parts, p.Responsibilities...)
	return strings.Join(parts, " ")
}

// Fetcher retrieves job postings for a role. The JSearch client implements
// it; tests substitute a fake.
type Fetcher interface {
	FetchPostings(ctx context.Context, role, location string, pages int) ([]Posting, error)
}

// JSearchClient fetches postings from the JSearch API on RapidAPI.
type JSearchClient struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewJSearchClient creates a client with the given RapidAPI key.
func NewJSearchClient(apiKey string) *JSearchClient {
	return &JSearchClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    "https://" + rapidAPIHost + "/search",
	}
}

type searchResponse struct {
	Data []jobItem `json:"data"`
}

type jobItem struct {
	JobTitle       string        `json:"job_title"`
	JobDescription string        `json:"job_description"`
	Description    string        `json:"description"`
	EmployerName   string        `json:"employer_name"`
	JobCity        string        `json:"job_city"`
	JobState       string        `json:"job_state"`
	JobHighlights  jobHighlights `json:"job_highlights"`
	JobIsRemote    bool          `json:"job_is_remote"`
	JobMinSalary   *float64      `json:"job_min_salary"`
	JobMaxSalary   *float64      `json:"job_max_salary"`
}

type jobHighlights struct {
	Qualifications   []string `json:"Qualifications"`
	Responsibilities []string `json:"Responsibilities"`
}

// FetchPostings fetches the requested number of result pages concurrently
// and flattens them into postings.
func (c *JSearchClient) FetchPostings(ctx context.Context, role, location string, pages int) ([]Posting, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("missing API key")
	}
	if pages < 1 {
		pages = 1
	}

	results := make([][]Posting, pages)
	g, gctx := errgroup.WithContext(ctx)
	for page := 1; page <= pages; page++ {
		g.Go(func() error {
			postings, err := c.fetchPage(gctx, role, location, page)
			if err != nil {
				return err
			}
			results[page-1] = postings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Posting
	for _, postings := range results {
		all = append(all, postings...)
	}
	return all, nil
}

func (c *JSearchClient) fetchPage(ctx context.Context, role, location string, page int) ([]Posting, error) {
	query := role
	if location != "" {
		query = role + " in " + location
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", rapidAPIHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job search returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode job search response: %w", err)
	}

	postings := make([]Posting, 0, len(parsed.Data))
	for _, item := range parsed.Data {
		description := item.JobDescription
		if description == "" {
			description = item.Description
		}
		p := Posting{
			Title:            item.JobTitle,
			Description:      StripHTML(description),
			Employer:         item.EmployerName,
			City:             item.JobCity,
			State:            item.JobState,
			Qualifications:   item.JobHighlights.Qualifications,
			Responsibilities: item.JobHighlights.Responsibilities,
			IsRemote:         item.JobIsRemote,
		}
		if item.JobMinSalary != nil {
			p.MinSalary = *item.JobMinSalary
		}
		if item.JobMaxSalary != nil {
			p.MaxSalary = *item.JobMaxSalary
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// StripHTML extracts visible text from HTML job descriptions. Plain text
// passes through unchanged.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(whitespaceCollapse(doc.Text()))
}

func whitespaceCollapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
