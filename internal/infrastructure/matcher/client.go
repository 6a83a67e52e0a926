// Package matcher is the HTTP client for the external ranking engine.
// Scoring and resume parsing happen entirely on the other side of this
// boundary; the service only validates the shapes that come back.
package matcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Mal-1702/ats-backend/internal/domain/priority"
	"github.com/Mal-1702/ats-backend/internal/domain/ranking"
)

var ErrMalformedResponse = errors.New("malformed matcher response")

type Client interface {
	RankResume(ctx context.Context, req RankRequest) (ranking.CandidateRanking, error)
	AnalyzeResume(ctx context.Context, filename string) (ranking.ResumeAnalysis, error)
}

type RankRequest struct {
	Filename        string                   `json:"filename"`
	JobTitle        string                   `json:"job_title"`
	SkillPriorities []priority.SkillPriority `json:"skill_priorities"`
	Keywords        []string                 `json:"keywords"`
	MinExperience   float64                  `json:"min_experience"`
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *httpClient) RankResume(ctx context.Context, req RankRequest) (ranking.CandidateRanking, error) {
	var out ranking.CandidateRanking
	if err := c.post(ctx, "/rank", req, &out); err != nil {
		return ranking.CandidateRanking{}, err
	}
	if out.FinalScore < 0 || out.FinalScore > 100 {
		return ranking.CandidateRanking{}, fmt.Errorf("%w: final_score=%v out of range", ErrMalformedResponse, out.FinalScore)
	}
	if out.Tier == "" {
		return ranking.CandidateRanking{}, fmt.Errorf("%w: missing tier", ErrMalformedResponse)
	}
	return out, nil
}

func (c *httpClient) AnalyzeResume(ctx context.Context, filename string) (ranking.ResumeAnalysis, error) {
	req := struct {
		Filename string `json:"filename"`
	}{Filename: strings.TrimSpace(filename)}

	var out ranking.ResumeAnalysis
	if err := c.post(ctx, "/analyze", req, &out); err != nil {
		return ranking.ResumeAnalysis{}, err
	}
	if out.Score < 0 || out.Score > 100 {
		return ranking.ResumeAnalysis{}, fmt.Errorf("%w: score=%v out of range", ErrMalformedResponse, out.Score)
	}
	return out, nil
}

func (c *httpClient) post(ctx context.Context, path string, body any, out any) error {
	if c == nil || c.client == nil {
		return errors.New("nil matcher client")
	}
	endpoint := c.baseURL + path

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Matcher] request failed endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return fmt.Errorf("matcher request failed: status=%d body=%s", resp.StatusCode, bodyStr)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

var _ Client = (*httpClient)(nil)
