package matcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRankResume_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rank" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %s", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"final_score": 84,
			"tier": "B",
			"matched_skills": ["Go", "PostgreSQL"],
			"missing_skills": ["Kafka"],
			"bonus_skills": ["Docker"],
			"breakdown": {"skill_match": 80, "keyword_match": 70, "experience_score": 90, "experience_years": 6},
			"reasoning": "solid backend profile"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, nil)
	got, err := c.RankResume(context.Background(), RankRequest{Filename: "cv.pdf"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.FinalScore != 84 {
		t.Fatalf("expected score 84, got %v", got.FinalScore)
	}
	if got.Tier != "B" {
		t.Fatalf("expected tier B, got %q", got.Tier)
	}
	if len(got.MatchedSkills) != 2 || len(got.MissingSkills) != 1 {
		t.Fatalf("unexpected skill lists: %+v", got)
	}
	if got.Breakdown.ExperienceYears != 6 {
		t.Fatalf("unexpected breakdown: %+v", got.Breakdown)
	}
}

func TestRankResume_OutOfRangeScoreRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"final_score": 140, "tier": "A"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, nil)
	_, err := c.RankResume(context.Background(), RankRequest{Filename: "cv.pdf"})
	if err == nil {
		t.Fatal("expected error for out-of-range score")
	}
}

func TestRankResume_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, nil)
	_, err := c.RankResume(context.Background(), RankRequest{Filename: "cv.pdf"})
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestAnalyzeResume_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"score": 71, "strengths": ["clear layout"], "improvements": ["add metrics"], "suggestions": ["quantify impact"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, nil)
	got, err := c.AnalyzeResume(context.Background(), "cv.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Score != 71 {
		t.Fatalf("expected score 71, got %v", got.Score)
	}
	if len(got.Strengths) != 1 {
		t.Fatalf("unexpected strengths: %+v", got.Strengths)
	}
}

func TestNewClient_EmptyBaseURL(t *testing.T) {
	if c := NewClient("  ", time.Second, nil); c != nil {
		t.Fatal("expected nil client for empty base URL")
	}
}
