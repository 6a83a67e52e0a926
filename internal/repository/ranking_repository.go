package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/database"
	"github.com/Mal-1702/ats-backend/internal/domain/ranking"
)

type RankingRepository interface {
	Upsert(ctx context.Context, jobID uuid.UUID, r ranking.CandidateRanking) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]ranking.CandidateRanking, error)
}

type PostgresRankingRepository struct {
	db database.DB
}

func NewPostgresRankingRepository(db database.DB) *PostgresRankingRepository {
	return &PostgresRankingRepository{db: db}
}

// Upsert stores the full matcher document as JSONB next to the columns
// used for ordering. Re-ranking a job overwrites the previous result for
// each resume.
func (r *PostgresRankingRepository) Upsert(ctx context.Context, jobID uuid.UUID, rec ranking.CandidateRanking) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO rankings (job_id, resume_id, final_score, tier, document, ranked_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (job_id, resume_id)
		 DO UPDATE SET final_score = EXCLUDED.final_score,
		               tier = EXCLUDED.tier,
		               document = EXCLUDED.document,
		               ranked_at = now()`,
		jobID, rec.ResumeID, rec.FinalScore, rec.Tier, doc,
	)
	return err
}

func (r *PostgresRankingRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]ranking.CandidateRanking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT document, ranked_at
		 FROM rankings
		 WHERE job_id = $1
		 ORDER BY final_score DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ranking.CandidateRanking, 0)
	for rows.Next() {
		var doc []byte
		var rec ranking.CandidateRanking
		if err := rows.Scan(&doc, &rec.RankedAt); err != nil {
			return nil, err
		}
		rankedAt := rec.RankedAt
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, err
		}
		rec.RankedAt = rankedAt
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ RankingRepository = (*PostgresRankingRepository)(nil)
