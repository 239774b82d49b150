package migrations

import (
	"github.com/NeuralTrust/TrustGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260301_create_guardrail_logs_table",
		Name: "Create guardrail_logs table for sanitized check audit records",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS guardrail_logs (
					id                    UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					request_id            TEXT NOT NULL,
					organization_id       TEXT,
					user_id               TEXT,
					sanitized_prompt      TEXT NOT NULL,
					sanitized_response    TEXT,
					prompt_risk_score     DOUBLE PRECISION NOT NULL,
					response_risk_score   DOUBLE PRECISION NOT NULL DEFAULT 0,
					action                TEXT NOT NULL,
					severity              TEXT NOT NULL,
					allowed               BOOLEAN NOT NULL,
					pii_detected          BOOLEAN NOT NULL DEFAULT FALSE,
					pii_types             TEXT[] NOT NULL DEFAULT '{}',
					content_categories    TEXT[] NOT NULL DEFAULT '{}',
					moderation_flags      JSONB NOT NULL DEFAULT '{}'::jsonb,
					requires_human_review BOOLEAN NOT NULL DEFAULT FALSE,
					reviewed_by           TEXT,
					review_decision       TEXT CHECK (review_decision IN ('approved', 'rejected', 'modified')),
					review_notes          TEXT,
					reviewed_at           TIMESTAMPTZ,
					model_provider        TEXT,
					model_name            TEXT,
					processing_time_ms    BIGINT NOT NULL DEFAULT 0,
					created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			// Review queue lookups
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_guardrail_logs_review_queue
				ON guardrail_logs (organization_id, requires_human_review, reviewed_at, created_at DESC);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_guardrail_logs_request_id
				ON guardrail_logs (request_id);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_guardrail_logs_severity
				ON guardrail_logs (severity);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS guardrail_logs;`).Error
		},
	})
}
