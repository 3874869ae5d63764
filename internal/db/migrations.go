package db

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"visuddha-service/internal/model"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		role_type VARCHAR(32) NOT NULL,
		organization VARCHAR(255) NOT NULL,
		permissions JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_role_type ON users (role_type);`,
	`CREATE TABLE IF NOT EXISTS client_sessions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID REFERENCES users(id) ON DELETE SET NULL,
		active_view VARCHAR(64) NOT NULL DEFAULT 'home',
		attempted_view VARCHAR(64),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_client_sessions_user_id ON client_sessions (user_id);`,
	`CREATE TABLE IF NOT EXISTS navigation_log (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		client_id UUID NOT NULL REFERENCES client_sessions(id) ON DELETE CASCADE,
		from_view VARCHAR(64) NOT NULL,
		to_view VARCHAR(64) NOT NULL,
		requested VARCHAR(64),
		allowed BOOLEAN NOT NULL,
		cause VARCHAR(16) NOT NULL,
		role_type VARCHAR(32),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_navigation_log_client_id ON navigation_log (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_navigation_log_created_at ON navigation_log (created_at);`,
	`CREATE OR REPLACE FUNCTION set_row_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_client_sessions_updated_at') THEN
			CREATE TRIGGER trg_client_sessions_updated_at
				BEFORE UPDATE ON client_sessions
				FOR EACH ROW EXECUTE FUNCTION set_row_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	if err := seedDemoUsers(db); err != nil {
		return fmt.Errorf("seed demo users: %w", err)
	}
	return nil
}

func seedDemoUsers(db *gorm.DB) error {
	users := model.DemoUsers()
	for i := range users {
		users[i].ID = uuid.New()
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_type"}},
		DoNothing: true,
	}).Create(&users).Error
}
