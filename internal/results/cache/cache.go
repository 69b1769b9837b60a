// Package cache stores settled round classifications in SQLite so restarts
// do not refetch rounds that can no longer change.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pitwall/internal/results"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// RoundResultModel is one classification row of one round.
type RoundResultModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Season   int    `gorm:"index:idx_season_round"`
	Round    int    `gorm:"index:idx_season_round"`
	Driver   string `gorm:"size:128"`
	Team     string `gorm:"size:128"`
	Position int
	Points   float64
}

func (RoundResultModel) TableName() string { return "round_results" }

// Store implements results.RoundCache on gorm + SQLite.
type Store struct {
	db *gorm.DB
}

// Open creates (or reuses) the cache database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("round cache: path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("round cache: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("round cache: opening %s: %w", path, err)
	}
	if err := db.AutoMigrate(&RoundResultModel{}); err != nil {
		return nil, fmt.Errorf("round cache: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached rows for one round. The second return is false when
// the round has never been stored.
func (s *Store) Get(ctx context.Context, season, round int) ([]results.Row, bool, error) {
	var models []RoundResultModel
	err := s.db.WithContext(ctx).
		Where("season = ? AND round = ?", season, round).
		Order("position ASC").
		Find(&models).Error
	if err != nil {
		return nil, false, err
	}
	if len(models) == 0 {
		return nil, false, nil
	}
	rows := make([]results.Row, 0, len(models))
	for _, m := range models {
		rows = append(rows, results.Row{
			Driver:   m.Driver,
			Team:     m.Team,
			Position: m.Position,
			Points:   m.Points,
			Round:    m.Round,
		})
	}
	return rows, true, nil
}

// Put replaces the stored rows for one round.
func (s *Store) Put(ctx context.Context, season, round int, rows []results.Row) error {
	models := make([]RoundResultModel, 0, len(rows))
	for _, r := range rows {
		models = append(models, RoundResultModel{
			Season:   season,
			Round:    round,
			Driver:   r.Driver,
			Team:     r.Team,
			Position: r.Position,
			Points:   r.Points,
		})
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("season = ? AND round = ?", season, round).
			Delete(&RoundResultModel{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.Create(&models).Error
	})
}
