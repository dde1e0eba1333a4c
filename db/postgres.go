// Package db
package db

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type collectionRow struct {
	Name      string `gorm:"primaryKey;size:64"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (collectionRow) TableName() string {
	return "voting_collections"
}

type postgresDB struct {
	db     *gorm.DB
	logger *zap.Logger
}

func newPostgres(cfg Config) (*postgresDB, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConn)
	}
	if cfg.MinConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.MinConn)
	}

	if cfg.FlushDB {
		cfg.Logger.Info("Start flush database")
		if err := gormDB.Migrator().DropTable(&collectionRow{}); err != nil {
			return nil, err
		}
	}
	if err := gormDB.AutoMigrate(&collectionRow{}); err != nil {
		return nil, err
	}

	return &postgresDB{
		db:     gormDB,
		logger: cfg.Logger.With(zap.String("db", "postgres")),
	}, nil
}

func (p *postgresDB) Load(ctx context.Context, name string) ([]byte, error) {
	var row collectionRow
	err := p.db.WithContext(ctx).First(&row, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Payload), nil
}

func (p *postgresDB) Save(ctx context.Context, name string, data []byte) error {
	row := collectionRow{Name: name, Payload: string(data), UpdatedAt: time.Now()}
	err := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		p.logger.Warn("cannot upsert collection", zap.String("collection", name), zap.Error(err))
		return err
	}
	return nil
}

func (p *postgresDB) Close(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
