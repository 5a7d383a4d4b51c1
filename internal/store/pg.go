package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the database tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.UserProgress{},
		&schema.StoryScene{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Load retrieves the stored progress for an account, or nil if absent
func (s *pgStore) Load(ctx context.Context, accountName string) (*domain.UserProgress, error) {
	var row schema.UserProgress
	err := s.db.WithContext(ctx).Where("account_name = ?", accountName).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	return progressFromSchema(&row)
}

// Save upserts the progress for its account
func (s *pgStore) Save(ctx context.Context, progress *domain.UserProgress) error {
	row, err := progressToSchema(progress)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_name"}},
		UpdateAll: true,
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	return nil
}

// ListScenes returns all scenes ordered by their display order
func (s *pgStore) ListScenes(ctx context.Context) ([]domain.StoryScene, error) {
	var rows []schema.StoryScene
	err := s.db.WithContext(ctx).Order("display_order ASC, id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scenes: %w", err)
	}

	scenes := make([]domain.StoryScene, 0, len(rows))
	for i := range rows {
		scene, err := sceneFromSchema(&rows[i])
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, *scene)
	}
	return scenes, nil
}

// GetScene retrieves a scene by id
func (s *pgStore) GetScene(ctx context.Context, sceneID string) (*domain.StoryScene, error) {
	var row schema.StoryScene
	err := s.db.WithContext(ctx).Where("id = ?", sceneID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSceneNotFound
		}
		return nil, fmt.Errorf("failed to get scene: %w", err)
	}

	return sceneFromSchema(&row)
}

// CreateScene stores a new scene
func (s *pgStore) CreateScene(ctx context.Context, scene *domain.StoryScene) error {
	row, err := sceneToSchema(scene)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Create(row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSceneAlreadyExists
		}
		return fmt.Errorf("failed to create scene: %w", err)
	}

	return nil
}

// UpdateScene replaces an existing scene
func (s *pgStore) UpdateScene(ctx context.Context, scene *domain.StoryScene) error {
	row, err := sceneToSchema(scene)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Model(&schema.StoryScene{}).Where("id = ?", scene.ID).Updates(map[string]interface{}{
		"title":            row.Title,
		"description":      row.Description,
		"content":          row.Content,
		"required_nfts":    row.RequiredNFTs,
		"display_order":    row.DisplayOrder,
		"image_url":        row.ImageURL,
		"blend_id":         row.BlendID,
		"cinematic_effect": row.CinematicEffect,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update scene: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSceneNotFound
	}

	return nil
}

// DeleteScene removes a scene by id
func (s *pgStore) DeleteScene(ctx context.Context, sceneID string) error {
	result := s.db.WithContext(ctx).Where("id = ?", sceneID).Delete(&schema.StoryScene{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete scene: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSceneNotFound
	}

	return nil
}

func progressFromSchema(row *schema.UserProgress) (*domain.UserProgress, error) {
	progress := domain.UserProgress{
		AccountName: row.AccountName,
		LastUpdated: row.LastUpdated,
	}

	if err := json.Unmarshal(row.UnlockedScenes, &progress.UnlockedScenes); err != nil {
		return nil, fmt.Errorf("failed to decode unlocked scenes: %w", err)
	}
	if err := json.Unmarshal(row.CompletedBlends, &progress.CompletedBlends); err != nil {
		return nil, fmt.Errorf("failed to decode completed blends: %w", err)
	}

	return &progress, nil
}

func progressToSchema(progress *domain.UserProgress) (*schema.UserProgress, error) {
	unlocked, err := json.Marshal(emptyIfNil(progress.UnlockedScenes))
	if err != nil {
		return nil, fmt.Errorf("failed to encode unlocked scenes: %w", err)
	}
	completed, err := json.Marshal(emptyIfNil(progress.CompletedBlends))
	if err != nil {
		return nil, fmt.Errorf("failed to encode completed blends: %w", err)
	}

	return &schema.UserProgress{
		AccountName:     progress.AccountName,
		UnlockedScenes:  datatypes.JSON(unlocked),
		CompletedBlends: datatypes.JSON(completed),
		LastUpdated:     progress.LastUpdated,
	}, nil
}

func sceneFromSchema(row *schema.StoryScene) (*domain.StoryScene, error) {
	scene := domain.StoryScene{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		Content:         row.Content,
		Order:           row.DisplayOrder,
		ImageURL:        row.ImageURL,
		BlendID:         row.BlendID,
		CinematicEffect: domain.CinematicEffect(row.CinematicEffect),
	}

	if err := json.Unmarshal(row.RequiredNFTs, &scene.RequiredNFTs); err != nil {
		return nil, fmt.Errorf("failed to decode required NFTs: %w", err)
	}

	return &scene, nil
}

func sceneToSchema(scene *domain.StoryScene) (*schema.StoryScene, error) {
	required, err := json.Marshal(emptyIfNil(scene.RequiredNFTs))
	if err != nil {
		return nil, fmt.Errorf("failed to encode required NFTs: %w", err)
	}

	return &schema.StoryScene{
		ID:              scene.ID,
		Title:           scene.Title,
		Description:     scene.Description,
		Content:         scene.Content,
		RequiredNFTs:    datatypes.JSON(required),
		DisplayOrder:    scene.Order,
		ImageURL:        scene.ImageURL,
		BlendID:         scene.BlendID,
		CinematicEffect: string(scene.CinematicEffect),
	}, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
