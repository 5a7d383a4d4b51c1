package story

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/store"
)

// seedScene is the YAML shape of one scene in a seed file
type seedScene struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	Content         string   `yaml:"content"`
	RequiredNFTs    []string `yaml:"required_nfts"`
	Order           int      `yaml:"order"`
	ImageURL        string   `yaml:"image_url"`
	BlendID         string   `yaml:"blend_id"`
	CinematicEffect string   `yaml:"cinematic_effect"`
}

type seedFile struct {
	Scenes []seedScene `yaml:"scenes"`
}

// SeedScenes loads scenes from a YAML file into the scene store when the
// store is empty. An already-populated store is left untouched so admin
// edits survive restarts.
func SeedScenes(ctx context.Context, scenes store.SceneStore, path string) (int, error) {
	existing, err := scenes.ListScenes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check scene store: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	var seeded int
	for _, sc := range file.Scenes {
		scene := domain.StoryScene{
			ID:              sc.ID,
			Title:           sc.Title,
			Description:     sc.Description,
			Content:         sc.Content,
			RequiredNFTs:    sc.RequiredNFTs,
			Order:           sc.Order,
			ImageURL:        sc.ImageURL,
			BlendID:         sc.BlendID,
			CinematicEffect: domain.CinematicEffect(sc.CinematicEffect),
		}
		if scene.RequiredNFTs == nil {
			scene.RequiredNFTs = []string{}
		}
		if err := scenes.CreateScene(ctx, &scene); err != nil {
			return seeded, fmt.Errorf("failed to seed scene %s: %w", sc.ID, err)
		}
		seeded++
	}

	return seeded, nil
}
