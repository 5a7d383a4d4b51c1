// Package story holds the narrative side of the core: scene unlock
// evaluation against owned templates and per-account progress mutations.
package story

import (
	"github.com/futures-relic/relic-atelier/internal/domain"
)

// OwnedTemplateIDs collapses an inventory snapshot into the set of owned
// template ids. Scene gating only cares about template presence, not
// quantities.
func OwnedTemplateIDs(inventory []domain.NFTAsset) map[string]bool {
	owned := make(map[string]bool, len(inventory))
	for _, asset := range inventory {
		if asset.TemplateID != "" {
			owned[asset.TemplateID] = true
		}
	}
	return owned
}

// IsUnlocked reports whether a scene is unlocked for the account.
//
// A scene unlocks when every required template is owned (AND semantics,
// distinct from the quantity-aware ingredient matching), or when it has no
// requirements at all, or when its id is already recorded in the account's
// progress. The last clause makes unlock state a ratchet: once unlocked, a
// scene stays unlocked even if the qualifying NFT is transferred away.
func IsUnlocked(scene domain.StoryScene, ownedTemplateIDs map[string]bool, progress *domain.UserProgress) bool {
	if progress != nil && progress.HasUnlocked(scene.ID) {
		return true
	}

	for _, templateID := range scene.RequiredNFTs {
		if !ownedTemplateIDs[templateID] {
			return false
		}
	}
	return true
}

// EvaluateScenes marks each scene's unlock state against the inventory and
// progress, and returns the ids of scenes that are newly unlocked (satisfied
// by ownership but not yet recorded in progress) so the caller can persist
// the ratchet.
func EvaluateScenes(scenes []domain.StoryScene, ownedTemplateIDs map[string]bool, progress *domain.UserProgress) ([]domain.StoryScene, []string) {
	evaluated := make([]domain.StoryScene, len(scenes))
	var newlyUnlocked []string

	for i, scene := range scenes {
		unlocked := IsUnlocked(scene, ownedTemplateIDs, progress)
		scene.Unlocked = unlocked
		evaluated[i] = scene

		if unlocked && (progress == nil || !progress.HasUnlocked(scene.ID)) {
			newlyUnlocked = append(newlyUnlocked, scene.ID)
		}
	}

	return evaluated, newlyUnlocked
}
