package dto

// CreateSceneRequest is the admin payload for creating a story scene.
// ID is optional; a fresh one is generated when omitted.
type CreateSceneRequest struct {
	ID              string   `json:"id"`
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Content         string   `json:"content" binding:"required"`
	RequiredNFTs    []string `json:"required_nfts"`
	Order           int      `json:"order"`
	ImageURL        string   `json:"image_url"`
	BlendID         string   `json:"blend_id"`
	CinematicEffect string   `json:"cinematic_effect"`
}

// UpdateSceneRequest is the admin payload for replacing a story scene
type UpdateSceneRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Content         string   `json:"content" binding:"required"`
	RequiredNFTs    []string `json:"required_nfts"`
	Order           int      `json:"order"`
	ImageURL        string   `json:"image_url"`
	BlendID         string   `json:"blend_id"`
	CinematicEffect string   `json:"cinematic_effect"`
}
