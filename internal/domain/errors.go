package domain

import "errors"

var (
	// ErrProgressNotFound is returned when no progress is stored for an account
	ErrProgressNotFound = errors.New("progress not found")

	// ErrSceneNotFound is returned when a scene is not found
	ErrSceneNotFound = errors.New("scene not found")

	// ErrSceneAlreadyExists is returned when creating a scene with a taken id
	ErrSceneAlreadyExists = errors.New("scene already exists")
)
