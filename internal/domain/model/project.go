// Package model contains domain models passed between layers.
package model

// Difficulty labels a project's difficulty level.
type Difficulty string

// Recognized difficulty labels.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Project represents a showcased project. Records are static and identical
// across requests; there is no write path.
type Project struct {
	ID           int              `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Technologies []string         `json:"technologies"`
	Difficulty   Difficulty       `json:"difficulty"`
	Season       string           `json:"season"`
	Status       string           `json:"status"`
	Featured     bool             `json:"featured"`
	Score        float64          `json:"score"`
	Students     []ProjectStudent `json:"students"`
}

// ProjectStudent is the embedded subset of a student attached to a project.
type ProjectStudent struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
