package model

// Skill level bounds.
const (
	SkillLevelMin = 1
	SkillLevelMax = 5
)

// Student represents a showcased student profile.
type Student struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	AvatarURL    string  `json:"avatar_url"`
	Bio          string  `json:"bio"`
	CurrentLevel string  `json:"current_level"`
	TotalScore   float64 `json:"total_score"`
	Skills       []Skill `json:"skills"`
}

// Skill is a (name, proficiency) pair. Level is always within
// [SkillLevelMin, SkillLevelMax].
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}
