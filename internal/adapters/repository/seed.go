package repository

import "showcase/internal/domain/model"

// Seed records served by the mock backend. Constructed fresh per store so a
// store never shares backing arrays with another.

func seedProjects() []model.Project {
	return []model.Project{
		{
			ID:          1,
			Title:       "Weather Dashboard",
			Description: "A responsive dashboard showing live weather data with hourly and weekly forecasts.",
			Technologies: []string{
				"React", "TypeScript", "OpenWeather API", "Chart.js",
			},
			Difficulty: model.DifficultyIntermediate,
			Season:     "Spring 2025",
			Status:     "completed",
			Featured:   true,
			Score:      92.5,
			Students: []model.ProjectStudent{
				{ID: 1, Name: "Maya Chen", AvatarURL: "/uploads/avatars/maya.png"},
				{ID: 2, Name: "Luis Ortega", AvatarURL: "/uploads/avatars/luis.png"},
			},
		},
		{
			ID:          2,
			Title:       "Recipe Finder",
			Description: "Search and save recipes by ingredient, with offline support and shopping lists.",
			Technologies: []string{
				"Vue", "Node.js", "MongoDB",
			},
			Difficulty: model.DifficultyBeginner,
			Season:     "Fall 2024",
			Status:     "in-progress",
			Featured:   false,
			Score:      78.0,
			Students: []model.ProjectStudent{
				{ID: 2, Name: "Luis Ortega", AvatarURL: "/uploads/avatars/luis.png"},
			},
		},
	}
}

func seedStudents() []model.Student {
	return []model.Student{
		{
			ID:           1,
			Name:         "Maya Chen",
			Email:        "maya.chen@example.com",
			AvatarURL:    "/uploads/avatars/maya.png",
			Bio:          "Front-end enthusiast who cares about accessible, fast interfaces.",
			CurrentLevel: "Advanced",
			TotalScore:   184.5,
			Skills: []model.Skill{
				{Name: "JavaScript", Level: 5},
				{Name: "CSS", Level: 4},
				{Name: "Testing", Level: 3},
			},
		},
		{
			ID:           2,
			Name:         "Luis Ortega",
			Email:        "luis.ortega@example.com",
			AvatarURL:    "/uploads/avatars/luis.png",
			Bio:          "Full-stack student developer, currently exploring databases and APIs.",
			CurrentLevel: "Intermediate",
			TotalScore:   141.0,
			Skills: []model.Skill{
				{Name: "Node.js", Level: 4},
				{Name: "SQL", Level: 2},
				{Name: "Docker", Level: 1},
			},
		},
	}
}
