package seeds

import (
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
)

// SeedEvents loads the demo catalog: a solo workshop, a team competition and
// a hackathon with domains. Skips any event whose name already exists.
func SeedEvents() {
	log.Println("🎪 Seeding Events...")

	day := func(d int, hour int) time.Time {
		return time.Date(2026, time.October, d, hour, 0, 0, 0, time.UTC)
	}

	events := []models.Event{
		{
			ID:           utils.GenerateID(),
			Name:         "Intro to Cloud Workshop",
			Description:  "Hands-on workshop covering cloud fundamentals and deployment.",
			Introduction: "Bring a laptop. No prior cloud experience needed.",
			Fees:         0,
			Category:     "Workshop",
			Venue:        "Seminar Hall A",
			TeamSizeMin:  1,
			TeamSizeMax:  1,
			IsActive:     true,
			Contact:      datatypes.NewJSONSlice([]string{"workshops@xenia.dev"}),
			Schedule: datatypes.NewJSONSlice([]models.ScheduleItem{
				{Round: 1, Datetime: day(12, 10)},
			}),
		},
		{
			ID:           utils.GenerateID(),
			Name:         "RoboWars",
			Description:  "Build a bot, enter the arena, last machine standing wins.",
			Introduction: "Teams of 2-4. Bots must pass the weight check at registration.",
			Fees:         500,
			Category:     "Competition",
			Venue:        "Main Ground",
			TeamSizeMin:  2,
			TeamSizeMax:  4,
			IsActive:     true,
			Contact:      datatypes.NewJSONSlice([]string{"robowars@xenia.dev"}),
			Prizes: datatypes.NewJSONSlice([]models.Prize{
				{Position: 1, Prize: 15000, Label: "Winner"},
				{Position: 2, Prize: 7500, Label: "Runner Up"},
			}),
			Schedule: datatypes.NewJSONSlice([]models.ScheduleItem{
				{Round: 1, Datetime: day(13, 9)},
				{Round: 2, Datetime: day(14, 14)},
			}),
			Rules: datatypes.NewJSONSlice([]models.Rule{
				{Round: 1, RoundName: "Qualifiers", RoundRules: []string{
					"Bots must weigh under 15kg",
					"No projectile weapons",
				}},
			}),
		},
		{
			ID:           utils.GenerateID(),
			Name:         "Hack-X 2026",
			Description:  "24-hour hackathon. Pick a domain, pick a problem, ship something.",
			Introduction: "Teams of 2-5. Meals provided. Judging on demo day.",
			Fees:         800,
			Category:     "Hackathon",
			Venue:        "Innovation Lab",
			TeamSizeMin:  2,
			TeamSizeMax:  5,
			IsActive:     true,
			IsHackathon:  true,
			Contact:      datatypes.NewJSONSlice([]string{"hackx@xenia.dev"}),
			Prizes: datatypes.NewJSONSlice([]models.Prize{
				{Position: 1, Prize: 50000, Label: "Grand Prize"},
				{Position: 2, Prize: 25000, Label: "First Runner Up"},
			}),
			Platforms: datatypes.NewJSONSlice([]models.Platform{
				{Name: "Discord", Link: "https://discord.gg/xenia-hackx"},
			}),
			Schedule: datatypes.NewJSONSlice([]models.ScheduleItem{
				{Round: 1, Datetime: day(13, 8)},
			}),
			Domains: datatypes.NewJSONSlice([]models.HackathonDomain{
				{
					DomainID:    "fintech",
					Name:        "FinTech",
					Description: "Payments, lending and personal finance.",
					ProblemStatements: []models.ProblemStatement{
						{PSID: "fintech-1", Title: "UPI spend analyzer for students", Difficulty: "Medium"},
						{PSID: "fintech-2", Title: "Micro-savings round-up engine", Difficulty: "Hard"},
					},
				},
				{
					DomainID:    "healthtech",
					Name:        "HealthTech",
					Description: "Accessibility and preventive care.",
					ProblemStatements: []models.ProblemStatement{
						{PSID: "health-1", Title: "Campus mental-health check-in bot", Difficulty: "Easy"},
						{PSID: "health-2", Title: "Vaccination record wallet", Difficulty: "Medium"},
					},
				},
			}),
		},
	}

	for _, event := range events {
		var count int64
		database.DB.Model(&models.Event{}).Where("name = ?", event.Name).Count(&count)
		if count > 0 {
			log.Printf("   ⏭️  %s already exists, skipping", event.Name)
			continue
		}
		if err := database.DB.Create(&event).Error; err != nil {
			log.Printf("   ❌ Failed to seed %s: %v", event.Name, err)
			continue
		}
		log.Printf("   ✅ Seeded %s", event.Name)
	}
}
