package seeds

import (
	"log"

	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
)

// GetOrCreateAdminUser ensures a fallback admin exists for fresh databases.
// Real users arrive through the identity-provider webhook; this one only
// exists so the admin panel is reachable before the first sync.
func GetOrCreateAdminUser() (models.User, error) {
	log.Println("👤 Checking Admin User...")

	email := "admin@xenia.dev"

	var user models.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		log.Printf("   ✅ Admin found: %s", user.Email)
		return user, nil
	}

	user = models.User{
		ID:        utils.GenerateID(),
		ClerkID:   "seed_admin",
		Email:     email,
		FirstName: "Xenia",
		LastName:  "Admin",
		College:   "Xenia Organizing Committee",
		IsAdmin:   true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	log.Printf("   ✅ Admin created: %s", user.Email)
	return user, nil
}
