// cmd/seed/main.go
//
// Seeds the users table with an initial roster. Passwords are bcrypt-hashed
// here, so plaintext never reaches the database.
package main

import (
	"worktrack-api/config"
	"worktrack-api/db"
	"worktrack-api/logger"
	"worktrack-api/model"
	"worktrack-api/repository"
	"worktrack-api/service"
)

type seedUser struct {
	model.User
	Password string
}

var roster = []seedUser{
	{
		User: model.User{
			EmployeeCode: "EMP-ADMIN001",
			Name:         "Admin",
			IDNumber:     "ADMIN001",
			Grade:        "IV/a",
			Position:     "Administrator",
			Username:     "admin",
			Role:         string(model.RoleAdmin),
			IsActive:     true,
		},
		Password: "admin123",
	},
	{
		User: model.User{
			EmployeeCode: "EMP-USER001",
			Name:         "John Doe",
			IDNumber:     "123456789",
			Grade:        "III/a",
			Position:     "Staff",
			Username:     "johndoe",
			Role:         string(model.RoleUser),
			IsActive:     true,
		},
		Password: "user123",
	},
}

func main() {
	config.LoadConfig(".")
	logger.Init()

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo, nil)

	for _, seed := range roster {
		hash, err := authService.HashPassword(seed.Password)
		if err != nil {
			logger.Log.Fatalf("Failed to hash password for %s: %v", seed.Username, err)
		}

		user := seed.User
		user.PasswordHash = hash

		if err := userRepo.Create(&user); err != nil {
			if err == repository.ErrDuplicate {
				logger.Log.WithField("username", user.Username).Warn("User already exists, skipping")
				continue
			}
			logger.Log.Fatalf("Failed to seed user %s: %v", user.Username, err)
		}
		logger.Log.WithField("username", user.Username).Info("User seeded")
	}
}
