package main

import (
	"log"

	"github.com/Krithish69/Restaurant/cmd/config"
	migration "github.com/Krithish69/Restaurant/cmd/database/migrate"
	"github.com/Krithish69/Restaurant/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer config.CloseDB(db)

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to listen on port %s: %v", port, err)
	}
}
