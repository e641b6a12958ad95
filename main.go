package main

import (
	"fmt"
	"log"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/routes"
	"github.com/amyssnippet/wavvy/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	if _, err := config.Load(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Business{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Package{},
		&models.Client{},
		&models.TeamMember{},
		&models.Appointment{},
		&models.OTP{},
		&models.Customer{},
	)
}

func main() {
	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + config.Cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
