package main

import (
	"log"

	"frolftracker/config"
	"frolftracker/database"
	"frolftracker/middleware"
	"frolftracker/routes/api"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
	config.Load()

	database.InitDB()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type"},
	}))

	api.Register(r)

	middleware.UpdateRuntimeMetrics()
	middleware.UpdateSystemMetrics()

	log.Println("frolftracker API listening on port " + config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatal(err)
	}
}
