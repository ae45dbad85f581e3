package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imalriyad/bistro-boss-server/configs"
	"github.com/imalriyad/bistro-boss-server/routes"
)

func main() {
	cfg := configs.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := configs.ConnectDB(ctx, cfg)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	log.Println("connected to MongoDB")

	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Bistro Boss Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
