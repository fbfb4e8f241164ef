package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/parthdk16/Restaurant-Management-System-sub001/configs"
	"github.com/parthdk16/Restaurant-Management-System-sub001/middlewares"
	"github.com/parthdk16/Restaurant-Management-System-sub001/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedStarterData(); err != nil {
		log.Fatalf("seed starter data failed: %v", err)
	}

	rdb := configs.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded menu photos
	r.Static("/uploads", "./"+cfg.UploadDir)

	if err := routes.RegisterRoutes(r, db, cfg, rdb); err != nil {
		log.Fatalf("register routes failed: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
