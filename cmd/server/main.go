package main

import (
	"log"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handlers"
	"taskboard/internal/realtime"
	"taskboard/internal/routes"
	"taskboard/internal/store"
)

func main() {
	cfg := config.Load()

	// Init database
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}

	st := store.New(db)
	st.SeedUsers("Alice", "Bob")

	h := handlers.New(st, realtime.NewHub())
	ginRoutes := routes.SetupRoutes(h)

	// Start server
	log.Printf("Server starting on %s", cfg.Addr)
	log.Println("Pages and endpoints:")
	log.Println("  GET    /")
	log.Println("  POST   /")
	log.Println("  GET    /complete/:id")
	log.Println("  GET    /delete/:id")
	log.Println("  GET    /edit/:id")
	log.Println("  POST   /edit/:id")
	log.Println("  GET    /users")
	log.Println("  POST   /users")
	log.Println("  GET    /delete-user/:id")
	log.Println("  GET    /events")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
