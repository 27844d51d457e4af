package main

import (
	"context"
	"log"

	"globetrotter/internal/config"
	"globetrotter/internal/infra"
	"globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
)

// Seeds the city/activity catalog. Safe to run repeatedly: does nothing when
// cities already exist.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := infra.InitPostgresql(cfg)
	defer infra.ClosePostgresql(db)

	catalog := repositories.NewCatalogRepository(db)
	ctx := context.Background()

	count, err := catalog.CountCities(ctx)
	if err != nil {
		log.Fatalf("Failed to check catalog: %v", err)
	}
	if count > 0 {
		log.Println("Catalog already seeded")
		return
	}

	cities := []db_models.City{
		{
			Name:        "Paris",
			Country:     "France",
			Region:      "Europe",
			ImageURL:    "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=600",
			CostIndex:   "expensive",
			Rating:      4.9,
			Description: "The City of Lights, known for its art, fashion, and romantic atmosphere.",
		},
		{
			Name:        "Tokyo",
			Country:     "Japan",
			Region:      "Asia",
			ImageURL:    "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=600",
			CostIndex:   "expensive",
			Rating:      4.8,
			Description: "A dazzling blend of ultra-modern and traditional Japanese culture.",
		},
		{
			Name:        "Barcelona",
			Country:     "Spain",
			Region:      "Europe",
			ImageURL:    "https://images.unsplash.com/photo-1583422409516-2895a77efded?w=600",
			CostIndex:   "moderate",
			Rating:      4.7,
			Description: "Mediterranean vibes with stunning Gaudí architecture and beaches.",
		},
		{
			Name:        "Bali",
			Country:     "Indonesia",
			Region:      "Asia",
			ImageURL:    "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=600",
			CostIndex:   "budget",
			Rating:      4.7,
			Description: "Tropical paradise with spiritual temples and lush landscapes.",
		},
		{
			Name:        "New York",
			Country:     "USA",
			Region:      "Americas",
			ImageURL:    "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=600",
			CostIndex:   "luxury",
			Rating:      4.8,
			Description: "The city that never sleeps, a global hub of culture and commerce.",
		},
	}

	log.Println("Seeding cities...")
	if err := catalog.InsertCities(ctx, cities); err != nil {
		log.Fatalf("Failed to seed cities: %v", err)
	}

	byName := map[string]db_models.City{}
	for _, c := range cities {
		byName[c.Name] = c
	}

	activities := []db_models.Activity{
		{CityID: byName["Paris"].ID, Name: "Eiffel Tower Visit", Category: "sightseeing", Cost: 28.0, DurationMinutes: 120, Description: "Ascend the iron lady for panoramic city views."},
		{CityID: byName["Paris"].ID, Name: "Louvre Museum Tour", Category: "culture", Cost: 17.0, DurationMinutes: 180, Description: "Home of the Mona Lisa and thousands of masterpieces."},
		{CityID: byName["Tokyo"].ID, Name: "Senso-ji Temple Walk", Category: "culture", Cost: 0.0, DurationMinutes: 90, Description: "Tokyo's oldest temple in historic Asakusa."},
		{CityID: byName["Tokyo"].ID, Name: "Tsukiji Food Crawl", Category: "food", Cost: 45.0, DurationMinutes: 150, Description: "Street food and sushi at the famous outer market."},
		{CityID: byName["Barcelona"].ID, Name: "Sagrada Familia Tour", Category: "sightseeing", Cost: 26.0, DurationMinutes: 120, Description: "Gaudí's unfinished basilica, a modernist icon."},
		{CityID: byName["Bali"].ID, Name: "Ubud Rice Terrace Trek", Category: "adventure", Cost: 15.0, DurationMinutes: 240, Description: "Walk the emerald Tegallalang terraces."},
		{CityID: byName["New York"].ID, Name: "Central Park Bike Ride", Category: "adventure", Cost: 20.0, DurationMinutes: 120, Description: "Loop the park's lakes, lawns, and bridges."},
	}

	log.Println("Seeding activities...")
	if err := catalog.InsertActivities(ctx, activities); err != nil {
		log.Fatalf("Failed to seed activities: %v", err)
	}

	log.Println("Catalog seeded")
}
