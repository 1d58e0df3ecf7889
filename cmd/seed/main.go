package main

import (
	"log"
	"os"

	"aerotours/internal/database"
	"aerotours/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "aerotours.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM contact_requests")
	db.Exec("DELETE FROM destinations")
	db.Exec("DELETE FROM air_tours")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM site_images")
	db.Exec("DELETE FROM contact_info")
	db.Exec("DELETE FROM settings")
	db.Exec("DELETE FROM admin_users")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.AdminUser{
		Email:        "admin@aerotours.mx",
		PasswordHash: string(adminHash),
		Name:         "Administrador",
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("admin user:", err)
	}

	// ================== DESTINATIONS ==================
	log.Println("Creating destinations...")

	destinations := []domain.Destination{
		{
			Slug:          "holbox",
			NameEs:        "Holbox",
			NameEn:        "Holbox",
			DescriptionEs: "Isla paradisíaca al norte de Quintana Roo, libre de autos.",
			DescriptionEn: "Car-free paradise island north of Quintana Roo.",
			LongDescriptionEs: "Vuela directo a Holbox y evita el ferry. Playas de arena blanca, " +
				"tiburón ballena en temporada y atardeceres únicos.",
			LongDescriptionEn: "Fly straight to Holbox and skip the ferry. White sand beaches, " +
				"whale sharks in season and one-of-a-kind sunsets.",
			HighlightsEs: domain.StringList{"Vuelo directo 35 min", "Sin ferry", "Avistamiento de tiburón ballena"},
			HighlightsEn: domain.StringList{"Direct 35 min flight", "No ferry", "Whale shark watching"},
			ImageURL:     "/images/destinations/holbox.jpg",
			Gallery: domain.StringList{
				"/images/destinations/holbox-1.jpg",
				"/images/destinations/holbox-2.jpg",
			},
			FlightTime: "35 min",
			PriceFrom:  650,
			AircraftPricing: domain.AircraftPricing{
				{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 650},
				{Aircraft: "Cessna Grand Caravan", MaxPassengers: 12, Price: 1400},
			},
			IsActive:     true,
			DisplayOrder: 1,
		},
		{
			Slug:          "isla-mujeres",
			NameEs:        "Isla Mujeres",
			NameEn:        "Isla Mujeres",
			DescriptionEs: "La isla más cercana a Cancún, perfecta para una escapada corta.",
			DescriptionEn: "The closest island to Cancun, perfect for a short getaway.",
			HighlightsEs:  domain.StringList{"Vuelo panorámico de llegada", "Playa Norte"},
			HighlightsEn:  domain.StringList{"Scenic approach", "Playa Norte"},
			ImageURL:      "/images/destinations/isla-mujeres.jpg",
			FlightTime:    "15 min",
			PriceFrom:     450,
			AircraftPricing: domain.AircraftPricing{
				{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 450},
			},
			IsActive:     true,
			DisplayOrder: 2,
		},
		{
			Slug:          "cozumel",
			NameEs:        "Cozumel",
			NameEn:        "Cozumel",
			DescriptionEs: "La capital del buceo en el Caribe mexicano.",
			DescriptionEn: "The diving capital of the Mexican Caribbean.",
			ImageURL:      "/images/destinations/cozumel.jpg",
			FlightTime:    "25 min",
			PriceFrom:     550,
			AircraftPricing: domain.AircraftPricing{
				{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 550},
				{Aircraft: "Piper Aztec", MaxPassengers: 4, Price: 750},
			},
			IsActive:     true,
			DisplayOrder: 3,
		},
		{
			Slug:          "chichen-itza",
			NameEs:        "Chichén Itzá",
			NameEn:        "Chichen Itza",
			DescriptionEs: "Una de las siete maravillas del mundo moderno, sin horas de carretera.",
			DescriptionEn: "One of the seven wonders of the modern world, without hours on the road.",
			ImageURL:      "/images/destinations/chichen-itza.jpg",
			FlightTime:    "50 min",
			PriceFrom:     1200,
			AircraftPricing: domain.AircraftPricing{
				{Aircraft: "Cessna Grand Caravan", MaxPassengers: 12, Price: 2400},
				{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 1200},
			},
			IsActive:     true,
			DisplayOrder: 4,
		},
	}
	for i := range destinations {
		if err := db.Create(&destinations[i]).Error; err != nil {
			log.Fatal("destination:", err)
		}
	}

	// ================== AIR TOURS ==================
	log.Println("Creating air tours...")

	tours := []domain.AirTour{
		{
			Slug:          "zona-hotelera",
			NameEs:        "Zona Hotelera de Cancún",
			NameEn:        "Cancun Hotel Zone",
			DescriptionEs: "Sobrevuela la laguna Nichupté y la franja hotelera.",
			DescriptionEn: "Fly over the Nichupte lagoon and the hotel strip.",
			HighlightsEs:  domain.StringList{"Vista de la laguna", "Playa Delfines desde el aire"},
			HighlightsEn:  domain.StringList{"Lagoon views", "Playa Delfines from above"},
			ImageURL:      "/images/tours/zona-hotelera.jpg",
			Gallery: domain.StringList{
				"/images/tours/zona-hotelera-1.jpg",
				"/images/tours/zona-hotelera-2.jpg",
				"/images/tours/zona-hotelera-3.jpg",
			},
			DurationMinutes: 30,
			PriceFrom:       350,
			AircraftPricing: domain.AircraftPricing{
				{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 350},
			},
			IsActive:     true,
			DisplayOrder: 1,
		},
		{
			Slug:            "isla-contoy",
			NameEs:          "Isla Contoy",
			NameEn:          "Contoy Island",
			DescriptionEs:   "Reserva natural protegida, hogar de miles de aves marinas.",
			DescriptionEn:   "Protected nature reserve, home to thousands of sea birds.",
			ImageURL:        "/images/tours/isla-contoy.jpg",
			DurationMinutes: 60,
			PriceFrom:       600,
			AircraftPricing: domain.AircraftPricing{
				{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 600},
			},
			IsActive:     true,
			DisplayOrder: 2,
		},
		{
			Slug:            "riviera-maya",
			NameEs:          "Riviera Maya",
			NameEn:          "Riviera Maya",
			DescriptionEs:   "De Puerto Morelos a Tulum siguiendo la costa turquesa.",
			DescriptionEn:   "From Puerto Morelos to Tulum along the turquoise coast.",
			ImageURL:        "/images/tours/riviera-maya.jpg",
			DurationMinutes: 90,
			PriceFrom:       900,
			AircraftPricing: domain.AircraftPricing{
				{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 900},
				{Aircraft: "Cessna Grand Caravan", MaxPassengers: 12, Price: 1800},
			},
			IsActive:     true,
			DisplayOrder: 3,
		},
	}
	for i := range tours {
		if err := db.Create(&tours[i]).Error; err != nil {
			log.Fatal("air tour:", err)
		}
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")

	services := []domain.SiteService{
		{
			Icon:          string(domain.IconPlane),
			TitleEs:       "Vuelos privados",
			TitleEn:       "Private flights",
			DescriptionEs: "Charters a cualquier destino de la península.",
			DescriptionEn: "Charters to any destination on the peninsula.",
			IsActive:      true,
			DisplayOrder:  1,
		},
		{
			Icon:          string(domain.IconClock),
			TitleEs:       "Salidas flexibles",
			TitleEn:       "Flexible departures",
			DescriptionEs: "Horarios a tu medida, todos los días del año.",
			DescriptionEn: "Schedules that fit you, every day of the year.",
			IsActive:      true,
			DisplayOrder:  2,
		},
		{
			Icon:          string(domain.IconShield),
			TitleEs:       "Seguridad certificada",
			TitleEn:       "Certified safety",
			DescriptionEs: "Pilotos comerciales y mantenimiento al día.",
			DescriptionEn: "Commercial pilots and up-to-date maintenance.",
			IsActive:      true,
			DisplayOrder:  3,
		},
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			log.Fatal("service:", err)
		}
	}

	// ================== IMAGES ==================
	log.Println("Creating site images...")

	images := []domain.SiteImage{
		{Section: "hero", URL: "/images/hero/cessna-sunset.jpg", AltEs: "Cessna al atardecer", AltEn: "Cessna at sunset", IsActive: true, DisplayOrder: 1},
		{Section: "hero", URL: "/images/hero/caribbean-coast.jpg", AltEs: "Costa del Caribe", AltEn: "Caribbean coast", IsActive: true, DisplayOrder: 2},
		{Section: "about", URL: "/images/about/hangar.jpg", AltEs: "Nuestro hangar", AltEn: "Our hangar", IsActive: true, DisplayOrder: 1},
	}
	for i := range images {
		if err := db.Create(&images[i]).Error; err != nil {
			log.Fatal("image:", err)
		}
	}

	// ================== CONTACT INFO / SETTINGS ==================
	log.Println("Creating contact info and settings...")

	info := domain.ContactInfo{
		Phone:      "+52 998 123 4567",
		WhatsApp:   "+52 998 123 4567",
		Email:      "reservas@aerotours.mx",
		Address:    "Hangar 12, Aeropuerto Internacional de Cancún",
		ScheduleEs: "Lun-Dom 6:00-20:00",
		ScheduleEn: "Mon-Sun 6:00am-8:00pm",
	}
	if err := db.Create(&info).Error; err != nil {
		log.Fatal("contact info:", err)
	}

	settings := []domain.Setting{
		{Key: "site_name", Value: "AeroTours Cancún"},
		{Key: "default_language", Value: "es"},
		{Key: "booking_notice_hours", Value: "24"},
	}
	for i := range settings {
		if err := db.Create(&settings[i]).Error; err != nil {
			log.Fatal("setting:", err)
		}
	}

	log.Println("Seed complete.")
	log.Println("Admin login: admin@aerotours.mx / admin123")
}
