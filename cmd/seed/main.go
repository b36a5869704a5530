// Command seed provisions a demo juice-delivery tenant with starter
// products, content, and an admin user. Safe to re-run: it skips
// anything that already exists.
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/freshstack/site-platform/internal/config"
	"github.com/freshstack/site-platform/internal/database"
	"github.com/freshstack/site-platform/internal/logging"
	"github.com/freshstack/site-platform/internal/models"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	db := database.DB

	var client models.Client
	err := db.Where("name = ?", "New Life Juice").First(&client).Error
	if err == nil {
		slog.Info("demo client already exists", "client_id", client.ID)
	} else {
		branding, _ := json.Marshal(map[string]interface{}{
			"colors": map[string]string{
				"primary":   "#2E7D32",
				"secondary": "#FFC107",
				"accent":    "#FF7043",
			},
		})
		domain := "newlifejuice.example.com"
		client = models.Client{
			Name:         "New Life Juice",
			Domain:       &domain,
			BusinessType: "juice-bar",
			Branding:     datatypes.JSON(branding),
		}
		if err := db.Create(&client).Error; err != nil {
			slog.Error("failed to create demo client", "error", err)
			os.Exit(1)
		}
		slog.Info("demo client created", "client_id", client.ID)
	}

	products := []struct {
		name, desc string
	}{
		{"Green Detox", "Kale, spinach, green apple, cucumber, and a squeeze of lemon."},
		{"Citrus Burst", "Orange, grapefruit, and ginger for a bright morning start."},
		{"Berry Antioxidant", "Blueberry, strawberry, and pomegranate blend."},
	}
	price := decimal.NewFromInt(18)
	for i, p := range products {
		var count int64
		db.Model(&models.Product{}).
			Where("client_id = ? AND name = ?", client.ID, p.name).
			Count(&count)
		if count > 0 {
			continue
		}
		product := models.Product{
			ClientID:    client.ID,
			Name:        p.name,
			Description: p.desc,
			Price:       price,
			Category:    "signature",
			SortOrder:   i + 1,
		}
		if err := db.Create(&product).Error; err != nil {
			slog.Error("failed to seed product", "name", p.name, "error", err)
			os.Exit(1)
		}
		slog.Info("product seeded", "name", p.name)
	}

	blocks := []models.ContentBlock{
		{
			ClientID:    client.ID,
			ContentType: "hero",
			Title:       "Fresh Pressed, Delivered Weekly",
			Body:        "Cold-pressed juice made from local produce, delivered to your door.",
			Active:      true,
		},
		{
			ClientID:    client.ID,
			ContentType: "about",
			Title:       "About New Life Juice",
			Body:        "We press every bottle the morning it ships. No concentrates, no added sugar.",
			Active:      true,
		},
	}
	for _, b := range blocks {
		var count int64
		db.Model(&models.ContentBlock{}).
			Where("client_id = ? AND content_type = ?", client.ID, b.ContentType).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&b).Error; err != nil {
			slog.Error("failed to seed content block", "type", b.ContentType, "error", err)
			os.Exit(1)
		}
		slog.Info("content block seeded", "type", b.ContentType)
	}

	adminEmail := getenv("SEED_ADMIN_EMAIL", "admin@newlifejuice.example.com")
	adminPassword := getenv("SEED_ADMIN_PASSWORD", "")
	if adminPassword == "" {
		slog.Info("SEED_ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	var userCount int64
	db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&userCount)
	if userCount > 0 {
		slog.Info("admin user already exists", "email", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash admin password", "error", err)
		os.Exit(1)
	}
	user := models.User{
		ClientID:  &client.ID,
		Email:     adminEmail,
		Password:  string(hash),
		FirstName: "Site",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		slog.Error("failed to create admin user", "error", err)
		os.Exit(1)
	}
	slog.Info("admin user created", "email", adminEmail)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
