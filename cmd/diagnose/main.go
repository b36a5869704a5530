// Command diagnose checks the deployment environment: required env vars,
// database connectivity, and table presence. Exits non-zero on failure so
// it can gate a deploy.
package main

import (
	"fmt"
	"os"

	"github.com/freshstack/site-platform/internal/config"
	"github.com/freshstack/site-platform/internal/database"
)

func main() {
	cfg := config.Load()
	failed := false

	report := func(name, status, detail string) {
		if detail != "" {
			fmt.Printf("%-28s %-5s %s\n", name, status, detail)
		} else {
			fmt.Printf("%-28s %s\n", name, status)
		}
	}

	// Hard requirements. detail is the failure hint, shown only on FAIL.
	check := func(name string, ok bool, detail string) {
		if ok {
			report(name, "ok", "")
			return
		}
		failed = true
		report(name, "FAIL", detail)
	}

	// Optional config. The server runs without it and answers 503 on the
	// affected endpoints, so an unset value warns instead of failing.
	warn := func(name string, ok bool, detail string) {
		if ok {
			report(name, "ok", "")
			return
		}
		report(name, "warn", detail)
	}

	check("JWT_SECRET", cfg.JWTSecret != "", "required")
	check("DB_PASSWORD", cfg.DBPassword != "", "required")
	warn("admin auth", cfg.AdminConfigured(), "ADMIN_PASSWORD unset: legacy dashboard auth disabled")
	warn("AI provider", cfg.AIConfigured(), "OPENAI_API_KEY unset: /api/ai-assistant returns 503")
	warn("object storage", cfg.StorageConfigured(), "storage credentials unset: uploads return 503")

	if err := database.Connect(cfg); err != nil {
		check("database connection", false, err.Error())
		os.Exit(1)
	}
	check("database connection", true, "")

	if err := database.Ping(); err != nil {
		check("database ping", false, err.Error())
		os.Exit(1)
	}
	check("database ping", true, "")

	migrator := database.DB.Migrator()
	for _, model := range database.AllModels() {
		name := fmt.Sprintf("%T", model)
		if !migrator.HasTable(model) {
			check("table "+name, false, "missing")
			continue
		}
		var rows int64
		if err := database.DB.Model(model).Count(&rows).Error; err != nil {
			check("table "+name, false, err.Error())
			continue
		}
		report("table "+name, "ok", fmt.Sprintf("%d rows", rows))
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("all checks passed")
}
