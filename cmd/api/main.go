package main

import (
    "fmt"
    "log"

    "ktadmin/internal/config"
    "ktadmin/internal/db"
    httpserver "ktadmin/internal/http"
    "ktadmin/internal/models"
    "ktadmin/internal/seed"
)

func main() {
    cfg := config.Load()

    gdb := db.Connect(cfg.DSN)
    db.AutoMigrate(gdb,
        &models.Organization{},
        &models.Application{},
        &models.Menu{},
        &models.User{},
        &models.Role{},
        &models.Permission{},
        &models.UserRole{},
        &models.TypeOption{},
        &models.Attachment{},
        &models.AuditLog{},
    )

    if err := seed.FirstSetup(gdb); err != nil {
        log.Fatalf("❌ Seed failed: %v", err)
    }

    r := httpserver.NewRouter(gdb, cfg)
    log.Printf("🚀 Server listening on :%s\n", cfg.AppPort)
    if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
        log.Fatalf("❌ Server stopped: %v", err)
    }
}
