package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "fundraiser/internal/adapters/email"
	web "fundraiser/internal/adapters/http"
	"fundraiser/internal/adapters/storage"
	announcementStore "fundraiser/internal/adapters/storage/announcement"
	entryStore "fundraiser/internal/adapters/storage/entry"
	pinStore "fundraiser/internal/adapters/storage/pin"
	playerStore "fundraiser/internal/adapters/storage/player"
	raffleStore "fundraiser/internal/adapters/storage/raffle"
	"fundraiser/internal/application/orchestrators"
	"fundraiser/internal/domain/access"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	dbPath := envOrDefault("FUNDRAISER_DB", "fundraiser.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	stores := &web.Stores{
		EntryStore:        entryStore.NewSQLiteStore(db),
		PlayerStore:       playerStore.NewSQLiteStore(db),
		RaffleStore:       raffleStore.NewSQLiteStore(db),
		PinStore:          pinStore.NewSQLiteStore(db),
		AnnouncementStore: announcementStore.NewSQLiteStore(db),
	}

	if err := orchestrators.ExecuteSeedRoster(context.Background(), orchestrators.SeedRosterDeps{
		PlayerStore:       stores.PlayerStore,
		AnnouncementStore: stores.AnnouncementStore,
	}); err != nil {
		log.Fatalf("failed to seed roster: %v", err)
	}

	passphrase := os.Getenv("FUNDRAISER_ADMIN_PASSPHRASE")
	if passphrase == "" {
		if os.Getenv("FUNDRAISER_ENV") == "production" {
			log.Fatal("FUNDRAISER_ADMIN_PASSPHRASE is required in production")
		}
		passphrase = "go team"
		log.Println("WARNING: using default admin passphrase. Set FUNDRAISER_ADMIN_PASSPHRASE for production.")
	}
	gate, err := access.NewGate(passphrase)
	if err != nil {
		log.Fatalf("failed to hash admin passphrase: %v", err)
	}

	// Claim notifications to the coach are best-effort; without a key
	// they are logged instead of sent.
	resendKey := os.Getenv("FUNDRAISER_RESEND_KEY")
	emailFrom := envOrDefault("FUNDRAISER_EMAIL_FROM", "Calendar Fundraiser <noreply@example.org>")
	emailReply := envOrDefault("FUNDRAISER_REPLY_TO", "")
	coach := os.Getenv("FUNDRAISER_COACH_EMAIL")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailReply, coach)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailReply, coach)
		log.Println("Email sender configured (noop, set FUNDRAISER_RESEND_KEY for real delivery)")
	}

	mux := web.NewMux("static", stores, gate)

	addr := envOrDefault("FUNDRAISER_ADDR", ":8080")
	log.Printf("Fundraiser %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("FUNDRAISER_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
