package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fundraiser/internal/adapters/email"
	"fundraiser/internal/adapters/http/middleware"
	announcementStore "fundraiser/internal/adapters/storage/announcement"
	entryStore "fundraiser/internal/adapters/storage/entry"
	pinStore "fundraiser/internal/adapters/storage/pin"
	playerStore "fundraiser/internal/adapters/storage/player"
	raffleStore "fundraiser/internal/adapters/storage/raffle"
	"fundraiser/internal/domain/access"
)

// Stores holds all storage dependencies.
type Stores struct {
	EntryStore        entryStore.Store
	PlayerStore       playerStore.Store
	RaffleStore       raffleStore.Store
	PinStore          pinStore.Store
	AnnouncementStore announcementStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global access gate (set by NewMux)
var gate *access.Gate

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

var (
	emailFromAddress string
	emailReplyTo     string
	coachEmail       string
)

// SetEmailSender sets the claim-notification sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo, coach string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
	coachEmail = coach
}

// loadCSRFKey reads the CSRF secret from FUNDRAISER_CSRF_KEY (hex-encoded,
// 32 bytes). In production the key MUST be set; in development a random
// key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("FUNDRAISER_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FUNDRAISER_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("FUNDRAISER_ENV") == "production" {
		log.Fatal("FUNDRAISER_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set FUNDRAISER_CSRF_KEY for production.")
	return key
}

// trustedOrigins lists origins allowed to post forms, from
// FUNDRAISER_TRUSTED_ORIGINS (comma-separated) plus local defaults.
func trustedOrigins() []string {
	origins := []string{"localhost:8080", "127.0.0.1:8080"}
	if v := os.Getenv("FUNDRAISER_TRUSTED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return origins
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, g *access.Gate) http.Handler {
	stores = s
	gate = g
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("FUNDRAISER_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(loadCSRFKey(), trustedOrigins()),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
}
