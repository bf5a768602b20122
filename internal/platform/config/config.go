package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// ApproverRoles is the set of roles allowed to resolve requests and
	// proposals and to write direct adjustments.
	ApproverRoles domain.ApproverRoles

	// RateLimit is a limiter format string, e.g. "100-M" for 100 req/min.
	RateLimit string

	// CORSAllowedOrigins is a comma-separated origin list; "*" allows all.
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "budget-ledger")
	viper.SetDefault("APPROVER_ROLES", "FINANCE_HEAD,ADMIN")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ApproverRoles = parseApproverRoles(viper.GetString("APPROVER_ROLES"))

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")

	return cfg, nil
}

// parseApproverRoles turns a comma-separated role list into the approver set,
// skipping anything that is not a known role.
func parseApproverRoles(raw string) domain.ApproverRoles {
	roles := []domain.Role{}
	for _, part := range strings.Split(raw, ",") {
		role, err := domain.ParseRole(strings.TrimSpace(part))
		if err != nil {
			log.Printf("Warning: ignoring unknown approver role %q\n", part)
			continue
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		log.Println("Warning: APPROVER_ROLES resolved to an empty set. Defaulting to FINANCE_HEAD,ADMIN.")
		roles = []domain.Role{domain.RoleFinanceHead, domain.RoleAdmin}
	}
	return domain.NewApproverRoles(roles...)
}
