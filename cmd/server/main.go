package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"vitanet.io/elder-care-service/pkg/auth"
	"vitanet.io/elder-care-service/pkg/care"
	"vitanet.io/elder-care-service/pkg/common"
	"vitanet.io/elder-care-service/pkg/db"
	careHttp "vitanet.io/elder-care-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	careDbType := os.Getenv(common.EnvKeyCareDBType)
	switch careDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown CARE_DB_TYPE: " + careDbType)
	}

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyCareJwtSecret))
	if jwtSecret == "" {
		log.Fatal("CARE_JWT_SECRET not set in .env")
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyCareHttpHostPort))

	logger := common.GetLogger()

	if os.Getenv(common.EnvKeyCareSeedDemo) == "true" {
		if err := dbInstance.SeedDemoData(); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	careCore := care.Care{
		Db:      *dbInstance,
		Metrics: care.NewRandomizedMetrics(),
	}
	careCore.WithAllServices()

	// limiter is optional: leave CARE_DEFAULT_RATE unset to run unlimited
	var limiterStore *care.RateLimiterStore
	if rawRate := os.Getenv(common.EnvKeyCareDefaultRate); rawRate != "" {
		var defaultRate float64
		var defaultBurst int64

		if defaultRate, err = strconv.ParseFloat(rawRate, 64); err != nil {
			log.Fatal("Invalid CARE_DEFAULT_RATE, should be a float64 value")
		}
		if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyCareDefaultBurst), 10, 64); err != nil {
			log.Fatal("Invalid CARE_DEFAULT_BURST, or not set in .env, should be an int value")
		}

		limiterStore = care.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst))
		logger.Info("per-device rate limiter enabled",
			zap.String("default_limiter",
				fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &careHttp.RestfulServer{
		Server:           gin.Default(),
		Care:             &careCore,
		Tokens:           auth.NewTokenService(jwtSecret),
		RateLimiterStore: limiterStore,
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
