package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyCareDBType string = "CARE_DB_TYPE"
	EnvKeyCareDbPath string = "CARE_DB_PATH"

	EnvKeyCareHttpHostPort string = "CARE_HTTP_HOST_PORT"

	EnvKeyCareDefaultRate  string = "CARE_DEFAULT_RATE"
	EnvKeyCareDefaultBurst string = "CARE_DEFAULT_BURST"

	EnvKeyCareJwtSecret string = "CARE_JWT_SECRET"
	EnvKeyCareSeedDemo  string = "CARE_SEED_DEMO"

	LoggerNameCareCore      string = "care_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCareCategory string = "category"

	LoggerCategoryDevice    string = "device"
	LoggerCategoryTelemetry string = "telemetry"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryReminder  string = "reminder"
	LoggerCategoryPatient   string = "patient"
	LoggerCategoryAccount   string = "account"
	LoggerCategoryAdmin     string = "admin"
)
