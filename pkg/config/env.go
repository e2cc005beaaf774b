package config

// EnvPrefix scopes every variable the service reads.
const EnvPrefix = "AURUM"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "AURUM_DB_DSN"
	EnvDBHost = "AURUM_DB_HOST"
	EnvDBUser = "AURUM_DB_USER"
	EnvDBName = "AURUM_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
