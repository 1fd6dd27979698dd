package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar    = "PORT"
	appNameVar    = "APP_NAME"
	loginPathVar  = "LOGIN_PATH"
	envVar        = "ENV"
	backendVar    = "STORAGE_BACKEND"
	dataFolderVar = "DATA_FOLDER"
	redisAddrVar  = "REDIS_ADDR"
	redisPrefVar  = "REDIS_PREFIX"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Console Auth")
}

func (EnvVars) GetLoginPath() string {
	return GetEnv(loginPathVar, "/login")
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, "development")
}

type Storage struct{}

var _ StorageConfig = Storage{}

// GetStorageBackend selects the kv backend: "file" (default) or "redis".
func (Storage) GetStorageBackend() string {
	return GetEnv(backendVar, "file")
}

func (Storage) GetDataFolder() string {
	return GetEnv(dataFolderVar, "data")
}

func (Storage) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "localhost:6379")
}

func (Storage) GetRedisPrefix() string {
	return GetEnv(redisPrefVar, "consoleauth:")
}

type DefaultIdentity struct{}

var _ IdentityConfig = DefaultIdentity{}

func (DefaultIdentity) GetDefaultAdminName() string {
	return GetEnv("DEFAULT_ADMIN_NAME", "Console Admin")
}

func (DefaultIdentity) GetDefaultAdminEmail() string {
	return GetEnv("DEFAULT_ADMIN_EMAIL", "admin@example.com")
}

func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
