package config

type Config interface {
	EnvConfig
	StorageConfig
	IdentityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetLoginPath() string
	GetEnv() string
}

type StorageConfig interface {
	GetStorageBackend() string
	GetDataFolder() string
	GetRedisAddr() string
	GetRedisPrefix() string
}

type IdentityConfig interface {
	GetDefaultAdminName() string
	GetDefaultAdminEmail() string
}

type mainConfig struct {
	EnvVars
	Storage
	DefaultIdentity
}

func New() Config {
	return mainConfig{}
}
