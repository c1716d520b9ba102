package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Bootstrap BootstrapConfig
	Logger    LoggerConfig
	NewRelic  NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains token signing configuration. Access and refresh tokens
// are signed with separate secrets so a leak of one cannot mint the other.
type JWTConfig struct {
	AccessSecret      string
	RefreshSecret     string
	AccessExpiryMins  int
	RefreshExpiryDays int
	Issuer            string
}

// OTPConfig contains one-time-password policy configuration
type OTPConfig struct {
	ExpiryMinutes     int // OTP lifetime, fixed at creation
	MaxAttempts       int // verification attempts per request
	MaxPerWindow      int // issuance cap per phone+purpose
	RateWindowMinutes int // trailing window for the issuance cap
	BcryptCost        int // work factor for OTP hashing
}

// BootstrapConfig carries the environment-injected superadmin bootstrap
// credential. It is honored only while no superadmin account exists.
type BootstrapConfig struct {
	SuperadminPhone  string
	SuperadminSecret string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}
