package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Mpesa    MpesaConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MpesaConfig contains the active Daraja gateway credential set.
// It is read-only to this service; ownership sits with the deployment
// configuration. Incomplete credentials fail any gateway operation.
type MpesaConfig struct {
	Environment    string // sandbox or production
	ShortCode      string
	ConsumerKey    string
	ConsumerSecret string
	Passkey        string
	InitiatorName  string
	CallbackURL    string
	ResultURL      string
	TimeoutURL     string
	RequestTimeout int // in seconds, bounds every outbound gateway call
}

// BaseURL returns the Daraja API base URL for the configured environment
func (m MpesaConfig) BaseURL() string {
	if m.Environment == "production" {
		return "https://api.safaricom.co.ke"
	}
	return "https://sandbox.safaricom.co.ke"
}

// Complete reports whether the credential set is usable for gateway calls
func (m MpesaConfig) Complete() bool {
	return m.ShortCode != "" && m.ConsumerKey != "" && m.ConsumerSecret != "" && m.Passkey != ""
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	AppName     string
	LicenseKey  string
	ForwardLogs bool
}
