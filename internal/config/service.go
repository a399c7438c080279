package config

type ServiceConfig struct {
	Name        string         `yaml:"name"`
	Environment string         `yaml:"environment"`
	Version     string         `yaml:"version"`
	ClientURL   string         `yaml:"client_url"`
	Supabase    SupabaseConfig `yaml:"supabase"`
}

// SupabaseConfig holds the project URL and keys used for both the GoTrue
// admin API (account provisioning) and JWT validation on CRM routes.
type SupabaseConfig struct {
	ProjectURL string `yaml:"project_url"`
	ServiceKey string `yaml:"service_key"`
	JWTSecret  string `yaml:"jwt_secret"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// NotificationChannel is the pub/sub channel prefix for owner notifications.
	NotificationChannel string `yaml:"notification_channel"`
}

type EmailConfig struct {
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort int    `yaml:"smtp_port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}
