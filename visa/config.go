package visa

const (
	EnvSandbox    = "sandbox"
	EnvProduction = "production"

	sandboxBaseURL    = "https://sandbox.api.visa.com"
	productionBaseURL = "https://api.visa.com"
)

// Config carries the partner credentials and environment selection. It is
// built once at startup and read-only afterwards; nothing in it is ever
// logged.
type Config struct {
	UserID      string
	Password    string
	CertPath    string
	KeyPath     string
	Environment string
}

// BaseURL resolves the partner host for the configured environment. Anything
// other than the sandbox flag selects production.
func (c Config) BaseURL() string {
	if c.Environment == EnvSandbox {
		return sandboxBaseURL
	}
	return productionBaseURL
}
