package sape

// Config holds the Sape XML-RPC API settings.
type Config struct {
	// URL is the XML-RPC endpoint.
	URL string `mapstructure:"url" default:"https://api.sape.ru/xmlrpc/" validate:"required,url"`
	// Login is the account login.
	Login string `mapstructure:"login" validate:"required"`
	// Token is the API token for the login.
	Token string `mapstructure:"token" validate:"required"`
	// SiteID is the site the RTB places belong to.
	SiteID int64 `mapstructure:"site_id" default:"0" validate:"gt=0"`
	// UserAgent is sent with every call.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 7.1; Trident/5.0)"`
	// TimeoutSeconds bounds every call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
