package gam

// Config holds the Google Ad Manager API settings.
type Config struct {
	// NetworkCode is the Ad Manager network code.
	NetworkCode string `mapstructure:"network_code" validate:"required"`
	// ApplicationName is sent in every request header.
	ApplicationName string `mapstructure:"application_name" default:"gam-provisioner" validate:"required"`
	// KeyFile is the service account JSON key; relative paths resolve against the config directory.
	KeyFile string `mapstructure:"key_file" default:"config/key.json" validate:"required"`
	// APIVersion is the SOAP API version, e.g. v202505.
	APIVersion string `mapstructure:"api_version" default:"v202505" validate:"required"`
	// Endpoint is the SOAP base URL without the version.
	Endpoint string `mapstructure:"endpoint" default:"https://ads.google.com/apis/ads/publisher" validate:"required,url"`
	// TimeoutSeconds bounds every API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
