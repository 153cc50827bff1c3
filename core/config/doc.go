// Package config provides configuration management for the provisioner.
//
// It utilizes Viper for loading configuration from config/app.yaml, a .env file and
// environment variables, and go-playground/validator for precondition checks.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - App: order, advertiser, bidder, price buckets, sizes, targeted inventory and targeting keys
//   - AdManager: network code, application name and service account key file
//   - Sape: marketplace login, token and site id
//   - Storage: optional S3/MinIO archive for run reports
//   - Log: Logging level and format
//
// Environment variables override file values using upper-cased dotted keys
// (sape.token -> SAPE_TOKEN).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.App.OrderName)
package config
