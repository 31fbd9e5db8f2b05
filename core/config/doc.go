// Package config provides configuration management for the reconciler.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults live in `default:` struct tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Input: membership and advocate export paths, character encoding
//   - Output: directory and file name of the import CSV
//   - Log: logging level and format
//
// Environment variables map onto nested keys by replacing dots with
// underscores, e.g. INPUT_MEMBERS_PATH or OUTPUT_DIR.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Input.MembersPath)
package config
