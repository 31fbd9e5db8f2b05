package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"referral-reconciler/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Input holds the locations and encoding of the two exports.
	Input InputConfig `mapstructure:"input"`
	// Output holds where the import file is written.
	Output OutputConfig `mapstructure:"output"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// InputConfig holds configuration for the source exports.
type InputConfig struct {
	// MembersPath is the membership export (first_name, last_name, email).
	MembersPath string `mapstructure:"members_path" default:"data/memberpress.csv"`
	// AdvocatesPath is the referrals platform export (ADVOCATE_EMAIL).
	AdvocatesPath string `mapstructure:"advocates_path" default:"data/genius-referrals.csv"`
	// Encoding is the character encoding of both exports.
	Encoding string `mapstructure:"encoding" default:"utf-8"`
}

// OutputConfig holds configuration for the generated import file.
type OutputConfig struct {
	// Dir is created if missing.
	Dir string `mapstructure:"dir" default:"output"`
	// Filename is the name of the CSV written inside Dir.
	Filename string `mapstructure:"filename" default:"missing-memberpress-users.csv"`
}

// Path returns the full output file path.
func (c OutputConfig) Path() string {
	return filepath.Join(c.Dir, c.Filename)
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. INPUT_ENCODING -> input.encoding)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
