package config

// Base application details
const AppName = "seek"
const Version = "0.3.0"
const DefaultConfigFileName = "config.toml"

// Search defaults
const DefaultScope = "all"
const DefaultMarker = true
const SystemClipboard = true
