// Package config loads the streamvault configuration from a TOML file
// and credentials from the environment. Components receive the resulting
// Config value explicitly; there is no ambient configuration state.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultFileName is the config file name inside the config directory.
	DefaultFileName = "config.toml"

	// EnvAuthToken names the environment variable holding the Helix
	// bearer token.
	EnvAuthToken = "AUTH_TOKEN"

	// EnvPersonalAuthToken names the environment variable holding the
	// optional personal OAuth token forwarded to the download tool.
	EnvPersonalAuthToken = "PERSONAL_AUTH_TOKEN"
)

// Downloader configures the external TwitchDownloaderCLI invocation.
type Downloader struct {
	// ToolPath is the TwitchDownloaderCLI executable path.
	ToolPath string `toml:"tool_path"`

	// Output is the media container: "mp4" or "m4a".
	Output string `toml:"output"`

	// DownloadChat enables the chat artifact download per highlight.
	DownloadChat bool `toml:"download_chat"`

	// ChatCompression is the chat artifact compression: "Gzip" or "None".
	// Empty means the tool default.
	ChatCompression string `toml:"chat_compression"`

	// ChatEmbedImages embeds emotes and badges into the chat artifact.
	ChatEmbedImages bool `toml:"chat_embed_images"`

	// FFmpegPath optionally points at a custom ffmpeg binary. Empty or
	// "ffmpeg" means the tool resolves ffmpeg itself.
	FFmpegPath string `toml:"ffmpeg_path"`

	// PersonalAuth forwards the personal OAuth token to the tool, which
	// is required for sub-only highlights.
	PersonalAuth bool `toml:"personal_auth"`
}

// Config is the full configuration surface of the CLI.
type Config struct {
	// Channel is the login name of the channel being archived.
	Channel string `toml:"channel"`

	// OutputPath is the root directory for archives and downloads.
	OutputPath string `toml:"output_path"`

	// ClientID is the Helix application client identifier.
	ClientID string `toml:"client_id"`

	// Downloader holds the external tool settings.
	Downloader Downloader `toml:"downloader"`

	// AuthToken is the Helix bearer token, sourced from the environment,
	// never from the config file.
	AuthToken string `toml:"-"`

	// PersonalAuthToken is the optional personal OAuth token, sourced
	// from the environment.
	PersonalAuthToken string `toml:"-"`
}

// DefaultPath returns the default config file path under the user's home
// directory (~/.streamvault/config.toml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".streamvault", DefaultFileName), nil
}

// Load reads the TOML config at path and the credentials from the
// environment. A .env file next to the working directory is honoured if
// present; real environment variables win over it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg.AuthToken = os.Getenv(EnvAuthToken)
	cfg.PersonalAuthToken = os.Getenv(EnvPersonalAuthToken)

	return &cfg, nil
}
