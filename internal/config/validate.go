package config

import "errors"

// Configuration errors. All of them are raised before any network or
// subprocess activity.
var (
	// ErrMissingChannel indicates no channel login is configured.
	ErrMissingChannel = errors.New("config: channel is required")

	// ErrMissingOutputPath indicates no output root is configured.
	ErrMissingOutputPath = errors.New("config: output_path is required")

	// ErrMissingClientID indicates no Helix client ID is configured.
	ErrMissingClientID = errors.New("config: client_id is required")

	// ErrMissingAuthToken indicates the AUTH_TOKEN environment variable
	// is unset.
	ErrMissingAuthToken = errors.New("config: AUTH_TOKEN environment variable is required")

	// ErrMissingToolPath indicates the downloader tool path is unset.
	ErrMissingToolPath = errors.New("config: downloader.tool_path is required")

	// ErrInvalidOutputFormat indicates an unsupported media container.
	ErrInvalidOutputFormat = errors.New("config: downloader.output must be mp4 or m4a")

	// ErrInvalidChatCompression indicates an unsupported compression mode.
	ErrInvalidChatCompression = errors.New("config: downloader.chat_compression must be Gzip or None")

	// ErrMissingPersonalToken indicates personal auth is enabled but the
	// PERSONAL_AUTH_TOKEN environment variable is unset.
	ErrMissingPersonalToken = errors.New("config: PERSONAL_AUTH_TOKEN environment variable is required when downloader.personal_auth is enabled")
)

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	if c.Channel == "" {
		return ErrMissingChannel
	}
	if c.OutputPath == "" {
		return ErrMissingOutputPath
	}
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if c.AuthToken == "" {
		return ErrMissingAuthToken
	}
	return nil
}

// ValidateDownloader checks the settings the download command depends on,
// in addition to Validate.
func (c *Config) ValidateDownloader() error {
	d := c.Downloader
	if d.ToolPath == "" {
		return ErrMissingToolPath
	}
	if d.Output != "mp4" && d.Output != "m4a" {
		return ErrInvalidOutputFormat
	}
	if d.ChatCompression != "" && d.ChatCompression != "Gzip" && d.ChatCompression != "None" {
		return ErrInvalidChatCompression
	}
	if d.PersonalAuth && c.PersonalAuthToken == "" {
		return ErrMissingPersonalToken
	}
	return nil
}
