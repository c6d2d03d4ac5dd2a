package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func validConfig() *Config {
	return &Config{
		Channel:    "somestreamer",
		OutputPath: "/tmp/vault",
		ClientID:   "client-123",
		AuthToken:  "token-abc",
		Downloader: Downloader{
			ToolPath: "/usr/local/bin/TwitchDownloaderCLI",
			Output:   "mp4",
		},
	}
}

func TestLoad(t *testing.T) {
	t.Run("parses toml and reads env token", func(t *testing.T) {
		path := writeConfig(t, `
channel = "somestreamer"
output_path = "/tmp/vault"
client_id = "client-123"

[downloader]
tool_path = "/opt/TwitchDownloaderCLI"
output = "m4a"
download_chat = true
chat_compression = "Gzip"
chat_embed_images = true
`)
		t.Setenv(EnvAuthToken, "token-abc")
		t.Setenv(EnvPersonalAuthToken, "personal-xyz")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "somestreamer", cfg.Channel)
		assert.Equal(t, "/tmp/vault", cfg.OutputPath)
		assert.Equal(t, "client-123", cfg.ClientID)
		assert.Equal(t, "token-abc", cfg.AuthToken)
		assert.Equal(t, "personal-xyz", cfg.PersonalAuthToken)
		assert.Equal(t, "/opt/TwitchDownloaderCLI", cfg.Downloader.ToolPath)
		assert.Equal(t, "m4a", cfg.Downloader.Output)
		assert.True(t, cfg.Downloader.DownloadChat)
		assert.Equal(t, "Gzip", cfg.Downloader.ChatCompression)
		assert.True(t, cfg.Downloader.ChatEmbedImages)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, "channel = [broken")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"missing channel", func(c *Config) { c.Channel = "" }, ErrMissingChannel},
		{"missing output path", func(c *Config) { c.OutputPath = "" }, ErrMissingOutputPath},
		{"missing client id", func(c *Config) { c.ClientID = "" }, ErrMissingClientID},
		{"missing auth token", func(c *Config) { c.AuthToken = "" }, ErrMissingAuthToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDownloader(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid mp4", func(*Config) {}, nil},
		{"valid m4a", func(c *Config) { c.Downloader.Output = "m4a" }, nil},
		{"missing tool path", func(c *Config) { c.Downloader.ToolPath = "" }, ErrMissingToolPath},
		{"bad output format", func(c *Config) { c.Downloader.Output = "mkv" }, ErrInvalidOutputFormat},
		{"bad chat compression", func(c *Config) { c.Downloader.ChatCompression = "Brotli" }, ErrInvalidChatCompression},
		{"valid gzip compression", func(c *Config) { c.Downloader.ChatCompression = "Gzip" }, nil},
		{"valid none compression", func(c *Config) { c.Downloader.ChatCompression = "None" }, nil},
		{
			"personal auth without token",
			func(c *Config) { c.Downloader.PersonalAuth = true },
			ErrMissingPersonalToken,
		},
		{
			"personal auth with token",
			func(c *Config) {
				c.Downloader.PersonalAuth = true
				c.PersonalAuthToken = "personal"
			},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.ValidateDownloader()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
