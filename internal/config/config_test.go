package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/debate-friend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "01234567890123456789012345678901"

func clearEnv(t *testing.T) {
	for _, name := range []string{"GEMINI_API_KEY", "GEMINI_API_KEY_ENCRYPTED", "CRYPTO_KEY", "DEBATE_CONFIG", "PORT", "ALLOWED_ORIGIN", "LOG_LEVEL"} {
		t.Setenv(name, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		clearEnv(t)

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "plain-key")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "plain-key", cfg.GeminiAPIKey)
		assert.Equal(t, config.DefaultPort, cfg.Port)
		assert.Equal(t, "*", cfg.AllowedOrigin)
		assert.Equal(t, config.DefaultModel, cfg.Generation.Model)
		assert.InDelta(t, config.DefaultTemperature, cfg.Generation.Temperature, 0.0001)
	})

	t.Run("EncryptedKey", func(t *testing.T) {
		clearEnv(t)
		sealed, err := config.Encrypt(testKey, "sealed-key")
		require.NoError(t, err)
		t.Setenv("GEMINI_API_KEY_ENCRYPTED", sealed)
		t.Setenv("CRYPTO_KEY", testKey)

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "sealed-key", cfg.GeminiAPIKey)
	})

	t.Run("EncryptedKeyWithShortCryptoKey", func(t *testing.T) {
		clearEnv(t)
		sealed, err := config.Encrypt(testKey, "sealed-key")
		require.NoError(t, err)
		t.Setenv("GEMINI_API_KEY_ENCRYPTED", sealed)
		t.Setenv("CRYPTO_KEY", "chave_curta")

		_, err = config.Load()
		require.ErrorIs(t, err, config.ErrInvalidCryptoKey)
	})

	t.Run("GenerationFile", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "debate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("model: gemini-2.5-flash\ntemperature: 0.3\n"), 0o600))
		t.Setenv("GEMINI_API_KEY", "plain-key")
		t.Setenv("DEBATE_CONFIG", path)

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-flash", cfg.Generation.Model)
		assert.InDelta(t, 0.3, cfg.Generation.Temperature, 0.0001)
	})
}

func TestLoadGeneration(t *testing.T) {
	t.Run("FillsDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "debate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

		g, err := config.LoadGeneration(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultModel, g.Model)
	})

	t.Run("RejectsTemperatureOutOfRange", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "debate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("temperature: 3.5\n"), 0o600))

		_, err := config.LoadGeneration(path)
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.LoadGeneration(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestEncryptDecrypt(t *testing.T) {
	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "dados de teste secretos"

		ciphertext, err := config.Encrypt(testKey, plaintext)
		require.NoError(t, err)

		decrypted, err := config.Decrypt(testKey, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)

		ciphertext2, err := config.Encrypt(testKey, plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, ciphertext, ciphertext2, "nonce should make ciphertexts differ")
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt(testKey, "")
		require.NoError(t, err)
		decrypted, err := config.Decrypt(testKey, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, "", decrypted)
	})

	t.Run("WrongKey", func(t *testing.T) {
		ciphertext, err := config.Encrypt(testKey, "segredo")
		require.NoError(t, err)
		_, err = config.Decrypt("abcdefghijklmnopqrstuvwxyz012345", ciphertext)
		require.Error(t, err)
	})

	t.Run("ShortKey", func(t *testing.T) {
		_, err := config.Encrypt("chave_curta", "segredo")
		require.ErrorIs(t, err, config.ErrInvalidCryptoKey)
	})
}
