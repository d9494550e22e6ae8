package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
app:
  http_addr: ":8080"
commerce:
  api_url: "http://localhost:3000/shop-api"
mysql:
  dsn: "user:pass@tcp(localhost:3306)/storefront"
kafka:
  brokers: ["localhost:9092"]
cache:
  ttl: 5m
`

func writeConfigs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoad_BaseOnly(t *testing.T) {
	dir := writeConfigs(t, map[string]string{"base.yaml": baseYAML})

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
	assert.Equal(t, "http://localhost:3000/shop-api", cfg.Commerce.APIURL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoad_EnvFileOverridesBase(t *testing.T) {
	dir := writeConfigs(t, map[string]string{
		"base.yaml": baseYAML,
		"prod.yaml": "app:\n  http_addr: \":9090\"\n",
	})

	cfg, err := Load(dir, "prod")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.App.HTTPAddr)
}

func TestLoad_ProcessEnvOverridesFiles(t *testing.T) {
	dir := writeConfigs(t, map[string]string{"base.yaml": baseYAML})

	t.Setenv("STOREFRONT_APP__HTTP_ADDR", ":7070")
	t.Setenv("STOREFRONT_COMMERCE__API_URL", "https://shop.example.com/shop-api")

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.App.HTTPAddr)
	assert.Equal(t, "https://shop.example.com/shop-api", cfg.Commerce.APIURL)
}

func TestLoad_RazorpayFallsBackToConventionalEnv(t *testing.T) {
	dir := writeConfigs(t, map[string]string{"base.yaml": baseYAML})

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_abc")
	t.Setenv("RAZORPAY_KEY_SECRET", "shh")

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, "rzp_test_abc", cfg.Razorpay.KeyID)
	assert.Equal(t, "shh", cfg.Razorpay.KeySecret)
}

func TestLoad_WhatsAppNumberIsNormalized(t *testing.T) {
	dir := writeConfigs(t, map[string]string{"base.yaml": baseYAML})

	t.Setenv("WHATSAPP_NUMBER", "+91 98765-43210")

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, "919876543210", cfg.Notify.WhatsAppNumber)
}

func TestLoad_ValidatesRequiredFields(t *testing.T) {
	dir := writeConfigs(t, map[string]string{
		"base.yaml": "app:\n  http_addr: \":8080\"\n",
	})

	_, err := Load(dir, "dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commerce.api_url")
}
