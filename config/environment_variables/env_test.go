package environment_variables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "primary")
	t.Setenv("GEMINI_MAX_TOKENS", "512")
	t.Setenv("ENABLE_SWAGGER", "true")
	t.Setenv("ALLOWED_CORS_HOSTS", "https://a.example, https://b.example")
	t.Setenv("JWT_SECRET", "sekrit")

	var ev EnvironmentVariable
	ev.LoadFromEnv()

	assert.Equal(t, "primary", ev.GEMINI_API_KEY)
	assert.Equal(t, 512, ev.GEMINI_MAX_TOKENS)
	assert.True(t, ev.ENABLE_SWAGGER)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, ev.ALLOWED_CORS_HOSTS)
	assert.Equal(t, []byte("sekrit"), ev.JWT_SECRET)
}

func TestGeminiAPIKeys_OrderAndGaps(t *testing.T) {
	t.Parallel()
	ev := EnvironmentVariable{
		GEMINI_API_KEY:   "k1",
		GEMINI_API_KEY_2: "  ",
		GEMINI_API_KEY_3: "k3",
	}
	assert.Equal(t, []string{"k1", "k3"}, ev.GeminiAPIKeys())

	empty := EnvironmentVariable{}
	assert.Empty(t, empty.GeminiAPIKeys())
}

func TestGeminiTemperature(t *testing.T) {
	t.Parallel()
	ev := EnvironmentVariable{GEMINI_TEMPERATURE: "0.7"}
	assert.InDelta(t, 0.7, ev.GeminiTemperature(), 0.0001)

	bad := EnvironmentVariable{GEMINI_TEMPERATURE: "warm"}
	assert.InDelta(t, 0.3, bad.GeminiTemperature(), 0.0001)
}
