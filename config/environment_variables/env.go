package environment_variables

import (
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type EnvironmentVariable struct {
	// Gemini upstream. The four key slots are tried in declaration order,
	// so GEMINI_API_KEY is always the primary credential.
	GEMINI_API_KEY   string
	GEMINI_API_KEY_2 string
	GEMINI_API_KEY_3 string
	GEMINI_API_KEY_4 string

	GEMINI_MODEL           string
	GEMINI_OPENAI_BASE_URL string
	GEMINI_NATIVE_BASE_URL string
	GEMINI_TRANSPORT       string
	GEMINI_TEMPERATURE     string
	GEMINI_MAX_TOKENS      int

	JWT_SECRET []byte

	ENABLE_SWAGGER          bool
	DB_POSTGRESQL_WRITE_DSN string
	DB_POSTGRESQL_READ1_DSN string

	CACHE_TYPE     string
	CACHE_URL      string
	CACHE_PASSWORD string
	CACHE_DB       string
	REDIS_URL      string
	REDIS_PASSWORD string
	REDIS_DB       string

	ALLOWED_CORS_HOSTS []string
	CATBOX_API_URL     string

	OAUTH2_GOOGLE_CLIENT_ID     string
	OAUTH2_GOOGLE_CLIENT_SECRET string
	OAUTH2_GOOGLE_REDIRECT_URL  string
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			continue
		}
		switch v.Field(i).Interface().(type) {
		case string:
			v.Field(i).SetString(envValue)
		case []string:
			parts := strings.Split(envValue, ",")
			for j := range parts {
				parts[j] = strings.TrimSpace(parts[j])
			}
			v.Field(i).Set(reflect.ValueOf(parts))
		case []byte:
			v.Field(i).SetBytes([]byte(envValue))
		case bool:
			v.Field(i).SetBool(strings.EqualFold(envValue, "true") || envValue == "1")
		case int:
			n, err := strconv.Atoi(envValue)
			if err != nil {
				logrus.Warnf("invalid int for SYSENV %s: %s", envKey, envValue)
				continue
			}
			v.Field(i).SetInt(int64(n))
		}
	}
}

// GeminiAPIKeys returns the configured credentials in declaration order,
// skipping empty slots. The order is stable across calls.
func (ev *EnvironmentVariable) GeminiAPIKeys() []string {
	keys := make([]string, 0, 4)
	for _, key := range []string{ev.GEMINI_API_KEY, ev.GEMINI_API_KEY_2, ev.GEMINI_API_KEY_3, ev.GEMINI_API_KEY_4} {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}

// GeminiTemperature parses GEMINI_TEMPERATURE, falling back to the default.
func (ev *EnvironmentVariable) GeminiTemperature() float32 {
	f, err := strconv.ParseFloat(ev.GEMINI_TEMPERATURE, 32)
	if err != nil {
		return 0.3
	}
	return float32(f)
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{
	GEMINI_MODEL:       "gemini-2.0-flash",
	GEMINI_TEMPERATURE: "0.3",
	GEMINI_MAX_TOKENS:  2048,
	GEMINI_TRANSPORT:   "openai",
	CATBOX_API_URL:     "https://catbox.moe/user/api.php",
}
