package config

// ProxyConfig controls how the upstream sports-data proxy is reached.
type ProxyConfig struct {
	BaseURL string
	MinGap  Duration
}

func loadProxy() ProxyConfig {
	return ProxyConfig{
		BaseURL: envOrDefault(envProxyURL, defaultProxyURL),
		MinGap:  durationEnvOrDefault(envProxyMinGap, defaultProxyMinGap),
	}
}
