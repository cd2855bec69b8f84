package cmd

import (
	"time"

	"github.com/spf13/viper"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/introspect"
)

// connect dials the introspection socket using the resolved socket path
// and timeout from flags/env.
func connect() (*client.Client, error) {
	path := introspect.ResolveSocketPath(viper.GetString("socket"))
	timeout := time.Duration(viper.GetInt("timeout")) * time.Second
	return client.Dial(path, timeout)
}

// withClient runs fn with a connected client, closing it afterwards.
func withClient(fn func(*client.Client) error) error {
	c, err := connect()
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

// StringParam extracts a string parameter from an MCP argument map.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// FloatParam extracts a numeric parameter from an MCP argument map.
func FloatParam(params map[string]interface{}, key string, def float64) float64 {
	if v, ok := params[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

// BoolParam extracts a boolean parameter from an MCP argument map.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}
