package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# KVK Trading Engine Configuration

[risk]
# Fraction of capital risked per trade (0.01 = the 1% rule)
risk_fraction = 0.01
# Multiplier above the risk budget before a trade is rejected
risk_tolerance = 1.1
# Warn when the stop loss is further than this percent from entry
max_stop_percent = 5.0
# Warn when the stop loss is tighter than this percent from entry
min_stop_percent = 0.5
# Warn when reward/risk to the first target is below this ratio
min_reward_ratio = 1.0

[market]
# Exchange timezone
timezone = "Asia/Kolkata"
# Market hours (NSE equity: 09:15 - 15:30)
open_hour = 9
open_minute = 15
close_hour = 15
close_minute = 30
# Exchange holidays (YYYY-MM-DD); also manageable via 'kvk-trader holidays'
holidays = []

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to console
console = true
# Log to rotating file under ~/.config/kvk-trader/logs
file = true

[storage]
# SQLite database path; empty uses ~/.config/kvk-trader/engine.db
database_path = ""
`

// writeTemplateConfig writes a commented template config file for the
// user to edit. Existing files are never overwritten.
func writeTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
