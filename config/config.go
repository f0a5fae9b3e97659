package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultTrials    = 100
	defaultPrecision = 2
	maxPrecision     = 6
)

// Config es la configuración completa del simulador.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig controla el batch de trials.
type SimulationConfig struct {
	Trials    int   `yaml:"trials"`    // trials por batch, >= 1
	Seed      int64 `yaml:"seed"`      // 0 = seed aleatoria
	Precision int   `yaml:"precision"` // decimales del resumen, 0 = default (2)
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// LoadEnv construye la configuración sin archivo YAML: .env, variables de entorno y defaults.
func LoadEnv() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("config.LoadEnv: %w", err)
	}
	setDefaults(&cfg)
	return &cfg, nil
}

// Default devuelve la configuración por defecto, sin leer archivos ni entorno.
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// Validate comprueba los rangos que el simulador necesita.
func (c *Config) Validate() error {
	if c.Simulation.Trials < 1 {
		return fmt.Errorf("config: simulation.trials must be >= 1, got %d", c.Simulation.Trials)
	}
	if c.Simulation.Precision < 0 || c.Simulation.Precision > maxPrecision {
		return fmt.Errorf("config: simulation.precision must be in 0..%d, got %d",
			maxPrecision, c.Simulation.Precision)
	}
	return nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("MONTY_TRIALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MONTY_TRIALS=%q: %w", v, err)
		}
		cfg.Simulation.Trials = n
	}
	if v := os.Getenv("MONTY_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MONTY_SEED=%q: %w", v, err)
		}
		cfg.Simulation.Seed = seed
	}
	return nil
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
// Trials negativos se dejan tal cual para que Validate los rechace.
func setDefaults(cfg *Config) {
	if cfg.Simulation.Trials == 0 {
		cfg.Simulation.Trials = defaultTrials
	}
	if cfg.Simulation.Precision == 0 {
		cfg.Simulation.Precision = defaultPrecision
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
