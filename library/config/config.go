package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/librarypro/pkg/kafka"
	"github.com/Astemirdum/librarypro/pkg/logger"
	"github.com/Astemirdum/librarypro/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Storage string

const (
	StorageMemory   Storage = "memory"
	StoragePostgres Storage = "postgres"
)

type Loan struct {
	Period      time.Duration `yaml:"period" envconfig:"LOAN_PERIOD" default:"336h"`
	MaxRenewals int           `yaml:"maxRenewals" envconfig:"LOAN_MAX_RENEWALS" default:"2"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Storage  Storage      `yaml:"storage" envconfig:"STORAGE" default:"memory"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Loan     Loan         `yaml:"loan"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		if err := config.validate(); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.Loan.Period <= 0 {
		return fmt.Errorf("loan period must be positive, got %s", c.Loan.Period)
	}
	if c.Loan.MaxRenewals < 0 {
		return fmt.Errorf("loan max renewals must not be negative, got %d", c.Loan.MaxRenewals)
	}
	return nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
