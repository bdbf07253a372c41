package config

import (
	"fmt"
	"time"
)

const (
	DefaultElevatorCount   = 3
	DefaultFloorCount      = 10
	DefaultCapacity        = 8
	DefaultTickInterval    = 2 * time.Second
	DefaultRequestInterval = 5 * time.Second
	DefaultListenAddr      = ":4242"
	DefaultLogLevel        = "debug"
	NameLength             = 10
	EnvPrefix              = "LIFTSIM_"
)

type Config struct {
	Name                    string        `yaml:"name"`
	ElevatorCount           int           `yaml:"elevatorCount"`
	FloorCount              int           `yaml:"floorCount"`
	DefaultElevatorCapacity int           `yaml:"defaultElevatorCapacity"`
	TickInterval            time.Duration `yaml:"tickInterval"`
	RequestInterval         time.Duration `yaml:"requestInterval"`
	AutoStart               bool          `yaml:"autoStart"`
	ListenAddr              string        `yaml:"listenAddr"`
	LogLevel                string        `yaml:"logLevel"`
	LogFile                 string        `yaml:"logFile"`
}

func Default() Config {
	return Config{
		ElevatorCount:           DefaultElevatorCount,
		FloorCount:              DefaultFloorCount,
		DefaultElevatorCapacity: DefaultCapacity,
		TickInterval:            DefaultTickInterval,
		RequestInterval:         DefaultRequestInterval,
		AutoStart:               true,
		ListenAddr:              DefaultListenAddr,
		LogLevel:                DefaultLogLevel,
	}
}

func (c Config) Validate() error {
	switch {
	case c.ElevatorCount <= 0:
		return fmt.Errorf("elevatorCount must be positive, got %d", c.ElevatorCount)
	case c.FloorCount <= 0:
		return fmt.Errorf("floorCount must be positive, got %d", c.FloorCount)
	case c.DefaultElevatorCapacity <= 0:
		return fmt.Errorf("defaultElevatorCapacity must be positive, got %d", c.DefaultElevatorCapacity)
	case c.TickInterval <= 0:
		return fmt.Errorf("tickInterval must be positive, got %v", c.TickInterval)
	case c.RequestInterval <= 0:
		return fmt.Errorf("requestInterval must be positive, got %v", c.RequestInterval)
	}
	return nil
}
