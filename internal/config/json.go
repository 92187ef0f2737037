package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Server struct {
		Address           string   `json:"address"`
		ReadTimeout       Duration `json:"read_timeout"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
		WriteTimeout      Duration `json:"write_timeout"`
		IdleTimeout       Duration `json:"idle_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	JNCEP struct {
		Email             string   `json:"email"`
		Password          string   `json:"password"`
		Output            string   `json:"output"`
		Binary            string   `json:"binary"`
		GenerationTimeout Duration `json:"generation_timeout"`
		PurchaseDelay     Duration `json:"purchase_delay"`
	} `json:"jncep,omitempty"`

	API struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
		Retention     Duration `json:"retention"`
	} `json:"workers,omitempty"`

	Client struct {
		ServerAddress  string   `json:"server_address"`
		OutputDir      string   `json:"output_dir"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Address:           jsonCfg.Server.Address,
			ReadTimeout:       time.Duration(jsonCfg.Server.ReadTimeout),
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
			WriteTimeout:      time.Duration(jsonCfg.Server.WriteTimeout),
			IdleTimeout:       time.Duration(jsonCfg.Server.IdleTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		JNCEP: JNCEP{
			Email:             jsonCfg.JNCEP.Email,
			Password:          jsonCfg.JNCEP.Password,
			Output:            jsonCfg.JNCEP.Output,
			Binary:            jsonCfg.JNCEP.Binary,
			GenerationTimeout: time.Duration(jsonCfg.JNCEP.GenerationTimeout),
			PurchaseDelay:     time.Duration(jsonCfg.JNCEP.PurchaseDelay),
		},
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
			Retention:     time.Duration(jsonCfg.Workers.Retention),
		},
		Client: Client{
			ServerAddress:  jsonCfg.Client.ServerAddress,
			OutputDir:      jsonCfg.Client.OutputDir,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
