package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-output output root for generated files
//	-binary generator executable name or path
//	-generation-timeout upper bound on one generator run (e.g., "15m")
//	-purchase-delay pause used by the purchase-retry branch (e.g., "10s")
//	-api-url labs API base URL
//	-log-level minimum log level
//	-log-file rotated log file path
//	-shutdown-timeout graceful shutdown budget (e.g., "10s")
//	-sweep-interval janitor scan period (e.g., "1h")
//	-retention janitor directory retention (e.g., "24h")
//	-s client: server base URL
//	-o client: download directory
//	-request-timeout client: download request timeout (e.g., "20m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var outputRoot string
	var binary string
	var generationTimeout time.Duration
	var purchaseDelay time.Duration
	var apiBaseURL string
	var logLevel string
	var logFile string
	var shutdownTimeout time.Duration
	var sweepInterval time.Duration
	var retention time.Duration
	var clientServerAddress string
	var clientOutputDir string
	var clientRequestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&outputRoot, "output", "", "Output root for generated files")
	flag.StringVar(&binary, "binary", "", "Generator executable name or path")
	flag.DurationVar(&generationTimeout, "generation-timeout", 0, "Generator run timeout (e.g., 15m)")
	flag.DurationVar(&purchaseDelay, "purchase-delay", 0, "Purchase-retry pause (e.g., 10s)")
	flag.StringVar(&apiBaseURL, "api-url", "", "Labs API base URL")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.StringVar(&logFile, "log-file", "", "Rotated log file path")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown budget (e.g., 10s)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Janitor scan period (e.g., 1h)")
	flag.DurationVar(&retention, "retention", 0, "Janitor directory retention (e.g., 24h)")
	flag.StringVar(&clientServerAddress, "s", "", "Server base URL (client)")
	flag.StringVar(&clientOutputDir, "o", "", "Download directory (client)")
	flag.DurationVar(&clientRequestTimeout, "request-timeout", 0, "Download request timeout (e.g., 20m)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			Address:         serverAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		JNCEP: JNCEP{
			Output:            outputRoot,
			Binary:            binary,
			GenerationTimeout: generationTimeout,
			PurchaseDelay:     purchaseDelay,
		},
		API: API{
			BaseURL: apiBaseURL,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
			Retention:     retention,
		},
		Client: Client{
			ServerAddress:  clientServerAddress,
			OutputDir:      clientOutputDir,
			RequestTimeout: clientRequestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the value
// merges as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host binds all interfaces. It validates the port
// range, checks IP correctness unless host is empty or "localhost", and
// returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
