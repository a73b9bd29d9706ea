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
//	-a search service listen address in format [host]:[port]
//	-s search service address used by the client
//	-c/-config json file path with configs
//	-request-timeout request timeout of non-streaming endpoints (e.g., "30s")
//	-connect-timeout client dial timeout (e.g., "5s")
//	-stall-timeout client stream watchdog timeout, 0 disables it
//	-phase-delay pause between phases of the demo search pipeline
//	-log-file client log file path
//	-q query to run once without the terminal UI
//	-o output file for the rendered HTML document of -q
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var searchAddress string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var connectTimeout time.Duration
	var stallTimeout time.Duration
	var phaseDelay time.Duration
	var logFile string
	var query string
	var outputPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&searchAddress, "s", "", "Search service address")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&connectTimeout, "connect-timeout", 0, "Connect timeout (e.g., 5s)")
	flag.DurationVar(&stallTimeout, "stall-timeout", 0, "Fail a silent stream after this long (0 disables)")
	flag.DurationVar(&phaseDelay, "phase-delay", 0, "Pause between search phases")
	flag.StringVar(&logFile, "log-file", "", "Client log file path")
	flag.StringVar(&query, "q", "", "Run a single query without the terminal UI")
	flag.StringVar(&outputPath, "o", "", "Write the rendered HTML document of -q to this file")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    searchAddress,
			ConnectTimeout: connectTimeout,
			StallTimeout:   stallTimeout,
		},
		Search: Search{
			PhaseDelay: phaseDelay,
		},
		Run: Run{
			Query:      query,
			OutputPath: outputPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
