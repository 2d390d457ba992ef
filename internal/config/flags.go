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
//	-a backend http address
//	-ws backend websocket address
//	-t access token
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d database DSN
//	-user self user id
//	-domain self user domain
//	-client-id registered client id
//	-log-dir directory of the logs file
//	-min-slow-sync-interval how long a slow sync stays valid (e.g., "168h")
//	-retry-base-delay first retry delay of a failed sync
//	-retry-max-delay cap of the retry delay
//	-slow-sync-version slow sync version override
//	-diag diagnostics server address in format [host]:[port]
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var diagnosticsAddress NetAddress
	var httpAddress, wsAddress, token string
	var requestTimeout time.Duration
	var databaseDSN string
	var selfUserID, selfDomain, clientID, logDir string
	var minSlowSyncInterval, retryBaseDelay, retryMaxDelay time.Duration
	var slowSyncVersion int
	var jsonConfigPath string

	flag.StringVar(&httpAddress, "a", "", "Backend HTTP address")
	flag.StringVar(&wsAddress, "ws", "", "Backend websocket address")
	flag.StringVar(&token, "t", "", "Access token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&selfUserID, "user", "", "Self user id")
	flag.StringVar(&selfDomain, "domain", "", "Self user domain")
	flag.StringVar(&clientID, "client-id", "", "Registered client id")
	flag.StringVar(&logDir, "log-dir", "", "Log file directory")
	flag.DurationVar(&minSlowSyncInterval, "min-slow-sync-interval", 0, "How long a completed slow sync stays valid")
	flag.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "First retry delay of a failed sync")
	flag.DurationVar(&retryMaxDelay, "retry-max-delay", 0, "Maximum retry delay of a failed sync")
	flag.IntVar(&slowSyncVersion, "slow-sync-version", 0, "Slow sync version override")
	flag.Var(&diagnosticsAddress, "diag", "Diagnostics server address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SelfUserID: selfUserID,
			SelfDomain: selfDomain,
			ClientID:   clientID,
			LogDir:     logDir,
		},
		Adapter: Adapter{
			HTTPAddress:      httpAddress,
			WebSocketAddress: wsAddress,
			RequestTimeout:   requestTimeout,
			Token:            token,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			MinSlowSyncInterval: minSlowSyncInterval,
			RetryBaseDelay:      retryBaseDelay,
			RetryMaxDelay:       retryMaxDelay,
			SlowSyncVersion:     slowSyncVersion,
		},
		Diagnostics:  Diagnostics{Address: diagnosticsAddress.String()},
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
