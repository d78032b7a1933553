// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p server port (overrides the port given with -a)
//	-t/-auth-token authorization secret for POST /login
//	-log-level zerolog level name
//	-request-timeout server request timeout (e.g., "10s")
//	-max-body-bytes request body limit in bytes
//	-base-url probe client target URL
//	-client-timeout probe client request timeout
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("http-contracts", flag.ContinueOnError)

	var serverAddress NetAddress
	var port int
	var authToken string
	var logLevel string
	var requestTimeout time.Duration
	var maxBodyBytes int64
	var baseURL string
	var clientTimeout time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&authToken, "t", "", "Authorization secret")
	fs.StringVar(&authToken, "auth-token", "", "Authorization secret (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 10s)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum buffered request body size")
	fs.StringVar(&baseURL, "base-url", "", "Probe client target URL")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Probe client request timeout (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if port == 0 {
		port = serverAddress.Port
	}

	return &StructuredConfig{
		App: App{
			AuthToken: authToken,
			LogLevel:  logLevel,
		},
		Server: Server{
			Host:           serverAddress.Host,
			Port:           port,
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
		},
		Client: Client{
			BaseURL:        baseURL,
			RequestTimeout: clientTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > maxPort {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
