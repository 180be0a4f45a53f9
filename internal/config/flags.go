// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-secure-cookies set the Secure attribute on cookies
//	-trust-proxy-headers take the client IP from X-Forwarded-For / X-Real-IP
//	-d store DSN (mongodb://... or postgres://...)
//	-db-name MongoDB database name
//	-redis-url Redis URL for the session store
//	-session-secret OAuth state signing secret
//	-session-ttl session lifetime (e.g., "24h")
//	-bcrypt-cost bcrypt work factor
//	-app-name application name
//	-google-client-id Google OAuth client id
//	-google-client-secret Google OAuth client secret
//	-google-callback-url Google OAuth callback URL
//	-session-sweep-interval expired session sweep period
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var secureCookies, trustProxyHeaders bool
	var databaseDSN, databaseName, redisURL string
	var sessionSecret string
	var sessionTTL time.Duration
	var bcryptCost int
	var appName string
	var googleClientID, googleClientSecret, googleCallbackURL string
	var sweepInterval time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&secureCookies, "secure-cookies", false, "Set the Secure attribute on cookies")
	flag.BoolVar(&trustProxyHeaders, "trust-proxy-headers", false, "Trust X-Forwarded-For and X-Real-IP")
	flag.StringVar(&databaseDSN, "d", "", "Store DSN")
	flag.StringVar(&databaseName, "db-name", "", "MongoDB database name")
	flag.StringVar(&redisURL, "redis-url", "", "Redis URL for sessions")
	flag.StringVar(&sessionSecret, "session-secret", "", "OAuth state signing secret")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt cost")
	flag.StringVar(&appName, "app-name", "", "Application name")
	flag.StringVar(&googleClientID, "google-client-id", "", "Google OAuth client id")
	flag.StringVar(&googleClientSecret, "google-client-secret", "", "Google OAuth client secret")
	flag.StringVar(&googleCallbackURL, "google-callback-url", "", "Google OAuth callback URL")
	flag.DurationVar(&sweepInterval, "session-sweep-interval", 0, "Expired session sweep interval")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Name:          appName,
			SessionSecret: sessionSecret,
			SessionTTL:    sessionTTL,
			BcryptCost:    bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN:  databaseDSN,
				Name: databaseName,
			},
			Sessions: Sessions{RedisURL: redisURL},
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			RequestTimeout:    requestTimeout,
			SecureCookies:     secureCookies,
			TrustProxyHeaders: trustProxyHeaders,
		},
		OAuth: OAuth{
			Google: Google{
				ClientID:     googleClientID,
				ClientSecret: googleClientSecret,
				CallbackURL:  googleCallbackURL,
			},
		},
		Workers: Workers{
			SessionSweepInterval: sweepInterval,
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

// Set parses the input string of form [host]:port and populates the NetAddress.
// An empty host listens on all interfaces. Any other host must be
// "localhost" or a valid IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
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
