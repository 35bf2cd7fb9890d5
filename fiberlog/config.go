package fiberlog

import "github.com/sirupsen/logrus"

// Logger tags
const (
	TagPid       = "pid"
	TagIP        = "ip"
	TagIPs       = "ips"
	TagHost      = "host"
	TagMethod    = "method"
	TagPath      = "path"
	TagURL       = "url"
	TagUA        = "ua"
	TagLatency   = "latency"
	TagStatus    = "status"
	TagBody      = "body"
	TagBytesSent = "bytesSent"
	TagRoute     = "route"
	TagResBody   = "resBody"
	TagQuery     = "queryParams"
	RequestID = "requestId"
)

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault is the default config
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
