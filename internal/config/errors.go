package config

import "errors"

var (
	errConfigFileRead = errors.New("cannot read config file")
	errConfigInvalid  = errors.New("invalid config file")
	errMaxLineBytes   = errors.New("max_line_bytes must be positive")
)
