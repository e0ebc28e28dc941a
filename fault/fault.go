package fault

import "errors"

var (
	//ErrSourceUnavailable - source file cannot be opened
	ErrSourceUnavailable = errors.New("source unavailable")

	//ErrInvalidWindowSize - window size less than 1
	ErrInvalidWindowSize = errors.New("invalid window size")

	//ErrInvalidReportInterval - report interval less than 1
	ErrInvalidReportInterval = errors.New("invalid report interval")

	//ErrInvalidPollInterval - poll interval not positive
	ErrInvalidPollInterval = errors.New("invalid poll interval")

	//ErrInvalidPattern - blank alert pattern
	ErrInvalidPattern = errors.New("invalid alert pattern")

	//ErrEmptyWindow - average of empty window
	ErrEmptyWindow = errors.New("empty window")

	//ErrEmptySourcePath - source path not set
	ErrEmptySourcePath = errors.New("empty source path")

	//InvalidEmptyConfigFile - invalid empty config file
	InvalidEmptyConfigFile = errors.New("empty config file")

	//ErrInsufficientSendParameter - messenger send without message
	ErrInsufficientSendParameter = errors.New("insufficient send parameter")

	//ErrInvalidMessenger - messenger not configured
	ErrInvalidMessenger = errors.New("invalid messenger")
)
