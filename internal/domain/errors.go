package domain

import "errors"

var (
	ErrLaunchFailed        = errors.New("launch failed")
	ErrNoExecutableFound   = errors.New("fork executable not found")
	ErrNoWorkspace         = errors.New("working folder not found")
	ErrTranslationFailed   = errors.New("path translation failed")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
