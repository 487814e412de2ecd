package taskfile

import "errors"

var (
	ErrNotFound           = errors.New("could not find Taskfile")
	ErrUnreadableFile     = errors.New("could not read found Taskfile")
	ErrParse              = errors.New("could not parse Taskfile")
	ErrUnsupportedVersion = errors.New("unsupported Taskfile version")
	ErrNoTasksFound       = errors.New("no tasks found")
	ErrHomeDirUnavailable = errors.New("could not find home path")
)
