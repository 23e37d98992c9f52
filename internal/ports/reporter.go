package ports

import "github.com/trexfeathers/WOPI/internal/domain"

// Reporter surfaces pipeline outcomes to the user and the persistent log.
type Reporter interface {
	Success(msg string)
	Note(msg string)
	Warn(w domain.Warning)
	Error(err error)
}
