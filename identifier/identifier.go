// Package identifier reads GameCube and Wii disc headers and computes the
// digests GameTDB publishes for raw disc images.
package identifier

import (
	"fmt"
)

// Platform is the console a disc header belongs to. Values match the
// platform names used in the database.
type Platform string

const (
	PlatformGameCube Platform = "GameCube"
	PlatformWii      Platform = "Wii"
)

// Header holds the fields of a disc header.
type Header struct {
	// GameID is the six character ID: four character game code plus maker.
	GameID        string
	GameCode      string
	MakerCode     string
	DiscNumber    int
	Revision      int
	InternalTitle string
	Platform      Platform
}

// ErrInvalidFormat is returned when data doesn't look like a disc header.
type ErrInvalidFormat struct {
	Reason string
}

func (e ErrInvalidFormat) Error() string {
	return fmt.Sprintf("invalid disc header: %s", e.Reason)
}
