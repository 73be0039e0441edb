package game

//go:generate mockgen -package=mocks -destination=mocks/mock_broadcaster.go github.com/khelghar/rajamantri/internal/services/game Broadcaster

// Broadcaster fans state out to the viewers of a room. The transport
// layer implements it; the coordinator never learns about connections,
// only viewer identities.
type Broadcaster interface {
	// Viewers returns the identities currently watching a room
	Viewers(roomCode string) []string

	// SendState delivers a redacted view to one viewer. Delivery to a
	// departed viewer is a no-op; failures never roll back a committed
	// state transition.
	SendState(roomCode, viewerID string, view *RedactedView)

	// SendError delivers a rejection to the acting viewer only
	SendError(roomCode, viewerID, kind, message string)
}
