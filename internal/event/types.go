// internal/event/types.go
package event

import "go-tank-arena/internal/types"

const (
	EnemyDestroyed  EventType = "EnemyDestroyed"  // EnemyDestroyedData
	PlayerDestroyed EventType = "PlayerDestroyed" // no payload
	WaveStarted     EventType = "WaveStarted"     // WaveStartedData
	DefsReloaded    EventType = "DefsReloaded"    // DefsReloadedData
)

type EnemyDestroyedData struct {
	ID   types.EntityID
	Kind string
}

type WaveStartedData struct {
	Number  int
	Enemies int
}

type DefsReloadedData struct {
	Path  string
	Tanks int
}
