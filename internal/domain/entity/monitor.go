package entity

// MonitorState is the state of the store proximity monitor.
type MonitorState string

const (
	MonitorStateInactive  MonitorState = "inactive"
	MonitorStatePolling   MonitorState = "polling"
	MonitorStatePrompting MonitorState = "prompting"
)

// ProximityState is a snapshot of the store proximity monitor.
type ProximityState struct {
	State        MonitorState    `json:"state"`
	Prompt       *DetectedStore  `json:"prompt,omitempty"`
	SavedStores  []StoreLocation `json:"saved_stores"`
	StoresLoaded bool            `json:"stores_loaded"`
	AutoOpen     bool            `json:"auto_open"`
}
