package types

type ServerStatus struct {
	Status        string `json:"status"`
	ServerVersion string `json:"serverVersion"`
	StorageDriver string `json:"storageDriver"`
}
