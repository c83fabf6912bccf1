package model

// SqlserverAddSlaveDetails is the payload of a SQLSERVER_ADD_SLAVE ticket.
type SqlserverAddSlaveDetails struct {
	DetailBase
	IPSource string                  `json:"ip_source,omitempty"`
	Infos    []SqlserverAddSlaveInfo `json:"infos"`
}

type SqlserverAddSlaveInfo struct {
	ClusterIDs   []uint       `json:"cluster_ids"`
	NewSlaveHost HostEndpoint `json:"new_slave_host"`
}

// SqlserverRestoreSlaveDetails is the payload of a SQLSERVER_RESTORE_SLAVE ticket.
type SqlserverRestoreSlaveDetails struct {
	DetailBase
	IPSource string                      `json:"ip_source,omitempty"`
	Infos    []SqlserverRestoreSlaveInfo `json:"infos"`
}

type SqlserverRestoreSlaveInfo struct {
	ClusterIDs   []uint       `json:"cluster_ids"`
	NewSlaveHost HostEndpoint `json:"new_slave_host"`
	OldSlaveHost HostEndpoint `json:"old_slave_host"`
}
