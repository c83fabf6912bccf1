package model

// MysqlAddSlaveDetails is the payload of a MYSQL_ADD_SLAVE ticket.
type MysqlAddSlaveDetails struct {
	DetailBase
	BackupSource string              `json:"backup_source"`
	Infos        []MysqlAddSlaveInfo `json:"infos"`
}

type MysqlAddSlaveInfo struct {
	ClusterIDs []uint       `json:"cluster_ids"`
	NewSlave   HostEndpoint `json:"new_slave"`
}

// MysqlMigrateClusterDetails is the payload of a MYSQL_MIGRATE_CLUSTER ticket.
type MysqlMigrateClusterDetails struct {
	DetailBase
	BackupSource string               `json:"backup_source"`
	IPSource     string               `json:"ip_source"`
	IsSafe       bool                 `json:"is_safe"`
	Infos        []MigrateClusterInfo `json:"infos"`
}

// MigrateClusterInfo moves the clusters to a new master/slave pair.
type MigrateClusterInfo struct {
	ClusterIDs []uint       `json:"cluster_ids"`
	NewMaster  HostEndpoint `json:"new_master"`
	NewSlave   HostEndpoint `json:"new_slave"`
}

// MysqlRestoreSlaveDetails is the payload of a MYSQL_RESTORE_SLAVE ticket.
type MysqlRestoreSlaveDetails struct {
	DetailBase
	BackupSource string             `json:"backup_source"`
	Infos        []RestoreSlaveInfo `json:"infos"`
}

// RestoreSlaveInfo rebuilds OldSlave of the clusters on NewSlave.
type RestoreSlaveInfo struct {
	ClusterIDs []uint       `json:"cluster_ids"`
	NewSlave   HostEndpoint `json:"new_slave"`
	OldSlave   HostEndpoint `json:"old_slave"`
}
