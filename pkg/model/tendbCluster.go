package model

// TendbClusterMigrateClusterDetails is the payload of a TENDBCLUSTER_MIGRATE_CLUSTER ticket. The
// infos share their shape with the MySQL migration, they target the remote storage pairs of a
// spider cluster.
type TendbClusterMigrateClusterDetails struct {
	DetailBase
	BackupSource string               `json:"backup_source"`
	IPSource     string               `json:"ip_source"`
	Infos        []MigrateClusterInfo `json:"infos"`
}

// TendbClusterRestoreSlaveDetails is the payload of a TENDBCLUSTER_RESTORE_SLAVE ticket.
type TendbClusterRestoreSlaveDetails struct {
	DetailBase
	BackupSource string             `json:"backup_source"`
	IPSource     string             `json:"ip_source"`
	Infos        []RestoreSlaveInfo `json:"infos"`
}
