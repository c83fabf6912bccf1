package clone

import "github.com/xfwduke/blueking-dbm/pkg/model"

func TendbClusterMigrateCluster(ticket model.Ticket[model.TendbClusterMigrateClusterDetails]) []MigrateClusterRow {
	return migrateClusterRows(ticket.Details.Infos, ticket.Details.Clusters)
}

func TendbClusterRestoreSlave(ticket model.Ticket[model.TendbClusterRestoreSlaveDetails]) []RestoreSlaveRow {
	return restoreSlaveRows(ticket.Details.Infos, ticket.Details.Clusters)
}
