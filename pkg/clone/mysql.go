package clone

import "github.com/xfwduke/blueking-dbm/pkg/model"

type MysqlAddSlaveRow struct {
	ClusterIDs []uint                  `json:"cluster_ids"`
	Clusters   []*model.ClusterSummary `json:"clusters"`
	NewSlave   model.HostEndpoint      `json:"new_slave"`
}

func MysqlAddSlave(ticket model.Ticket[model.MysqlAddSlaveDetails]) []MysqlAddSlaveRow {
	rows := make([]MysqlAddSlaveRow, len(ticket.Details.Infos))
	for i, info := range ticket.Details.Infos {
		rows[i] = MysqlAddSlaveRow{
			ClusterIDs: info.ClusterIDs,
			Clusters:   ticket.Details.Clusters.Resolve(info.ClusterIDs),
			NewSlave:   info.NewSlave,
		}
	}
	return rows
}

// MigrateClusterRow is shared by MySQL and TenDBCluster migrations.
type MigrateClusterRow struct {
	ClusterIDs []uint                  `json:"cluster_ids"`
	Clusters   []*model.ClusterSummary `json:"clusters"`
	NewMaster  model.HostEndpoint      `json:"new_master"`
	NewSlave   model.HostEndpoint      `json:"new_slave"`
}

func MysqlMigrateCluster(ticket model.Ticket[model.MysqlMigrateClusterDetails]) []MigrateClusterRow {
	return migrateClusterRows(ticket.Details.Infos, ticket.Details.Clusters)
}

// RestoreSlaveRow is shared by MySQL and TenDBCluster slave rebuilds.
type RestoreSlaveRow struct {
	ClusterIDs []uint                  `json:"cluster_ids"`
	Clusters   []*model.ClusterSummary `json:"clusters"`
	NewSlave   model.HostEndpoint      `json:"new_slave"`
	OldSlave   model.HostEndpoint      `json:"old_slave"`
}

func MysqlRestoreSlave(ticket model.Ticket[model.MysqlRestoreSlaveDetails]) []RestoreSlaveRow {
	return restoreSlaveRows(ticket.Details.Infos, ticket.Details.Clusters)
}

func migrateClusterRows(infos []model.MigrateClusterInfo, clusters model.DetailClusters) []MigrateClusterRow {
	rows := make([]MigrateClusterRow, len(infos))
	for i, info := range infos {
		rows[i] = MigrateClusterRow{
			ClusterIDs: info.ClusterIDs,
			Clusters:   clusters.Resolve(info.ClusterIDs),
			NewMaster:  info.NewMaster,
			NewSlave:   info.NewSlave,
		}
	}
	return rows
}

func restoreSlaveRows(infos []model.RestoreSlaveInfo, clusters model.DetailClusters) []RestoreSlaveRow {
	rows := make([]RestoreSlaveRow, len(infos))
	for i, info := range infos {
		rows[i] = RestoreSlaveRow{
			ClusterIDs: info.ClusterIDs,
			Clusters:   clusters.Resolve(info.ClusterIDs),
			NewSlave:   info.NewSlave,
			OldSlave:   info.OldSlave,
		}
	}
	return rows
}
