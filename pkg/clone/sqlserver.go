package clone

import "github.com/xfwduke/blueking-dbm/pkg/model"

type SqlserverAddSlaveRow struct {
	ClusterIDs   []uint                  `json:"cluster_ids"`
	Clusters     []*model.ClusterSummary `json:"clusters"`
	NewSlaveHost model.HostEndpoint      `json:"new_slave_host"`
}

func SqlserverAddSlave(ticket model.Ticket[model.SqlserverAddSlaveDetails]) []SqlserverAddSlaveRow {
	rows := make([]SqlserverAddSlaveRow, len(ticket.Details.Infos))
	for i, info := range ticket.Details.Infos {
		rows[i] = SqlserverAddSlaveRow{
			ClusterIDs:   info.ClusterIDs,
			Clusters:     ticket.Details.Clusters.Resolve(info.ClusterIDs),
			NewSlaveHost: info.NewSlaveHost,
		}
	}
	return rows
}

type SqlserverRestoreSlaveRow struct {
	ClusterIDs   []uint                  `json:"cluster_ids"`
	Clusters     []*model.ClusterSummary `json:"clusters"`
	NewSlaveHost model.HostEndpoint      `json:"new_slave_host"`
	OldSlaveHost model.HostEndpoint      `json:"old_slave_host"`
}

func SqlserverRestoreSlave(ticket model.Ticket[model.SqlserverRestoreSlaveDetails]) []SqlserverRestoreSlaveRow {
	rows := make([]SqlserverRestoreSlaveRow, len(ticket.Details.Infos))
	for i, info := range ticket.Details.Infos {
		rows[i] = SqlserverRestoreSlaveRow{
			ClusterIDs:   info.ClusterIDs,
			Clusters:     ticket.Details.Clusters.Resolve(info.ClusterIDs),
			NewSlaveHost: info.NewSlaveHost,
			OldSlaveHost: info.OldSlaveHost,
		}
	}
	return rows
}
