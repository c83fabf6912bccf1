package model

import (
	"encoding/json"
	"slices"
)

// TicketType identifies the operation a ticket requests. The backend picks the shape of a ticket's
// details based on it.
type TicketType string

const (
	TicketTypeMysqlAddSlave              TicketType = "MYSQL_ADD_SLAVE"
	TicketTypeMysqlMigrateCluster        TicketType = "MYSQL_MIGRATE_CLUSTER"
	TicketTypeMysqlRestoreSlave          TicketType = "MYSQL_RESTORE_SLAVE"
	TicketTypeSqlserverAddSlave          TicketType = "SQLSERVER_ADD_SLAVE"
	TicketTypeSqlserverRestoreSlave      TicketType = "SQLSERVER_RESTORE_SLAVE"
	TicketTypeTendbClusterMigrateCluster TicketType = "TENDBCLUSTER_MIGRATE_CLUSTER"
	TicketTypeTendbClusterRestoreSlave   TicketType = "TENDBCLUSTER_RESTORE_SLAVE"
)

// TicketTypes lists every ticket type known to this service.
var TicketTypes = []TicketType{
	TicketTypeMysqlAddSlave,
	TicketTypeMysqlMigrateCluster,
	TicketTypeMysqlRestoreSlave,
	TicketTypeSqlserverAddSlave,
	TicketTypeSqlserverRestoreSlave,
	TicketTypeTendbClusterMigrateCluster,
	TicketTypeTendbClusterRestoreSlave,
}

// Valid returns true if t is one of the declared [TicketTypes].
func (t TicketType) Valid() bool {
	return slices.Contains(TicketTypes, t)
}

// Ticket is a change request as created by the DBM backend. Details carries the payload of the
// requested operation, its shape depends on Type.
// swagger:model
type Ticket[D any] struct {
	// required: true
	ID      uint `json:"id"`
	BkBizID uint `json:"bk_biz_id"`
	// required: true
	Type     TicketType `json:"type"`
	Status   string     `json:"status,omitempty"`
	Creator  string     `json:"creator,omitempty"`
	Remark   string     `json:"remark,omitempty"`
	CreateAt string     `json:"create_at,omitempty"`
	// required: true
	Details D `json:"details"`
}

// RawTicket is a ticket whose details haven't been decoded yet.
type RawTicket = Ticket[json.RawMessage]

// WithDetails returns a copy of the ticket header carrying details.
func WithDetails[D any](t RawTicket, details D) Ticket[D] {
	return Ticket[D]{
		ID:       t.ID,
		BkBizID:  t.BkBizID,
		Type:     t.Type,
		Status:   t.Status,
		Creator:  t.Creator,
		Remark:   t.Remark,
		CreateAt: t.CreateAt,
		Details:  details,
	}
}

// DetailBase holds what every ticket payload carries besides its operation specific fields.
type DetailBase struct {
	Clusters DetailClusters `json:"clusters"`
}
