package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/xfwduke/blueking-dbm/internal/errdef"
)

const openareaPath = "/apis/mysql/bizs/{bk_biz_id}/openarea/"

// OpenareaTemplate describes how to open a new game area by cloning schema and data of a source
// cluster into new databases.
type OpenareaTemplate struct {
	ID               uint         `json:"id,omitempty"`
	BkBizID          uint         `json:"bk_biz_id"`
	ConfigName       string       `json:"config_name"`
	ConfigRules      []ConfigRule `json:"config_rules"`
	RelatedAuthorize []uint       `json:"related_authorize"`
	SourceClusterID  uint         `json:"source_cluster_id"`
	ClusterType      string       `json:"cluster_type,omitempty"`
	Creator          string       `json:"creator,omitempty"`
	CreateAt         string       `json:"create_at,omitempty"`
	Updater          string       `json:"updater,omitempty"`
	UpdateAt         string       `json:"update_at,omitempty"`
}

type ConfigRule struct {
	DataTblist      []string `json:"data_tblist"`
	SchemaTblist    []string `json:"schema_tblist"`
	SourceDB        string   `json:"source_db"`
	TargetDBPattern string   `json:"target_db_pattern"`
}

type OpenareaListParams struct {
	ConfigName  string
	ClusterType string
	Desc        bool
	Limit       int
	Offset      int
}

type OpenareaPreviewRequest struct {
	ConfigID   uint                  `json:"config_id"`
	ConfigData []OpenareaPreviewData `json:"config_data"`
}

type OpenareaPreviewData struct {
	ClusterID    uint           `json:"cluster_id"`
	Vars         map[string]any `json:"vars"`
	AuthorizeIPs []string       `json:"authorize_ips"`
}

type OpenareaPreview struct {
	ConfigData []struct {
		ClusterID      uint `json:"cluster_id"`
		ExecuteObjects []struct {
			AuthorizeIPs []string `json:"authorize_ips"`
			DataTblist   []string `json:"data_tblist"`
			ErrorMsg     string   `json:"error_msg"`
			PrivData     []int    `json:"priv_data"`
			SchemaTblist []string `json:"schema_tblist"`
			SourceDB     string   `json:"source_db"`
			TargetDB     string   `json:"target_db"`
		} `json:"execute_objects"`
		TargetClusterDomain string `json:"target_cluster_domain"`
	} `json:"config_data"`
	RulesSet []struct {
		AccountRules []struct {
			BkBizID uint   `json:"bk_biz_id"`
			DBName  string `json:"dbname"`
		} `json:"account_rules"`
		BkBizID         uint     `json:"bk_biz_id"`
		ClusterType     string   `json:"cluster_type"`
		Operator        string   `json:"operator"`
		SourceIPs       []string `json:"source_ips"`
		TargetInstances []string `json:"target_instances"`
		User            string   `json:"user"`
	} `json:"rules_set"`
}

// OpenareaVariable is a variable usable in the target db pattern of a config rule.
type OpenareaVariable struct {
	Name    string `json:"name"`
	Builtin bool   `json:"builtin"`
	Desc    string `json:"desc"`
}

type VariableOperation string

const (
	VariableAdd    VariableOperation = "add"
	VariableUpdate VariableOperation = "update"
	VariableDelete VariableOperation = "delete"
)

func (c *Client) ListOpenareaTemplates(ctx context.Context, bizID uint, p OpenareaListParams) (ListBase[OpenareaTemplate], error) {
	query := []param{
		queryParam("config_name", p.ConfigName),
		queryParam("cluster_type", p.ClusterType),
	}
	if p.Desc {
		query = append(query, queryParam("desc", "1"))
	}
	if p.Limit > 0 {
		query = append(query, queryParam("limit", strconv.Itoa(p.Limit)))
	}
	if p.Offset > 0 {
		query = append(query, queryParam("offset", strconv.Itoa(p.Offset)))
	}

	return submit[ListBase[OpenareaTemplate]](ctx, c, operation{
		id:     "listOpenareaTemplates",
		method: http.MethodGet,
		path:   openareaPath,
		params: params(append(query, pathParam("bk_biz_id", itoa(bizID)))...),
	})
}

func (c *Client) CreateOpenareaTemplate(ctx context.Context, template OpenareaTemplate) (OpenareaTemplate, error) {
	return submit[OpenareaTemplate](ctx, c, operation{
		id:     "createOpenareaTemplate",
		method: http.MethodPost,
		path:   openareaPath,
		params: params(pathParam("bk_biz_id", itoa(template.BkBizID)), bodyParam(template)),
	})
}

func (c *Client) GetOpenareaTemplate(ctx context.Context, bizID, id uint) (OpenareaTemplate, error) {
	return submit[OpenareaTemplate](ctx, c, operation{
		id:     "getOpenareaTemplate",
		method: http.MethodGet,
		path:   openareaPath + "{id}/",
		params: params(pathParam("bk_biz_id", itoa(bizID)), pathParam("id", itoa(id))),
	})
}

// UpdateOpenareaTemplate replaces the template identified by template.ID. The id is part of the
// path and is not sent in the body.
func (c *Client) UpdateOpenareaTemplate(ctx context.Context, template OpenareaTemplate) error {
	id := template.ID
	template.ID = 0

	_, err := submit[any](ctx, c, operation{
		id:     "updateOpenareaTemplate",
		method: http.MethodPut,
		path:   openareaPath + "{id}/",
		params: params(pathParam("bk_biz_id", itoa(template.BkBizID)), pathParam("id", itoa(id)), bodyParam(template)),
	})
	return err
}

func (c *Client) DeleteOpenareaTemplate(ctx context.Context, bizID, id uint) error {
	_, err := submit[any](ctx, c, operation{
		id:     "deleteOpenareaTemplate",
		method: http.MethodDelete,
		path:   openareaPath + "{id}/",
		params: params(pathParam("bk_biz_id", itoa(bizID)), pathParam("id", itoa(id))),
	})
	return err
}

func (c *Client) PreviewOpenarea(ctx context.Context, bizID uint, request OpenareaPreviewRequest) (OpenareaPreview, error) {
	return submit[OpenareaPreview](ctx, c, operation{
		id:     "previewOpenarea",
		method: http.MethodPost,
		path:   openareaPath + "preview/",
		params: params(pathParam("bk_biz_id", itoa(bizID)), bodyParam(request)),
	})
}

// AlterOpenareaVariable adds, updates or deletes a variable. Updates and deletes need the old
// variable, adds and updates need the new one.
func (c *Client) AlterOpenareaVariable(ctx context.Context, bizID uint, op VariableOperation, oldVar, newVar *OpenareaVariable) error {
	switch op {
	case VariableAdd:
		if newVar == nil {
			return errdef.NewBadRequest("adding a variable requires the new variable")
		}
		oldVar = nil
	case VariableUpdate:
		if oldVar == nil || newVar == nil {
			return errdef.NewBadRequest("updating a variable requires the old and the new variable")
		}
	case VariableDelete:
		if oldVar == nil {
			return errdef.NewBadRequest("deleting a variable requires the old variable")
		}
		newVar = nil
	default:
		return errdef.NewBadRequest("unknown variable operation %q", op)
	}

	_, err := submit[any](ctx, c, operation{
		id:     "alterOpenareaVariable",
		method: http.MethodPost,
		path:   openareaPath + "alter_var/",
		params: params(pathParam("bk_biz_id", itoa(bizID)), bodyParam(struct {
			OpType VariableOperation `json:"op_type"`
			OldVar *OpenareaVariable `json:"old_var"`
			NewVar *OpenareaVariable `json:"new_var"`
		}{op, oldVar, newVar})),
	})
	return err
}
